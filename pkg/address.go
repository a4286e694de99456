package pkg

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ValidateAddress checks that address is a bech32 account address carrying
// the given human readable prefix.
func ValidateAddress(address, prefix string) error {
	bz, err := sdk.GetFromBech32(address, prefix)
	if err != nil {
		return err
	}

	return sdk.VerifyAddressFormat(bz)
}
