package ledger

import (
	"fmt"
	"math"
	"math/bits"

	sdkmath "cosmossdk.io/math"
)

// RewardScale is the fixed-point factor of the reward-per-unit accumulator. The
// accumulator grows by elapsed*rate*RewardScale/totalStaked and an account
// settles staked*(delta)/RewardScale, so the factor cancels out exactly once.
const RewardScale uint64 = 1_000_000_000_000_000_000

func addUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, a, b)
	}
	return a + b, nil
}

func subUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, fmt.Errorf("%w: %d - %d underflows", ErrArithmeticOverflow, a, b)
	}
	return a - b, nil
}

// toUint64 narrows an accumulator product back to 64 bits.
func toUint64(u sdkmath.Uint) (uint64, error) {
	bi := u.BigInt()
	if bi == nil || !bi.IsUint64() {
		return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrArithmeticOverflow, u)
	}
	return bi.Uint64(), nil
}

// subUint returns a-b, failing instead of panicking when b > a.
func subUint(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	if b.GT(a) {
		return sdkmath.Uint{}, fmt.Errorf("%w: accumulator %s - %s underflows", ErrArithmeticOverflow, a, b)
	}
	return a.Sub(b), nil
}

// orZero guards against uninitialised accumulators, e.g. structs built by hand.
func orZero(u sdkmath.Uint) sdkmath.Uint {
	if u.IsNil() {
		return sdkmath.ZeroUint()
	}
	return u
}

// mulUint64 returns a*b, failing before the product could leave 256 bits.
func mulUint64(a sdkmath.Uint, b uint64) (sdkmath.Uint, error) {
	if a.BigInt().BitLen()+bits.Len64(b) > sdkmath.MaxBitLen {
		return sdkmath.Uint{}, fmt.Errorf("%w: %s * %d", ErrArithmeticOverflow, a, b)
	}
	return a.MulUint64(b), nil
}

// addUint returns a+b, failing before the sum could leave 256 bits.
func addUint(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	if max(a.BigInt().BitLen(), b.BigInt().BitLen())+1 > sdkmath.MaxBitLen {
		return sdkmath.Uint{}, fmt.Errorf("%w: accumulator %s + %s", ErrArithmeticOverflow, a, b)
	}
	return a.Add(b), nil
}
