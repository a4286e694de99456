package api

import (
	"errors"
	"net/http"

	"github.com/babylonlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/services"
	"github.com/babylonlabs-io/staking-rewards-ledger/internal/types"
)

var errorKinds = []struct {
	target error
	status int
	code   types.ErrorCode
}{
	{ledger.ErrInvalidAmount, http.StatusBadRequest, types.ValidationError},
	{ledger.ErrInvalidPoolParams, http.StatusBadRequest, types.ValidationError},
	{services.ErrTokenMismatch, http.StatusBadRequest, types.ValidationError},
	{ledger.ErrInsufficientBalance, http.StatusBadRequest, types.InsufficientBalance},
	{ledger.ErrAccountNotFound, http.StatusNotFound, types.NotFound},
	{ledger.ErrPoolNotFound, http.StatusNotFound, types.NotFound},
	{ledger.ErrPoolExists, http.StatusConflict, types.Conflict},
	{ledger.ErrUnauthorized, http.StatusUnauthorized, types.Unauthorized},
	{ledger.ErrTransferFailed, http.StatusBadGateway, types.TransferFailed},
	{ledger.ErrArithmeticOverflow, http.StatusUnprocessableEntity, types.ArithmeticOverflow},
}

// toServiceError maps a failure to the status and code it is reported with.
// Anything unrecognised is an internal error.
func toServiceError(err error) *types.Error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}

	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return types.NewError(kind.status, kind.code, err)
		}
	}
	return types.NewInternalServiceError(err)
}
