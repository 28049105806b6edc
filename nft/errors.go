package nft

import (
	"errors"

	"golang.org/x/xerrors"
)

var (
	ErrTokenNotFound          = xerrors.New("token not found")
	ErrTokenExists            = xerrors.New("token already exists")
	ErrNotOwner               = xerrors.New("sender is not the owner of the token")
	ErrNotAuthorized          = xerrors.New("sender is not a minter")
	ErrAlreadyMinter          = xerrors.New("account is already a minter")
	ErrNotMinter              = xerrors.New("account is not a minter")
	ErrSelfRemovalForbidden   = xerrors.New("minter can not remove itself")
	ErrInsufficientAttachment = xerrors.New("insufficient attached deposit")
	ErrInsufficientDeposit    = xerrors.New("insufficient storage deposit")
	ErrInsufficientGas        = xerrors.New("insufficient prepaid gas")
	ErrInconsistentIndex      = xerrors.New("inconsistent owner index")
	ErrAlreadyInitialized     = xerrors.New("contract already initialized")
	ErrNotInitialized         = xerrors.New("contract not initialized")
	ErrInvalidDeposit         = xerrors.New("invalid deposit")
	ErrDepositConsumed        = xerrors.New("deposit already consumed")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrTokenNotFound, "NotFound"},
	{ErrTokenExists, "TokenExists"},
	{ErrNotOwner, "NotOwner"},
	{ErrNotAuthorized, "NotAuthorized"},
	{ErrAlreadyMinter, "AlreadyMinter"},
	{ErrNotMinter, "NotMinter"},
	{ErrSelfRemovalForbidden, "SelfRemovalForbidden"},
	{ErrInsufficientAttachment, "InsufficientAttachment"},
	{ErrInsufficientDeposit, "InsufficientDeposit"},
	{ErrInsufficientGas, "InsufficientGas"},
	{ErrInconsistentIndex, "InconsistentIndex"},
	{ErrAlreadyInitialized, "AlreadyInitialized"},
	{ErrNotInitialized, "NotInitialized"},
	{ErrInvalidDeposit, "InvalidDeposit"},
	{ErrDepositConsumed, "DepositConsumed"},
}

// ErrorKind names the failure class of err, "ok" for nil and "internal"
// for storage or encoding failures.
func ErrorKind(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}
