package types

import (
	"cosmossdk.io/errors"
)

// Vault module sentinel errors
var (
	ErrInvalidParameter      = errors.Register(ModuleName, 2, "invalid parameter")
	ErrVaultNotFound         = errors.Register(ModuleName, 3, "vault not found")
	ErrVaultInactive         = errors.Register(ModuleName, 4, "vault is inactive")
	ErrDepositWindowClosed   = errors.Register(ModuleName, 5, "deposit window closed")
	ErrZeroAmount            = errors.Register(ModuleName, 6, "amount must be positive")
	ErrUnexpectedPayment     = errors.Register(ModuleName, 7, "payment does not match vault asset")
	ErrTransferFailed        = errors.Register(ModuleName, 8, "asset transfer failed")
	ErrNoDeposit             = errors.Register(ModuleName, 9, "no deposit for address")
	ErrNoDepositors          = errors.Register(ModuleName, 10, "vault has no depositors")
	ErrInsufficientPoolFunds = errors.Register(ModuleName, 11, "insufficient pool funds")
	ErrNotYetSettled         = errors.Register(ModuleName, 12, "winner not yet selected")
	ErrAlreadySettled        = errors.Register(ModuleName, 13, "winner already selected")
	ErrUnauthorized          = errors.Register(ModuleName, 14, "unauthorized")
)
