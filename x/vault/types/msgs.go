package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of MsgCreateVault
func (msg *MsgCreateVault) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid admin address")
	}
	if msg.Name == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "name cannot be empty")
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	if msg.Duration <= 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "duration must be positive")
	}
	if msg.InterestRateBps == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "interest rate must be positive")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgDeposit
func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid depositor address")
	}
	if msg.VaultId == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "vault id cannot be zero")
	}
	if !msg.Amount.IsValid() || msg.Amount.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be a positive coin")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgWithdraw
func (msg *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid depositor address")
	}
	if msg.VaultId == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "vault id cannot be zero")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgDeleteVault
func (msg *MsgDeleteVault) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid admin address")
	}
	if msg.VaultId == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "vault id cannot be zero")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgFundReserve
func (msg *MsgFundReserve) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid admin address")
	}
	if !msg.Amount.IsValid() || msg.Amount.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be positive coins")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateAdmin
func (msg *MsgUpdateAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid authority address")
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid new admin address")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid authority address")
	}
	return msg.Params.Validate()
}
