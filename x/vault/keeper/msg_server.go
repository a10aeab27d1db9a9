package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of MsgServer.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// CreateVault opens a new deposit pool. Admin only.
func (ms msgServer) CreateVault(ctx context.Context, msg *types.MsgCreateVault) (*types.MsgCreateVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.k.RequireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}

	vault, err := ms.k.CreateVault(ctx, msg.Name, msg.Denom, msg.Duration, msg.InterestRateBps)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateVaultResponse{VaultId: vault.Id}, nil
}

// Deposit locks coins into an active vault before maturity.
func (ms msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, err
	}
	if err := ms.k.Deposit(ctx, msg.VaultId, depositor, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{}, nil
}

// Withdraw pays out the caller's entitlement, settling the vault first when
// it has matured and the draw has not yet run.
func (ms msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, err
	}
	paid, err := ms.k.Withdraw(ctx, msg.VaultId, depositor)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{Paid: paid}, nil
}

// DeleteVault force-settles and deactivates a vault. Admin only.
func (ms msgServer) DeleteVault(ctx context.Context, msg *types.MsgDeleteVault) (*types.MsgDeleteVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.k.RequireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	if err := ms.k.DeleteVault(ctx, msg.VaultId); err != nil {
		return nil, err
	}
	return &types.MsgDeleteVaultResponse{}, nil
}

// FundReserve tops up the module pool so matured interest can be paid.
// Admin only.
func (ms msgServer) FundReserve(ctx context.Context, msg *types.MsgFundReserve) (*types.MsgFundReserveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.k.RequireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	funder, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, err
	}
	if err := ms.k.FundReserve(ctx, funder, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgFundReserveResponse{}, nil
}

// UpdateAdmin rotates the module administrator. Governance only.
func (ms msgServer) UpdateAdmin(ctx context.Context, msg *types.MsgUpdateAdmin) (*types.MsgUpdateAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if ms.k.authority != msg.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.k.authority, msg.Authority)
	}

	params, err := ms.k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	oldAdmin := params.Admin
	params.Admin = msg.NewAdmin
	if err := ms.k.Params.Set(ctx, params); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeAdminChanged,
			sdk.NewAttribute(types.AttributeKeyOldAdmin, oldAdmin),
			sdk.NewAttribute(types.AttributeKeyNewAdmin, msg.NewAdmin),
		),
	)

	return &types.MsgUpdateAdminResponse{}, nil
}

// UpdateParams replaces the module parameters wholesale. Governance only.
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if ms.k.authority != msg.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.k.authority, msg.Authority)
	}
	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}
	if err := ms.k.Params.Set(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
