package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

// CreateVault opens a new vault with the next sequential id. Creation
// parameters are immutable for the vault's life.
func (k Keeper) CreateVault(
	ctx context.Context,
	name string,
	denom string,
	duration int64,
	interestRateBps uint64,
) (types.Vault, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Vault{}, err
	}

	if interestRateBps == 0 {
		return types.Vault{}, errorsmod.Wrap(types.ErrInvalidParameter, "interest rate must be positive")
	}
	if duration < params.MinVaultDuration || duration > params.MaxVaultDuration {
		return types.Vault{}, errorsmod.Wrapf(
			types.ErrInvalidParameter,
			"duration %ds outside allowed range [%d, %d]",
			duration, params.MinVaultDuration, params.MaxVaultDuration,
		)
	}
	if name == "" || len(name) > int(params.MaxNameLength) {
		return types.Vault{}, errorsmod.Wrapf(
			types.ErrInvalidParameter,
			"name must be between 1 and %d characters",
			params.MaxNameLength,
		)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.Vault{}, errorsmod.Wrap(types.ErrInvalidParameter, err.Error())
	}

	seq, err := k.VaultSequence.Next(ctx)
	if err != nil {
		return types.Vault{}, err
	}
	id := seq + 1 // ids start at 1 and are never reused

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	vault := types.Vault{
		Id:              id,
		Name:            name,
		Denom:           denom,
		CreatedAt:       sdkCtx.BlockTime().Unix(),
		Duration:        duration,
		InterestRateBps: interestRateBps,
		Active:          true,
		Depositors:      []string{},
	}
	vault.SetTotalPrincipal(math.ZeroInt())

	if err := k.Vaults.Set(ctx, id, vault); err != nil {
		return types.Vault{}, err
	}

	k.logger.Info("vault created",
		"vault_id", id,
		"name", name,
		"denom", denom,
		"duration", duration,
		"interest_rate_bps", interestRateBps,
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeVaultCreated,
			sdk.NewAttribute(types.AttributeKeyVaultID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyName, name),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyDuration, strconv.FormatInt(duration, 10)),
			sdk.NewAttribute(types.AttributeKeyInterestBps, strconv.FormatUint(interestRateBps, 10)),
		),
	)

	return vault, nil
}

// Deposit contributes principal to an open vault. The coins are escrowed in
// the module account before any bookkeeping, so a failed transfer leaves no
// partial state behind.
func (k Keeper) Deposit(
	ctx context.Context,
	vaultID uint64,
	depositor sdk.AccAddress,
	amount sdk.Coin,
) error {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if !vault.Active {
		return errorsmod.Wrapf(types.ErrVaultInactive, "vault %d", vaultID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if vault.Matured(now) {
		return errorsmod.Wrapf(types.ErrDepositWindowClosed, "vault %d matured at %d", vaultID, vault.MaturesAt())
	}

	if amount.Denom != vault.Denom {
		return errorsmod.Wrapf(types.ErrUnexpectedPayment, "vault %d accepts %s, got %s", vaultID, vault.Denom, amount.Denom)
	}
	if !amount.Amount.IsPositive() {
		return errorsmod.Wrap(types.ErrZeroAmount, "deposit")
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(
		ctx, depositor, types.ModuleName, sdk.NewCoins(amount),
	); err != nil {
		return errorsmod.Wrap(types.ErrTransferFailed, err.Error())
	}

	addr := depositor.String()
	principal := k.GetPrincipal(ctx, vaultID, addr)
	if principal.IsZero() {
		vault.AddDepositor(addr)
	}

	if err := k.Principals.Set(ctx, collections.Join(vaultID, addr), principal.Add(amount.Amount)); err != nil {
		return err
	}
	vault.SetTotalPrincipal(vault.TotalPrincipalInt().Add(amount.Amount))
	if err := k.Vaults.Set(ctx, vaultID, vault); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyVaultID, strconv.FormatUint(vaultID, 10)),
			sdk.NewAttribute(types.AttributeKeyDepositor, addr),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// FundReserve moves coins from the administrator into the module account so
// matured interest can actually be paid. Principal deposits alone never cover
// the interest pot.
func (k Keeper) FundReserve(ctx context.Context, funder sdk.AccAddress, amount sdk.Coins) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, amount); err != nil {
		return errorsmod.Wrap(types.ErrTransferFailed, err.Error())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeReserveFunded,
			sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// AccruedInterest is the full-term interest addr's current principal earns,
// reported once the vault has matured. Pre-maturity exits forfeit interest,
// so the estimate is zero until maturity.
func (k Keeper) AccruedInterest(ctx context.Context, vault types.Vault, addr string) math.Int {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if !vault.Matured(sdkCtx.BlockTime().Unix()) {
		return math.ZeroInt()
	}
	principal := k.GetPrincipal(ctx, vault.Id, addr)
	return types.SimpleInterest(principal, vault.InterestRateBps, vault.Duration)
}
