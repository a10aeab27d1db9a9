package keeper

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

// SettleVault runs the one-time randomized winner draw and fixes every
// depositor's claimable amount. It is invoked lazily by the first withdrawal
// after maturity; a second invocation fails.
//
// The draw and the claimable pass run inside a single message, so no
// depositor can join or leave mid-computation.
func (k Keeper) SettleVault(ctx context.Context, vaultID uint64) error {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.WinnerSelected {
		return errorsmod.Wrapf(types.ErrAlreadySettled, "vault %d", vaultID)
	}
	if len(vault.Depositors) == 0 {
		return errorsmod.Wrapf(types.ErrNoDepositors, "vault %d", vaultID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// Interest pot: sum of per-depositor simple interest over the full term.
	pot := math.ZeroInt()
	for _, addr := range vault.Depositors {
		principal := k.GetPrincipal(ctx, vaultID, addr)
		pot = pot.Add(types.SimpleInterest(principal, vault.InterestRateBps, vault.Duration))
	}

	idx := drawIndex(sdkCtx.HeaderHash(), vaultID, sdkCtx.BlockTime().Unix(), len(vault.Depositors))
	winner := vault.Depositors[idx]

	for _, addr := range vault.Depositors {
		claimable := k.GetPrincipal(ctx, vaultID, addr)
		if addr == winner {
			claimable = claimable.Add(pot)
		}
		if err := k.Claimables.Set(ctx, collections.Join(vaultID, addr), claimable); err != nil {
			return err
		}
	}

	vault.WinnerSelected = true
	vault.Winner = winner
	vault.SetTotalInterest(pot)
	if err := k.Vaults.Set(ctx, vaultID, vault); err != nil {
		return err
	}

	k.logger.Info("winner selected",
		"vault_id", vaultID,
		"winner", winner,
		"total_interest", pot.String(),
		"depositors", len(vault.Depositors),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeWinnerSelected,
			sdk.NewAttribute(types.AttributeKeyVaultID, strconv.FormatUint(vaultID, 10)),
			sdk.NewAttribute(types.AttributeKeyWinner, winner),
			sdk.NewAttribute(types.AttributeKeyTotalInterest, pot.String()),
		),
	)

	return nil
}

// drawIndex reduces committed block entropy, the vault id, and the block time
// into an index over the current depositor list. Deterministic for consensus;
// a block proposer can influence the outcome, so this is pseudo-random, not
// adversary-proof.
func drawIndex(headerHash []byte, vaultID uint64, blockTime int64, n int) int {
	buf := make([]byte, 0, len(headerHash)+16)
	buf = append(buf, headerHash...)
	buf = binary.BigEndian.AppendUint64(buf, vaultID)
	buf = binary.BigEndian.AppendUint64(buf, uint64(blockTime))
	sum := sha256.Sum256(buf)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Withdraw pays out the caller's entitlement. After maturity the first call
// triggers settlement for the whole vault; before maturity the caller exits
// with raw principal only and forfeits lottery eligibility.
func (k Keeper) Withdraw(
	ctx context.Context,
	vaultID uint64,
	depositor sdk.AccAddress,
) (sdk.Coin, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if !vault.Active {
		return sdk.Coin{}, errorsmod.Wrapf(types.ErrVaultInactive, "vault %d", vaultID)
	}

	addr := depositor.String()
	principal := k.GetPrincipal(ctx, vaultID, addr)
	if !principal.IsPositive() {
		return sdk.Coin{}, errorsmod.Wrapf(types.ErrNoDeposit, "%s in vault %d", addr, vaultID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if vault.Matured(now) && !vault.WinnerSelected {
		if err := k.SettleVault(ctx, vaultID); err != nil {
			return sdk.Coin{}, err
		}
		vault, err = k.GetVault(ctx, vaultID)
		if err != nil {
			return sdk.Coin{}, err
		}
	}

	// Settled entitlement when present, raw principal otherwise.
	claim := principal
	if c := k.GetClaimable(ctx, vaultID, addr); c.IsPositive() {
		claim = c
	}

	if k.PoolBalance(ctx, vault.Denom).Amount.LT(claim) {
		return sdk.Coin{}, errorsmod.Wrapf(
			types.ErrInsufficientPoolFunds,
			"vault %d owes %s%s", vaultID, claim, vault.Denom,
		)
	}

	// State updates strictly before the transfer; a failed transfer aborts
	// the message and the store rolls back with it.
	if err := k.Principals.Remove(ctx, collections.Join(vaultID, addr)); err != nil {
		return sdk.Coin{}, err
	}
	if err := k.Claimables.Remove(ctx, collections.Join(vaultID, addr)); err != nil {
		return sdk.Coin{}, err
	}
	vault.RemoveDepositor(addr)
	vault.SetTotalPrincipal(vault.TotalPrincipalInt().Sub(principal))
	if err := k.Vaults.Set(ctx, vaultID, vault); err != nil {
		return sdk.Coin{}, err
	}

	paid := sdk.NewCoin(vault.Denom, claim)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(
		ctx, types.ModuleName, depositor, sdk.NewCoins(paid),
	); err != nil {
		return sdk.Coin{}, errorsmod.Wrap(types.ErrTransferFailed, err.Error())
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyVaultID, strconv.FormatUint(vaultID, 10)),
			sdk.NewAttribute(types.AttributeKeyDepositor, addr),
			sdk.NewAttribute(types.AttributeKeyAmount, paid.String()),
		),
	)

	return paid, nil
}

// DeleteVault force-settles everyone and permanently deactivates the vault.
// Every remaining depositor is paid principal plus their own matured interest;
// there is no lottery on this path. If settlement already ran, the fixed
// claimable amounts are honored instead, since the draw is irrevocable.
//
// Any payout failure aborts the whole deletion so it can be retried; partial
// payouts never persist.
func (k Keeper) DeleteVault(ctx context.Context, vaultID uint64) error {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if !vault.Active {
		return errorsmod.Wrapf(types.ErrVaultInactive, "vault %d", vaultID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	matured := vault.Matured(sdkCtx.BlockTime().Unix())

	type payout struct {
		addr   sdk.AccAddress
		amount math.Int
	}
	payouts := make([]payout, 0, len(vault.Depositors))
	owed := math.ZeroInt()
	for _, addr := range vault.Depositors {
		accAddr, err := sdk.AccAddressFromBech32(addr)
		if err != nil {
			return err
		}
		amount := k.GetClaimable(ctx, vaultID, addr)
		if !amount.IsPositive() {
			amount = k.GetPrincipal(ctx, vaultID, addr)
			if matured {
				amount = amount.Add(types.SimpleInterest(amount, vault.InterestRateBps, vault.Duration))
			}
		}
		payouts = append(payouts, payout{addr: accAddr, amount: amount})
		owed = owed.Add(amount)
	}

	if k.PoolBalance(ctx, vault.Denom).Amount.LT(owed) {
		return errorsmod.Wrapf(
			types.ErrInsufficientPoolFunds,
			"vault %d owes %s%s on deletion", vaultID, owed, vault.Denom,
		)
	}

	for _, p := range payouts {
		addr := p.addr.String()
		if err := k.Principals.Remove(ctx, collections.Join(vaultID, addr)); err != nil {
			return err
		}
		if err := k.Claimables.Remove(ctx, collections.Join(vaultID, addr)); err != nil {
			return err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(
			ctx, types.ModuleName, p.addr, sdk.NewCoins(sdk.NewCoin(vault.Denom, p.amount)),
		); err != nil {
			return errorsmod.Wrap(types.ErrTransferFailed, err.Error())
		}
	}

	vault.Active = false
	vault.Depositors = []string{}
	vault.SetTotalPrincipal(math.ZeroInt())
	if err := k.Vaults.Set(ctx, vaultID, vault); err != nil {
		return err
	}

	k.logger.Info("vault deleted", "vault_id", vaultID, "paid_out", owed.String())

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeVaultDeleted,
			sdk.NewAttribute(types.AttributeKeyVaultID, strconv.FormatUint(vaultID, 10)),
			sdk.NewAttribute(types.AttributeKeyAmount, owed.String()),
		),
	)

	return nil
}
