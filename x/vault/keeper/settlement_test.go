package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

const yearSeconds = types.SecondsPerYear

func TestSettleVaultSelectsWinnerAndFixesClaims(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)

	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 1000)
	f.advanceTime(yearSeconds + 1)

	require.NoError(t, f.k.SettleVault(f.ctx, id))

	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.True(t, vault.WinnerSelected)
	require.Contains(t, vault.Depositors, vault.Winner)

	// 1000 at 500 bps over a full year accrues 50 per depositor
	require.Equal(t, math.NewInt(100), vault.TotalInterestInt())

	winnerClaim := f.k.GetClaimable(f.ctx, id, vault.Winner)
	require.Equal(t, math.NewInt(1100), winnerClaim)

	for _, addr := range vault.Depositors {
		if addr == vault.Winner {
			continue
		}
		require.Equal(t, math.NewInt(1000), f.k.GetClaimable(f.ctx, id, addr))
	}
}

func TestSettleVaultTwiceFails(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.advanceTime(yearSeconds + 1)

	require.NoError(t, f.k.SettleVault(f.ctx, id))
	require.ErrorIs(t, f.k.SettleVault(f.ctx, id), types.ErrAlreadySettled)
}

func TestSettleVaultNoDepositors(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.advanceTime(yearSeconds + 1)

	require.ErrorIs(t, f.k.SettleVault(f.ctx, id), types.ErrNoDepositors)
}

func TestSettlementIsDeterministicWithinBlock(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.advanceTime(yearSeconds + 1)

	// sole depositor always wins
	require.NoError(t, f.k.SettleVault(f.ctx, id))
	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.Equal(t, f.addrs[0].String(), vault.Winner)
}

func TestWithdrawSettlesLazily(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 1000)
	f.fundReserve(t, 100)
	f.advanceTime(yearSeconds + 1)

	// no draw has run yet
	hasWinner, err := f.queryServer.HasWinner(f.ctx, &types.QueryHasWinnerRequest{VaultId: id})
	require.NoError(t, err)
	require.False(t, hasWinner.HasWinner)

	// the first post-maturity withdrawal triggers it
	_, err = f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[0].String(),
		VaultId:   id,
	})
	require.NoError(t, err)

	hasWinner, err = f.queryServer.HasWinner(f.ctx, &types.QueryHasWinnerRequest{VaultId: id})
	require.NoError(t, err)
	require.True(t, hasWinner.HasWinner)
}

func TestWithdrawPaysWinnerAndLosers(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 1000)
	f.fundReserve(t, 100)
	f.advanceTime(yearSeconds + 1)

	require.NoError(t, f.k.SettleVault(f.ctx, id))
	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	winner := vault.Winner

	paidTotal := math.ZeroInt()
	for _, addr := range []sdk.AccAddress{f.addrs[0], f.addrs[1]} {
		resp, err := f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
			Depositor: addr.String(),
			VaultId:   id,
		})
		require.NoError(t, err)
		paidTotal = paidTotal.Add(resp.Paid.Amount)

		want := math.NewInt(1000)
		if addr.String() == winner {
			want = math.NewInt(1100)
		}
		require.Equal(t, want, resp.Paid.Amount)
	}

	// principal plus pot is fully drained
	require.Equal(t, math.NewInt(2100), paidTotal)
	require.True(t, f.k.PoolBalance(f.ctx, testDenom).Amount.IsZero())

	vault, err = f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.Empty(t, vault.Depositors)
	require.True(t, vault.TotalPrincipalInt().IsZero())
}

func TestWithdrawTwiceFails(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.fundReserve(t, 50)
	f.advanceTime(yearSeconds + 1)

	_, err := f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[0].String(),
		VaultId:   id,
	})
	require.NoError(t, err)

	_, err = f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[0].String(),
		VaultId:   id,
	})
	require.ErrorIs(t, err, types.ErrNoDeposit)
}

func TestWithdrawWinnerUnfundedReserve(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.advanceTime(yearSeconds + 1)

	// the pool holds only principal; the winner's claim of 1050 cannot be met
	_, err := f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[0].String(),
		VaultId:   id,
	})
	require.ErrorIs(t, err, types.ErrInsufficientPoolFunds)

	// funding the reserve unblocks the claim
	f.fundReserve(t, 50)
	resp, err := f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[0].String(),
		VaultId:   id,
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1050), resp.Paid.Amount)
}

func TestDeleteVaultPaysEveryoneWithInterest(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 2000)
	f.advanceTime(yearSeconds + 1)

	// matured deletion owes principal plus full-term interest per depositor
	err := f.k.DeleteVault(f.ctx, id)
	require.ErrorIs(t, err, types.ErrInsufficientPoolFunds)

	f.fundReserve(t, 150)
	before0 := f.bankKeeper.GetBalance(f.ctx, f.addrs[0], testDenom).Amount
	before1 := f.bankKeeper.GetBalance(f.ctx, f.addrs[1], testDenom).Amount

	require.NoError(t, f.k.DeleteVault(f.ctx, id))

	require.Equal(t, before0.AddRaw(1050), f.bankKeeper.GetBalance(f.ctx, f.addrs[0], testDenom).Amount)
	require.Equal(t, before1.AddRaw(2100), f.bankKeeper.GetBalance(f.ctx, f.addrs[1], testDenom).Amount)

	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.False(t, vault.Active)
	require.Empty(t, vault.Depositors)
	require.False(t, vault.WinnerSelected)
}

func TestDeleteVaultBeforeMaturityPaysPrincipalOnly(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)

	before := f.bankKeeper.GetBalance(f.ctx, f.addrs[0], testDenom).Amount
	require.NoError(t, f.k.DeleteVault(f.ctx, id))
	require.Equal(t, before.AddRaw(1000), f.bankKeeper.GetBalance(f.ctx, f.addrs[0], testDenom).Amount)
}

func TestDeleteVaultHonorsSettledClaims(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 1000)
	f.fundReserve(t, 100)
	f.advanceTime(yearSeconds + 1)

	// the draw already fixed who gets the pot; deletion must not rerun it
	require.NoError(t, f.k.SettleVault(f.ctx, id))
	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	winner := vault.Winner

	winnerAddr, err := sdk.AccAddressFromBech32(winner)
	require.NoError(t, err)
	before := f.bankKeeper.GetBalance(f.ctx, winnerAddr, testDenom).Amount

	require.NoError(t, f.k.DeleteVault(f.ctx, id))
	require.Equal(t, before.AddRaw(1100), f.bankKeeper.GetBalance(f.ctx, winnerAddr, testDenom).Amount)
}

func TestInterestFloorsToZeroOnTinyPositions(t *testing.T) {
	f := SetupTest(t)
	// 1 bps over one hour on a small principal floors to zero
	id := f.createVault(t, 3600, 1)
	f.deposit(t, id, f.addrs[0], 1000)
	f.advanceTime(3601)

	require.NoError(t, f.k.SettleVault(f.ctx, id))
	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.True(t, vault.TotalInterestInt().IsZero())

	// the winner still only reclaims principal
	resp, err := f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[0].String(),
		VaultId:   id,
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), resp.Paid.Amount)
}
