package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

func TestQueryParams(t *testing.T) {
	f := SetupTest(t)

	resp, err := f.queryServer.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, f.admin.String(), resp.Params.Admin)

	_, err = f.queryServer.Params(f.ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryVault(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, 3600, 500)
	f.deposit(t, id, f.addrs[0], 1000)

	resp, err := f.queryServer.Vault(f.ctx, &types.QueryVaultRequest{VaultId: id})
	require.NoError(t, err)
	require.Equal(t, id, resp.Vault.Id)
	require.EqualValues(t, 3600, resp.TimeRemaining)
	require.EqualValues(t, 1, resp.DepositorCount)

	_, err = f.queryServer.Vault(f.ctx, &types.QueryVaultRequest{VaultId: 42})
	require.Equal(t, codes.NotFound, status.Code(err))

	// the countdown clamps to zero after maturity
	f.advanceTime(4000)
	resp, err = f.queryServer.Vault(f.ctx, &types.QueryVaultRequest{VaultId: id})
	require.NoError(t, err)
	require.Zero(t, resp.TimeRemaining)
}

func TestQueryVaults(t *testing.T) {
	f := SetupTest(t)
	f.createVault(t, 3600, 500)
	f.createVault(t, 7200, 100)

	resp, err := f.queryServer.Vaults(f.ctx, &types.QueryVaultsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Vaults, 2)
}

func TestQueryDepositor(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)

	// before maturity the interest estimate is zero
	resp, err := f.queryServer.Depositor(f.ctx, &types.QueryDepositorRequest{
		VaultId: id,
		Address: f.addrs[0].String(),
	})
	require.NoError(t, err)
	require.Equal(t, "1000", resp.Principal)
	require.Equal(t, "0", resp.AccruedInterest)

	// after maturity it is the full-term amount
	f.advanceTime(yearSeconds + 1)
	resp, err = f.queryServer.Depositor(f.ctx, &types.QueryDepositorRequest{
		VaultId: id,
		Address: f.addrs[0].String(),
	})
	require.NoError(t, err)
	require.Equal(t, "50", resp.AccruedInterest)

	// non-depositor shows a zero position
	resp, err = f.queryServer.Depositor(f.ctx, &types.QueryDepositorRequest{
		VaultId: id,
		Address: f.addrs[1].String(),
	})
	require.NoError(t, err)
	require.Equal(t, "0", resp.Principal)
}

func TestQueryDepositorsAndIsDepositor(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, 3600, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 500)

	resp, err := f.queryServer.Depositors(f.ctx, &types.QueryDepositorsRequest{VaultId: id})
	require.NoError(t, err)
	require.Len(t, resp.Depositors, 2)

	isResp, err := f.queryServer.IsDepositor(f.ctx, &types.QueryIsDepositorRequest{
		VaultId: id,
		Address: f.addrs[0].String(),
	})
	require.NoError(t, err)
	require.True(t, isResp.IsDepositor)

	isResp, err = f.queryServer.IsDepositor(f.ctx, &types.QueryIsDepositorRequest{
		VaultId: id,
		Address: f.addrs[2].String(),
	})
	require.NoError(t, err)
	require.False(t, isResp.IsDepositor)
}

func TestQueryWinner(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, yearSeconds, 500)
	f.deposit(t, id, f.addrs[0], 1000)

	// unsettled vaults have no winner to report
	_, err := f.queryServer.Winner(f.ctx, &types.QueryWinnerRequest{VaultId: id})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	f.advanceTime(yearSeconds + 1)
	require.NoError(t, f.k.SettleVault(f.ctx, id))

	resp, err := f.queryServer.Winner(f.ctx, &types.QueryWinnerRequest{VaultId: id})
	require.NoError(t, err)
	require.Equal(t, f.addrs[0].String(), resp.Winner)
	require.Equal(t, "50", resp.TotalInterest)
}
