package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/keeper"
	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

const testDenom = "uusdc"

var maccPerms = map[string][]string{
	authtypes.FeeCollectorName: nil,
	minttypes.ModuleName:       {authtypes.Minter},
	types.ModuleName:           nil,
}

type testFixture struct {
	ctx         sdk.Context
	k           keeper.Keeper
	msgServer   types.MsgServer
	queryServer types.QueryServer

	accountKeeper authkeeper.AccountKeeper
	bankKeeper    bankkeeper.BaseKeeper

	addrs      []sdk.AccAddress
	admin      sdk.AccAddress
	govModAddr string
}

// genesisTime anchors every fixture at a fixed block time so maturity
// arithmetic in tests is exact.
var genesisTime = time.Unix(1_700_000_000, 0).UTC()

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	logger := log.NewTestLogger(t)
	encCfg := moduletestutil.MakeTestEncodingConfig()

	f.govModAddr = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	f.addrs = simtestutil.CreateIncrementalAccounts(4)
	f.admin = f.addrs[3]

	keys := storetypes.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		types.StoreKey,
	)
	f.ctx = sdk.NewContext(
		integration.CreateMultiStore(keys, logger),
		cmtproto.Header{Time: genesisTime},
		false,
		logger,
	).WithBlockTime(genesisTime)

	authtypes.RegisterInterfaces(encCfg.InterfaceRegistry)
	banktypes.RegisterInterfaces(encCfg.InterfaceRegistry)
	types.RegisterInterfaces(encCfg.InterfaceRegistry)

	f.accountKeeper = authkeeper.NewAccountKeeper(
		encCfg.Codec, runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		f.govModAddr,
	)

	f.bankKeeper = bankkeeper.NewBaseKeeper(
		encCfg.Codec, runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		f.accountKeeper,
		nil,
		f.govModAddr, logger,
	)

	f.k = keeper.NewKeeper(
		encCfg.Codec,
		runtime.NewKVStoreService(keys[types.StoreKey]),
		logger,
		f.govModAddr,
		f.accountKeeper,
		f.bankKeeper,
	)
	f.msgServer = keeper.NewMsgServerImpl(f.k)
	f.queryServer = keeper.NewQueryServerImpl(f.k)

	// Instantiate the module account so the pool has an address to hold funds.
	f.accountKeeper.GetModuleAccount(f.ctx, types.ModuleName)

	gs := types.DefaultGenesis()
	gs.Params.Admin = f.admin.String()
	require.NoError(t, f.k.InitGenesis(f.ctx, gs))

	return f
}

// fundAccount mints fresh coins straight to addr.
func (f *testFixture) fundAccount(t *testing.T, addr sdk.AccAddress, coins sdk.Coins) {
	t.Helper()
	require.NoError(t, f.bankKeeper.MintCoins(f.ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.bankKeeper.SendCoinsFromModuleToAccount(f.ctx, minttypes.ModuleName, addr, coins))
}

// createVault opens a vault through the msg server and returns its id.
func (f *testFixture) createVault(t *testing.T, duration int64, rateBps uint64) uint64 {
	t.Helper()
	resp, err := f.msgServer.CreateVault(f.ctx, &types.MsgCreateVault{
		Admin:           f.admin.String(),
		Name:            "test vault",
		Denom:           testDenom,
		Duration:        duration,
		InterestRateBps: rateBps,
	})
	require.NoError(t, err)
	return resp.VaultId
}

// deposit funds addr and deposits amount into the vault.
func (f *testFixture) deposit(t *testing.T, vaultID uint64, addr sdk.AccAddress, amount int64) {
	t.Helper()
	coin := sdk.NewInt64Coin(testDenom, amount)
	f.fundAccount(t, addr, sdk.NewCoins(coin))
	_, err := f.msgServer.Deposit(f.ctx, &types.MsgDeposit{
		Depositor: addr.String(),
		VaultId:   vaultID,
		Amount:    coin,
	})
	require.NoError(t, err)
}

// fundReserve tops up the module pool with interest money.
func (f *testFixture) fundReserve(t *testing.T, amount int64) {
	t.Helper()
	coins := sdk.NewCoins(sdk.NewInt64Coin(testDenom, amount))
	f.fundAccount(t, f.admin, coins)
	_, err := f.msgServer.FundReserve(f.ctx, &types.MsgFundReserve{
		Admin:  f.admin.String(),
		Amount: coins,
	})
	require.NoError(t, err)
}

// advanceTime moves the block time forward.
func (f *testFixture) advanceTime(seconds int64) {
	f.ctx = f.ctx.WithBlockTime(f.ctx.BlockTime().Add(time.Duration(seconds) * time.Second))
}

func TestCreateVault(t *testing.T) {
	f := SetupTest(t)

	id := f.createVault(t, 3600, 500)
	require.EqualValues(t, 1, id)

	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.True(t, vault.Active)
	require.Equal(t, testDenom, vault.Denom)
	require.EqualValues(t, 500, vault.InterestRateBps)
	require.Equal(t, genesisTime.Unix(), vault.CreatedAt)
	require.True(t, vault.TotalPrincipalInt().IsZero())
	require.Empty(t, vault.Depositors)

	// ids are sequential
	id2 := f.createVault(t, 3600, 500)
	require.EqualValues(t, 2, id2)
}

func TestGetVaultNotFound(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.GetVault(f.ctx, 99)
	require.ErrorIs(t, err, types.ErrVaultNotFound)
}

func TestDepositTracksPrincipal(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, 3600, 500)

	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 250)
	f.deposit(t, id, f.addrs[0], 500) // top-up, no duplicate entry

	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, vault.Depositors, 2)
	require.Equal(t, math.NewInt(1750), vault.TotalPrincipalInt())

	require.Equal(t, math.NewInt(1500), f.k.GetPrincipal(f.ctx, id, f.addrs[0].String()))
	require.Equal(t, math.NewInt(250), f.k.GetPrincipal(f.ctx, id, f.addrs[1].String()))

	// pool holds exactly the deposits
	require.Equal(t, math.NewInt(1750), f.k.PoolBalance(f.ctx, testDenom).Amount)
}

func TestDepositZeroAmountRejected(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, 3600, 500)

	err := f.k.Deposit(f.ctx, id, f.addrs[0], sdk.NewInt64Coin(testDenom, 0))
	require.ErrorIs(t, err, types.ErrZeroAmount)

	vault, err := f.k.GetVault(f.ctx, id)
	require.NoError(t, err)
	require.Empty(t, vault.Depositors)
	require.True(t, vault.TotalPrincipalInt().IsZero())
}

// The vault total must equal the sum of per-depositor principals after any
// sequence of deposits and withdrawals.
func TestPrincipalAccountingInvariant(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, 3600, 500)

	checkInvariant := func() {
		vault, err := f.k.GetVault(f.ctx, id)
		require.NoError(t, err)
		sum := math.ZeroInt()
		for _, addr := range vault.Depositors {
			sum = sum.Add(f.k.GetPrincipal(f.ctx, id, addr))
		}
		require.Equal(t, vault.TotalPrincipalInt(), sum)
	}

	f.deposit(t, id, f.addrs[0], 1000)
	checkInvariant()
	f.deposit(t, id, f.addrs[1], 300)
	checkInvariant()
	f.deposit(t, id, f.addrs[2], 700)
	checkInvariant()

	// early exit removes the position entirely
	_, err := f.msgServer.Withdraw(f.ctx, &types.MsgWithdraw{
		Depositor: f.addrs[1].String(),
		VaultId:   id,
	})
	require.NoError(t, err)
	checkInvariant()

	f.deposit(t, id, f.addrs[1], 50)
	checkInvariant()
}

func TestExportGenesisRoundTrip(t *testing.T) {
	f := SetupTest(t)
	id := f.createVault(t, 3600, 500)
	f.deposit(t, id, f.addrs[0], 1000)
	f.deposit(t, id, f.addrs[1], 250)

	gs, err := f.k.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NoError(t, gs.Validate())
	require.Len(t, gs.Vaults, 1)
	require.Len(t, gs.Deposits, 2)
	require.Equal(t, f.admin.String(), gs.Params.Admin)

	// replay into a fresh fixture
	f2 := SetupTest(t)
	require.NoError(t, f2.k.InitGenesis(f2.ctx, gs))

	vault, err := f2.k.GetVault(f2.ctx, id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1250), vault.TotalPrincipalInt())
	require.Equal(t, math.NewInt(1000), f2.k.GetPrincipal(f2.ctx, id, f.addrs[0].String()))

	// sequence resumes after the highest imported id
	next := f2.createVault(t, 3600, 100)
	require.EqualValues(t, 2, next)
}

func TestRequireAdmin(t *testing.T) {
	f := SetupTest(t)

	require.NoError(t, f.k.RequireAdmin(f.ctx, f.admin.String()))
	require.ErrorIs(t, f.k.RequireAdmin(f.ctx, f.addrs[0].String()), types.ErrUnauthorized)

	// unset admin rejects everyone
	params, err := f.k.Params.Get(f.ctx)
	require.NoError(t, err)
	params.Admin = ""
	require.NoError(t, f.k.Params.Set(f.ctx, params))
	require.ErrorIs(t, f.k.RequireAdmin(f.ctx, f.admin.String()), types.ErrUnauthorized)
}
