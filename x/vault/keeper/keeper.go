// Package keeper implements the vault module: a registry of pooled-deposit
// escrow vaults with randomized winner-take-interest settlement.
package keeper

import (
	"context"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

// Keeper is the vault registry plus its settlement engine. Per-vault records
// hold the lifecycle fields and the ordered depositor list; per-depositor
// balances live in flattened (vaultId, address)-keyed maps.
type Keeper struct {
	cdc codec.BinaryCodec

	logger log.Logger

	// state management
	Schema        collections.Schema
	Params        collections.Item[types.Params]
	VaultSequence collections.Sequence
	Vaults        collections.Map[uint64, types.Vault]
	Principals    collections.Map[collections.Pair[uint64, string], math.Int]
	Claimables    collections.Map[collections.Pair[uint64, string], math.Int]

	// dependencies
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper

	authority string
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}

	pairCodec := collections.PairKeyCodec(collections.Uint64Key, collections.StringKey)

	k := Keeper{
		cdc:    cdc,
		logger: logger,

		Params: collections.NewItem(
			sb,
			types.ParamsKey,
			"params",
			codec.CollValue[types.Params](cdc),
		),
		VaultSequence: collections.NewSequence(
			sb,
			types.VaultSequenceKey,
			"vault_sequence",
		),
		Vaults: collections.NewMap(
			sb,
			types.VaultsKey,
			"vaults",
			collections.Uint64Key,
			codec.CollValue[types.Vault](cdc),
		),
		Principals: collections.NewMap(
			sb,
			types.PrincipalsKey,
			"principals",
			pairCodec,
			sdk.IntValue,
		),
		Claimables: collections.NewMap(
			sb,
			types.ClaimablesKey,
			"claimables",
			pairCodec,
			sdk.IntValue,
		),

		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authority:     authority,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the module authority (the owner role).
func (k Keeper) GetAuthority() string {
	return k.authority
}

// RequireAdmin verifies that addr is the current administrator.
func (k Keeper) RequireAdmin(ctx context.Context, addr string) error {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if params.Admin == "" {
		return errorsmod.Wrap(types.ErrUnauthorized, "no administrator configured")
	}
	if addr != params.Admin {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected administrator %s, got %s", params.Admin, addr)
	}
	return nil
}

// GetVault loads one vault record.
func (k Keeper) GetVault(ctx context.Context, vaultID uint64) (types.Vault, error) {
	vault, err := k.Vaults.Get(ctx, vaultID)
	if err != nil {
		return types.Vault{}, errorsmod.Wrapf(types.ErrVaultNotFound, "id %d", vaultID)
	}
	return vault, nil
}

// GetPrincipal returns the current principal of addr in a vault, zero when
// none is recorded.
func (k Keeper) GetPrincipal(ctx context.Context, vaultID uint64, addr string) math.Int {
	p, err := k.Principals.Get(ctx, collections.Join(vaultID, addr))
	if err != nil {
		return math.ZeroInt()
	}
	return p
}

// GetClaimable returns the settled claimable of addr in a vault, zero before
// settlement or after a successful claim.
func (k Keeper) GetClaimable(ctx context.Context, vaultID uint64, addr string) math.Int {
	c, err := k.Claimables.Get(ctx, collections.Join(vaultID, addr))
	if err != nil {
		return math.ZeroInt()
	}
	return c
}

// PoolBalance returns the module account's on-hand balance of denom. This is
// principal escrow plus whatever interest reserve the administrator funded.
func (k Keeper) PoolBalance(ctx context.Context, denom string) sdk.Coin {
	moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
	return k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
}
