package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

// InitGenesis restores module state from a genesis snapshot.
func (k Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, gs.Params); err != nil {
		return err
	}

	var maxID uint64
	for _, vault := range gs.Vaults {
		if err := k.Vaults.Set(ctx, vault.Id, vault); err != nil {
			return err
		}
		if vault.Id > maxID {
			maxID = vault.Id
		}
	}
	// The sequence hands out maxID+1 next.
	if err := k.VaultSequence.Set(ctx, maxID); err != nil {
		return err
	}

	for _, d := range gs.Deposits {
		principal, ok := math.NewIntFromString(d.Principal)
		if !ok {
			return types.ErrInvalidParameter.Wrapf("deposit principal %q", d.Principal)
		}
		if err := k.Principals.Set(ctx, collections.Join(d.VaultId, d.Address), principal); err != nil {
			return err
		}
	}

	for _, c := range gs.Claims {
		amount, ok := math.NewIntFromString(c.Amount)
		if !ok {
			return types.ErrInvalidParameter.Wrapf("claim amount %q", c.Amount)
		}
		if err := k.Claimables.Set(ctx, collections.Join(c.VaultId, c.Address), amount); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis writes the full module state out for a snapshot.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}
	gs := types.NewGenesisState(params)

	if err := k.Vaults.Walk(ctx, nil, func(_ uint64, vault types.Vault) (bool, error) {
		gs.Vaults = append(gs.Vaults, vault)
		return false, nil
	}); err != nil {
		return nil, err
	}

	if err := k.Principals.Walk(ctx, nil, func(key collections.Pair[uint64, string], principal math.Int) (bool, error) {
		gs.Deposits = append(gs.Deposits, types.DepositRecord{
			VaultId:   key.K1(),
			Address:   key.K2(),
			Principal: principal.String(),
		})
		return false, nil
	}); err != nil {
		return nil, err
	}

	if err := k.Claimables.Walk(ctx, nil, func(key collections.Pair[uint64, string], amount math.Int) (bool, error) {
		gs.Claims = append(gs.Claims, types.ClaimRecord{
			VaultId: key.K1(),
			Address: key.K2(),
			Amount:  amount.String(),
		})
		return false, nil
	}); err != nil {
		return nil, err
	}

	return gs, nil
}
