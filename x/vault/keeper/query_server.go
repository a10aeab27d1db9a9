package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

type queryServer struct {
	k Keeper
}

var _ types.QueryServer = queryServer{}

// NewQueryServerImpl returns an implementation of QueryServer.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return queryServer{k: keeper}
}

// Params returns the current module parameters.
func (qs queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := qs.k.Params.Get(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Vault returns a single vault with derived timing info.
func (qs queryServer) Vault(ctx context.Context, req *types.QueryVaultRequest) (*types.QueryVaultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vault, err := qs.k.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	return &types.QueryVaultResponse{
		Vault:          &vault,
		TimeRemaining:  vault.TimeRemaining(now),
		DepositorCount: uint64(len(vault.Depositors)),
	}, nil
}

// Vaults returns every vault in the store.
func (qs queryServer) Vaults(ctx context.Context, req *types.QueryVaultsRequest) (*types.QueryVaultsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	resp := &types.QueryVaultsResponse{}
	if err := qs.k.Vaults.Walk(ctx, nil, func(_ uint64, vault types.Vault) (bool, error) {
		resp.Vaults = append(resp.Vaults, vault)
		return false, nil
	}); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

// Depositor returns an address's live principal and its interest estimate.
// The estimate is the full-term amount once the vault has matured and zero
// before that, matching what settlement would credit.
func (qs queryServer) Depositor(ctx context.Context, req *types.QueryDepositorRequest) (*types.QueryDepositorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	vault, err := qs.k.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	principal := qs.k.GetPrincipal(ctx, req.VaultId, req.Address)
	accrued := qs.k.AccruedInterest(ctx, vault, req.Address)
	return &types.QueryDepositorResponse{
		Principal:       principal.String(),
		AccruedInterest: accrued.String(),
	}, nil
}

// Depositors lists the addresses still holding a position in the vault.
func (qs queryServer) Depositors(ctx context.Context, req *types.QueryDepositorsRequest) (*types.QueryDepositorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vault, err := qs.k.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryDepositorsResponse{Depositors: vault.Depositors}, nil
}

// IsDepositor reports whether an address currently holds a position.
func (qs queryServer) IsDepositor(ctx context.Context, req *types.QueryIsDepositorRequest) (*types.QueryIsDepositorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vault, err := qs.k.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryIsDepositorResponse{IsDepositor: vault.HasDepositor(req.Address)}, nil
}

// Winner returns the settled winner and pot. It fails until the draw has run.
func (qs queryServer) Winner(ctx context.Context, req *types.QueryWinnerRequest) (*types.QueryWinnerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vault, err := qs.k.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if !vault.WinnerSelected {
		return nil, status.Error(codes.FailedPrecondition, types.ErrNotYetSettled.Error())
	}
	return &types.QueryWinnerResponse{
		Winner:        vault.Winner,
		TotalInterest: vault.TotalInterest,
	}, nil
}

// HasWinner reports whether settlement has run for the vault.
func (qs queryServer) HasWinner(ctx context.Context, req *types.QueryHasWinnerRequest) (*types.QueryHasWinnerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	vault, err := qs.k.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryHasWinnerResponse{HasWinner: vault.WinnerSelected}, nil
}
