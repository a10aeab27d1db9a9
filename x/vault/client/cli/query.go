package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

// NewQueryCmd creates and returns the query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryParams(),
		CmdQueryVault(),
		CmdQueryVaults(),
		CmdQueryDepositor(),
		CmdQueryDepositors(),
		CmdQueryWinner(),
	)

	return cmd
}

// CmdQueryParams queries the module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current vault module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryVault queries a single vault
func CmdQueryVault() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault [vault-id]",
		Short: "Query a vault by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid vault-id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Vault(context.Background(), &types.QueryVaultRequest{
				VaultId: vaultID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryVaults queries every vault
func CmdQueryVaults() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaults",
		Short: "Query all vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Vaults(context.Background(), &types.QueryVaultsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryDepositor queries a depositor's position in a vault
func CmdQueryDepositor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depositor [vault-id] [address]",
		Short: "Query a depositor's principal and interest estimate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid vault-id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Depositor(context.Background(), &types.QueryDepositorRequest{
				VaultId: vaultID,
				Address: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryDepositors queries the depositor list of a vault
func CmdQueryDepositors() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depositors [vault-id]",
		Short: "Query the depositor list of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid vault-id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Depositors(context.Background(), &types.QueryDepositorsRequest{
				VaultId: vaultID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryWinner queries the settled winner of a vault
func CmdQueryWinner() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winner [vault-id]",
		Short: "Query the settled winner and interest pot of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			vaultID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid vault-id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Winner(context.Background(), &types.QueryWinnerRequest{
				VaultId: vaultID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
