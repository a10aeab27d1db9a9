package module

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func (a AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: "vaultquest.vault.v1.Query",
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Query the current vault module parameters",
				},
				{
					RpcMethod: "Vault",
					Use:       "vault [vault-id]",
					Short:     "Query a vault by id",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
					},
				},
				{
					RpcMethod: "Vaults",
					Use:       "vaults",
					Short:     "Query all vaults",
				},
				{
					RpcMethod: "Depositor",
					Use:       "depositor [vault-id] [address]",
					Short:     "Query a depositor's principal and interest estimate",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
						{ProtoField: "address"},
					},
				},
				{
					RpcMethod: "Depositors",
					Use:       "depositors [vault-id]",
					Short:     "Query the depositor list of a vault",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
					},
				},
				{
					RpcMethod: "IsDepositor",
					Use:       "is-depositor [vault-id] [address]",
					Short:     "Query whether an address holds a position in a vault",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
						{ProtoField: "address"},
					},
				},
				{
					RpcMethod: "Winner",
					Use:       "winner [vault-id]",
					Short:     "Query the settled winner and interest pot of a vault",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
					},
				},
				{
					RpcMethod: "HasWinner",
					Use:       "has-winner [vault-id]",
					Short:     "Query whether a vault has been settled",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
					},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service: "vaultquest.vault.v1.Msg",
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "CreateVault",
					Use:       "create-vault [name] [denom] [duration-seconds] [interest-rate-bps]",
					Short:     "Create a new vault (admin only)",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "name"},
						{ProtoField: "denom"},
						{ProtoField: "duration"},
						{ProtoField: "interest_rate_bps"},
					},
				},
				{
					RpcMethod: "Deposit",
					Use:       "deposit [vault-id] [amount]",
					Short:     "Deposit coins into an active vault",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
						{ProtoField: "amount"},
					},
				},
				{
					RpcMethod: "Withdraw",
					Use:       "withdraw [vault-id]",
					Short:     "Withdraw your entitlement from a vault",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
					},
				},
				{
					RpcMethod: "DeleteVault",
					Use:       "delete-vault [vault-id]",
					Short:     "Force-settle and deactivate a vault (admin only)",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "vault_id"},
					},
				},
				{
					RpcMethod: "FundReserve",
					Use:       "fund-reserve [amount]",
					Short:     "Top up the module interest reserve (admin only)",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "amount"},
					},
				},
				{
					RpcMethod: "UpdateAdmin",
					Skip:      true, // authority gated
				},
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // authority gated
				},
			},
		},
	}
}
