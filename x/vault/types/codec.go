package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())

// RegisterLegacyAminoCodec registers the module's messages with the legacy
// amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateVault{}, "vaultquest/vault/MsgCreateVault", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "vaultquest/vault/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "vaultquest/vault/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgDeleteVault{}, "vaultquest/vault/MsgDeleteVault", nil)
	cdc.RegisterConcrete(&MsgFundReserve{}, "vaultquest/vault/MsgFundReserve", nil)
	cdc.RegisterConcrete(&MsgUpdateAdmin{}, "vaultquest/vault/MsgUpdateAdmin", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "vaultquest/vault/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's message implementations.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateVault{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgDeleteVault{},
		&MsgFundReserve{},
		&MsgUpdateAdmin{},
		&MsgUpdateParams{},
	)
}
