package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

func TestMsgValidateBasic(t *testing.T) {
	addrs := simtestutil.CreateIncrementalAccounts(2)
	admin, depositor := addrs[0].String(), addrs[1].String()

	tests := []struct {
		name    string
		msg     sdk.Msg
		wantErr bool
	}{
		{
			name: "valid create vault",
			msg: &types.MsgCreateVault{
				Admin: admin, Name: "pool", Denom: "uusdc",
				Duration: 3600, InterestRateBps: 500,
			},
		},
		{
			name: "create vault bad admin",
			msg: &types.MsgCreateVault{
				Admin: "garbage", Name: "pool", Denom: "uusdc",
				Duration: 3600, InterestRateBps: 500,
			},
			wantErr: true,
		},
		{
			name: "create vault empty name",
			msg: &types.MsgCreateVault{
				Admin: admin, Denom: "uusdc",
				Duration: 3600, InterestRateBps: 500,
			},
			wantErr: true,
		},
		{
			name: "create vault bad denom",
			msg: &types.MsgCreateVault{
				Admin: admin, Name: "pool", Denom: "1",
				Duration: 3600, InterestRateBps: 500,
			},
			wantErr: true,
		},
		{
			name: "create vault negative duration",
			msg: &types.MsgCreateVault{
				Admin: admin, Name: "pool", Denom: "uusdc",
				Duration: -1, InterestRateBps: 500,
			},
			wantErr: true,
		},
		{
			name: "valid deposit",
			msg: &types.MsgDeposit{
				Depositor: depositor, VaultId: 1,
				Amount: sdk.NewInt64Coin("uusdc", 100),
			},
		},
		{
			name: "deposit zero vault id",
			msg: &types.MsgDeposit{
				Depositor: depositor,
				Amount:    sdk.NewInt64Coin("uusdc", 100),
			},
			wantErr: true,
		},
		{
			name: "deposit zero amount",
			msg: &types.MsgDeposit{
				Depositor: depositor, VaultId: 1,
				Amount: sdk.NewInt64Coin("uusdc", 0),
			},
			wantErr: true,
		},
		{
			name: "valid withdraw",
			msg:  &types.MsgWithdraw{Depositor: depositor, VaultId: 1},
		},
		{
			name:    "withdraw bad depositor",
			msg:     &types.MsgWithdraw{Depositor: "garbage", VaultId: 1},
			wantErr: true,
		},
		{
			name: "valid delete vault",
			msg:  &types.MsgDeleteVault{Admin: admin, VaultId: 1},
		},
		{
			name:    "delete vault zero id",
			msg:     &types.MsgDeleteVault{Admin: admin},
			wantErr: true,
		},
		{
			name: "valid fund reserve",
			msg: &types.MsgFundReserve{
				Admin:  admin,
				Amount: sdk.NewCoins(sdk.NewInt64Coin("uusdc", 100)),
			},
		},
		{
			name:    "fund reserve empty amount",
			msg:     &types.MsgFundReserve{Admin: admin},
			wantErr: true,
		},
		{
			name: "valid update admin",
			msg:  &types.MsgUpdateAdmin{Authority: admin, NewAdmin: depositor},
		},
		{
			name:    "update admin bad new admin",
			msg:     &types.MsgUpdateAdmin{Authority: admin, NewAdmin: "garbage"},
			wantErr: true,
		},
		{
			name: "valid update params",
			msg: &types.MsgUpdateParams{
				Authority: admin,
				Params:    types.DefaultParams(),
			},
		},
		{
			name: "update params bad authority",
			msg: &types.MsgUpdateParams{
				Authority: "garbage",
				Params:    types.DefaultParams(),
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := tc.msg.(interface{ ValidateBasic() error })
			require.True(t, ok)
			err := v.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
