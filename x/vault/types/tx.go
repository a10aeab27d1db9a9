package types

import (
	"context"
	"encoding/json"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"
)

// MsgCreateVault opens a new pooled-deposit vault. Administrator only.
type MsgCreateVault struct {
	Admin           string `protobuf:"bytes,1,opt,name=admin,proto3"                                   json:"admin,omitempty"`
	Name            string `protobuf:"bytes,2,opt,name=name,proto3"                                    json:"name,omitempty"`
	Denom           string `protobuf:"bytes,3,opt,name=denom,proto3"                                   json:"denom,omitempty"`
	Duration        int64  `protobuf:"varint,4,opt,name=duration,proto3"                               json:"duration,omitempty"`
	InterestRateBps uint64 `protobuf:"varint,5,opt,name=interest_rate_bps,json=interestRateBps,proto3" json:"interest_rate_bps,omitempty"`
}

// MsgCreateVaultResponse carries the id assigned to the new vault.
type MsgCreateVaultResponse struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// MsgDeposit contributes principal to an open vault.
type MsgDeposit struct {
	Depositor string   `protobuf:"bytes,1,opt,name=depositor,proto3"               json:"depositor,omitempty"`
	VaultId   uint64   `protobuf:"varint,2,opt,name=vault_id,json=vaultId,proto3"  json:"vault_id,omitempty"`
	Amount    sdk.Coin `protobuf:"bytes,3,opt,name=amount,proto3"                  json:"amount"`
}

// MsgDepositResponse is empty.
type MsgDepositResponse struct{}

// MsgWithdraw claims the caller's entitlement from a vault. Before maturity
// that is the raw principal; after maturity it is the settled claimable.
type MsgWithdraw struct {
	Depositor string `protobuf:"bytes,1,opt,name=depositor,proto3"              json:"depositor,omitempty"`
	VaultId   uint64 `protobuf:"varint,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// MsgWithdrawResponse reports the amount paid out.
type MsgWithdrawResponse struct {
	Paid sdk.Coin `protobuf:"bytes,1,opt,name=paid,proto3" json:"paid"`
}

// MsgDeleteVault force-settles every remaining depositor and permanently
// deactivates the vault. Administrator only.
type MsgDeleteVault struct {
	Admin   string `protobuf:"bytes,1,opt,name=admin,proto3"                  json:"admin,omitempty"`
	VaultId uint64 `protobuf:"varint,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// MsgDeleteVaultResponse is empty.
type MsgDeleteVaultResponse struct{}

// MsgFundReserve tops up the module's interest reserve. Administrator only.
type MsgFundReserve struct {
	Admin  string    `protobuf:"bytes,1,opt,name=admin,proto3"  json:"admin,omitempty"`
	Amount sdk.Coins `protobuf:"bytes,2,rep,name=amount,proto3" json:"amount"`
}

// MsgFundReserveResponse is empty.
type MsgFundReserveResponse struct{}

// MsgUpdateAdmin reassigns the administrator. Authority (owner) only.
type MsgUpdateAdmin struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3"               json:"authority,omitempty"`
	NewAdmin  string `protobuf:"bytes,2,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"`
}

// MsgUpdateAdminResponse is empty.
type MsgUpdateAdminResponse struct{}

// MsgUpdateParams replaces the module parameters. Authority only.
type MsgUpdateParams struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	Params    Params `protobuf:"bytes,2,opt,name=params,proto3"    json:"params"`
}

// MsgUpdateParamsResponse is empty.
type MsgUpdateParamsResponse struct{}

// MsgServer is the server API for the vault Msg service.
type MsgServer interface {
	CreateVault(context.Context, *MsgCreateVault) (*MsgCreateVaultResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	DeleteVault(context.Context, *MsgDeleteVault) (*MsgDeleteVaultResponse, error)
	FundReserve(context.Context, *MsgFundReserve) (*MsgFundReserveResponse, error)
	UpdateAdmin(context.Context, *MsgUpdateAdmin) (*MsgUpdateAdminResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// RegisterMsgServer registers the Msg service implementation with a gRPC-style
// service registrar (the module configurator's msg server).
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

const msgServiceName = "vaultquest.vault.v1.Msg"

func _Msg_CreateVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreateVault)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreateVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/CreateVault"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreateVault(ctx, req.(*MsgCreateVault))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDeposit)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/Deposit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Deposit(ctx, req.(*MsgDeposit))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdraw)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/Withdraw"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Withdraw(ctx, req.(*MsgWithdraw))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_DeleteVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDeleteVault)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).DeleteVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/DeleteVault"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).DeleteVault(ctx, req.(*MsgDeleteVault))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_FundReserve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgFundReserve)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).FundReserve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/FundReserve"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).FundReserve(ctx, req.(*MsgFundReserve))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateAdmin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateAdmin)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateAdmin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/UpdateAdmin"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateAdmin(ctx, req.(*MsgUpdateAdmin))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateParams)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/UpdateParams"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateParams(ctx, req.(*MsgUpdateParams))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: msgServiceName,
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateVault", Handler: _Msg_CreateVault_Handler},
		{MethodName: "Deposit", Handler: _Msg_Deposit_Handler},
		{MethodName: "Withdraw", Handler: _Msg_Withdraw_Handler},
		{MethodName: "DeleteVault", Handler: _Msg_DeleteVault_Handler},
		{MethodName: "FundReserve", Handler: _Msg_FundReserve_Handler},
		{MethodName: "UpdateAdmin", Handler: _Msg_UpdateAdmin_Handler},
		{MethodName: "UpdateParams", Handler: _Msg_UpdateParams_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vaultquest/vault/v1/tx.proto",
}

// proto.Message boilerplate for the message types.

func (MsgCreateVault) ProtoMessage()           {}
func (m *MsgCreateVault) Reset()               { *m = MsgCreateVault{} }
func (m *MsgCreateVault) String() string       { return jsonString(m) }
func (MsgCreateVault) XXX_MessageName() string { return "vaultquest.vault.v1.MsgCreateVault" }

func (MsgCreateVaultResponse) ProtoMessage()           {}
func (m *MsgCreateVaultResponse) Reset()               { *m = MsgCreateVaultResponse{} }
func (m *MsgCreateVaultResponse) String() string       { return jsonString(m) }
func (MsgCreateVaultResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgCreateVaultResponse" }

func (MsgDeposit) ProtoMessage()           {}
func (m *MsgDeposit) Reset()               { *m = MsgDeposit{} }
func (m *MsgDeposit) String() string       { return jsonString(m) }
func (MsgDeposit) XXX_MessageName() string { return "vaultquest.vault.v1.MsgDeposit" }

func (MsgDepositResponse) ProtoMessage()           {}
func (m *MsgDepositResponse) Reset()               { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string       { return jsonString(m) }
func (MsgDepositResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgDepositResponse" }

func (MsgWithdraw) ProtoMessage()           {}
func (m *MsgWithdraw) Reset()               { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string       { return jsonString(m) }
func (MsgWithdraw) XXX_MessageName() string { return "vaultquest.vault.v1.MsgWithdraw" }

func (MsgWithdrawResponse) ProtoMessage()           {}
func (m *MsgWithdrawResponse) Reset()               { *m = MsgWithdrawResponse{} }
func (m *MsgWithdrawResponse) String() string       { return jsonString(m) }
func (MsgWithdrawResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgWithdrawResponse" }

func (MsgDeleteVault) ProtoMessage()           {}
func (m *MsgDeleteVault) Reset()               { *m = MsgDeleteVault{} }
func (m *MsgDeleteVault) String() string       { return jsonString(m) }
func (MsgDeleteVault) XXX_MessageName() string { return "vaultquest.vault.v1.MsgDeleteVault" }

func (MsgDeleteVaultResponse) ProtoMessage()           {}
func (m *MsgDeleteVaultResponse) Reset()               { *m = MsgDeleteVaultResponse{} }
func (m *MsgDeleteVaultResponse) String() string       { return jsonString(m) }
func (MsgDeleteVaultResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgDeleteVaultResponse" }

func (MsgFundReserve) ProtoMessage()           {}
func (m *MsgFundReserve) Reset()               { *m = MsgFundReserve{} }
func (m *MsgFundReserve) String() string       { return jsonString(m) }
func (MsgFundReserve) XXX_MessageName() string { return "vaultquest.vault.v1.MsgFundReserve" }

func (MsgFundReserveResponse) ProtoMessage()           {}
func (m *MsgFundReserveResponse) Reset()               { *m = MsgFundReserveResponse{} }
func (m *MsgFundReserveResponse) String() string       { return jsonString(m) }
func (MsgFundReserveResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgFundReserveResponse" }

func (MsgUpdateAdmin) ProtoMessage()           {}
func (m *MsgUpdateAdmin) Reset()               { *m = MsgUpdateAdmin{} }
func (m *MsgUpdateAdmin) String() string       { return jsonString(m) }
func (MsgUpdateAdmin) XXX_MessageName() string { return "vaultquest.vault.v1.MsgUpdateAdmin" }

func (MsgUpdateAdminResponse) ProtoMessage()           {}
func (m *MsgUpdateAdminResponse) Reset()               { *m = MsgUpdateAdminResponse{} }
func (m *MsgUpdateAdminResponse) String() string       { return jsonString(m) }
func (MsgUpdateAdminResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgUpdateAdminResponse" }

func (MsgUpdateParams) ProtoMessage()           {}
func (m *MsgUpdateParams) Reset()               { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string       { return jsonString(m) }
func (MsgUpdateParams) XXX_MessageName() string { return "vaultquest.vault.v1.MsgUpdateParams" }

func (MsgUpdateParamsResponse) ProtoMessage()           {}
func (m *MsgUpdateParamsResponse) Reset()               { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string       { return jsonString(m) }
func (MsgUpdateParamsResponse) XXX_MessageName() string { return "vaultquest.vault.v1.MsgUpdateParamsResponse" }

func jsonString(v interface{}) string {
	bz, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}
