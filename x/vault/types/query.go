package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the module parameters.
type QueryParamsResponse struct {
	Params Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
}

// QueryVaultRequest requests a single vault summary.
type QueryVaultRequest struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// QueryVaultResponse is the read-only vault summary: the record plus derived
// fields the caller would otherwise recompute.
type QueryVaultResponse struct {
	Vault          *Vault `protobuf:"bytes,1,opt,name=vault,proto3"                                    json:"vault,omitempty"`
	TimeRemaining  int64  `protobuf:"varint,2,opt,name=time_remaining,json=timeRemaining,proto3"       json:"time_remaining,omitempty"`
	DepositorCount uint64 `protobuf:"varint,3,opt,name=depositor_count,json=depositorCount,proto3"     json:"depositor_count,omitempty"`
}

// QueryVaultsRequest requests all vaults.
type QueryVaultsRequest struct{}

// QueryVaultsResponse lists every vault in id order.
type QueryVaultsResponse struct {
	Vaults []Vault `protobuf:"bytes,1,rep,name=vaults,proto3" json:"vaults"`
}

// QueryDepositorRequest requests one depositor's balance in a vault.
type QueryDepositorRequest struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3"                json:"address,omitempty"`
}

// QueryDepositorResponse carries the principal and the interest the depositor
// would earn for the full term, shown once the vault has matured. Computed on
// demand; nothing is mutated.
type QueryDepositorResponse struct {
	Principal       string `protobuf:"bytes,1,opt,name=principal,proto3"                                  json:"principal,omitempty"`
	AccruedInterest string `protobuf:"bytes,2,opt,name=accrued_interest,json=accruedInterest,proto3"      json:"accrued_interest,omitempty"`
}

// QueryDepositorsRequest requests the full depositor list of a vault.
type QueryDepositorsRequest struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// QueryDepositorsResponse lists current depositor addresses.
type QueryDepositorsResponse struct {
	Depositors []string `protobuf:"bytes,1,rep,name=depositors,proto3" json:"depositors,omitempty"`
}

// QueryIsDepositorRequest asks whether an address currently holds principal.
type QueryIsDepositorRequest struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3"                json:"address,omitempty"`
}

// QueryIsDepositorResponse is the membership answer.
type QueryIsDepositorResponse struct {
	IsDepositor bool `protobuf:"varint,1,opt,name=is_depositor,json=isDepositor,proto3" json:"is_depositor,omitempty"`
}

// QueryWinnerRequest requests the settled winner of a vault.
type QueryWinnerRequest struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// QueryWinnerResponse names the winner and the interest pot awarded to them.
type QueryWinnerResponse struct {
	Winner        string `protobuf:"bytes,1,opt,name=winner,proto3"                                json:"winner,omitempty"`
	TotalInterest string `protobuf:"bytes,2,opt,name=total_interest,json=totalInterest,proto3"     json:"total_interest,omitempty"`
}

// QueryHasWinnerRequest asks whether settlement has happened.
type QueryHasWinnerRequest struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
}

// QueryHasWinnerResponse is the settlement flag.
type QueryHasWinnerResponse struct {
	HasWinner bool `protobuf:"varint,1,opt,name=has_winner,json=hasWinner,proto3" json:"has_winner,omitempty"`
}

// QueryServer is the server API for the vault Query service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Vault(context.Context, *QueryVaultRequest) (*QueryVaultResponse, error)
	Vaults(context.Context, *QueryVaultsRequest) (*QueryVaultsResponse, error)
	Depositor(context.Context, *QueryDepositorRequest) (*QueryDepositorResponse, error)
	Depositors(context.Context, *QueryDepositorsRequest) (*QueryDepositorsResponse, error)
	IsDepositor(context.Context, *QueryIsDepositorRequest) (*QueryIsDepositorResponse, error)
	Winner(context.Context, *QueryWinnerRequest) (*QueryWinnerResponse, error)
	HasWinner(context.Context, *QueryHasWinnerRequest) (*QueryHasWinnerResponse, error)
}

// RegisterQueryServer registers the Query service implementation.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

const queryServiceName = "vaultquest.vault.v1.Query"

// QueryClient is the client API for the vault Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Vault(ctx context.Context, in *QueryVaultRequest, opts ...grpc.CallOption) (*QueryVaultResponse, error)
	Vaults(ctx context.Context, in *QueryVaultsRequest, opts ...grpc.CallOption) (*QueryVaultsResponse, error)
	Depositor(ctx context.Context, in *QueryDepositorRequest, opts ...grpc.CallOption) (*QueryDepositorResponse, error)
	Depositors(ctx context.Context, in *QueryDepositorsRequest, opts ...grpc.CallOption) (*QueryDepositorsResponse, error)
	IsDepositor(ctx context.Context, in *QueryIsDepositorRequest, opts ...grpc.CallOption) (*QueryIsDepositorResponse, error)
	Winner(ctx context.Context, in *QueryWinnerRequest, opts ...grpc.CallOption) (*QueryWinnerResponse, error)
	HasWinner(ctx context.Context, in *QueryHasWinnerRequest, opts ...grpc.CallOption) (*QueryHasWinnerResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient wraps a client connection into a QueryClient.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Params", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Vault(ctx context.Context, in *QueryVaultRequest, opts ...grpc.CallOption) (*QueryVaultResponse, error) {
	out := new(QueryVaultResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Vault", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Vaults(ctx context.Context, in *QueryVaultsRequest, opts ...grpc.CallOption) (*QueryVaultsResponse, error) {
	out := new(QueryVaultsResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Vaults", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Depositor(ctx context.Context, in *QueryDepositorRequest, opts ...grpc.CallOption) (*QueryDepositorResponse, error) {
	out := new(QueryDepositorResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Depositor", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Depositors(ctx context.Context, in *QueryDepositorsRequest, opts ...grpc.CallOption) (*QueryDepositorsResponse, error) {
	out := new(QueryDepositorsResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Depositors", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) IsDepositor(ctx context.Context, in *QueryIsDepositorRequest, opts ...grpc.CallOption) (*QueryIsDepositorResponse, error) {
	out := new(QueryIsDepositorResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/IsDepositor", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Winner(ctx context.Context, in *QueryWinnerRequest, opts ...grpc.CallOption) (*QueryWinnerResponse, error) {
	out := new(QueryWinnerResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Winner", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) HasWinner(ctx context.Context, in *QueryHasWinnerRequest, opts ...grpc.CallOption) (*QueryHasWinnerResponse, error) {
	out := new(QueryHasWinnerResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/HasWinner", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/Params"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Vault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Vault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/Vault"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Vault(ctx, req.(*QueryVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Vaults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryVaultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Vaults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/Vaults"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Vaults(ctx, req.(*QueryVaultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Depositor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDepositorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Depositor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/Depositor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Depositor(ctx, req.(*QueryDepositorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Depositors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDepositorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Depositors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/Depositors"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Depositors(ctx, req.(*QueryDepositorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_IsDepositor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryIsDepositorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).IsDepositor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/IsDepositor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).IsDepositor(ctx, req.(*QueryIsDepositorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Winner_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryWinnerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Winner(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/Winner"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Winner(ctx, req.(*QueryWinnerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_HasWinner_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryHasWinnerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).HasWinner(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/HasWinner"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).HasWinner(ctx, req.(*QueryHasWinnerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: queryServiceName,
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Params", Handler: _Query_Params_Handler},
		{MethodName: "Vault", Handler: _Query_Vault_Handler},
		{MethodName: "Vaults", Handler: _Query_Vaults_Handler},
		{MethodName: "Depositor", Handler: _Query_Depositor_Handler},
		{MethodName: "Depositors", Handler: _Query_Depositors_Handler},
		{MethodName: "IsDepositor", Handler: _Query_IsDepositor_Handler},
		{MethodName: "Winner", Handler: _Query_Winner_Handler},
		{MethodName: "HasWinner", Handler: _Query_HasWinner_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vaultquest/vault/v1/query.proto",
}

// proto.Message boilerplate for query types.

func (QueryParamsRequest) ProtoMessage()           {}
func (m *QueryParamsRequest) Reset()               { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string       { return jsonString(m) }
func (QueryParamsRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryParamsRequest" }

func (QueryParamsResponse) ProtoMessage()           {}
func (m *QueryParamsResponse) Reset()               { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string       { return jsonString(m) }
func (QueryParamsResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryParamsResponse" }

func (QueryVaultRequest) ProtoMessage()           {}
func (m *QueryVaultRequest) Reset()               { *m = QueryVaultRequest{} }
func (m *QueryVaultRequest) String() string       { return jsonString(m) }
func (QueryVaultRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryVaultRequest" }

func (QueryVaultResponse) ProtoMessage()           {}
func (m *QueryVaultResponse) Reset()               { *m = QueryVaultResponse{} }
func (m *QueryVaultResponse) String() string       { return jsonString(m) }
func (QueryVaultResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryVaultResponse" }

func (QueryVaultsRequest) ProtoMessage()           {}
func (m *QueryVaultsRequest) Reset()               { *m = QueryVaultsRequest{} }
func (m *QueryVaultsRequest) String() string       { return jsonString(m) }
func (QueryVaultsRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryVaultsRequest" }

func (QueryVaultsResponse) ProtoMessage()           {}
func (m *QueryVaultsResponse) Reset()               { *m = QueryVaultsResponse{} }
func (m *QueryVaultsResponse) String() string       { return jsonString(m) }
func (QueryVaultsResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryVaultsResponse" }

func (QueryDepositorRequest) ProtoMessage()           {}
func (m *QueryDepositorRequest) Reset()               { *m = QueryDepositorRequest{} }
func (m *QueryDepositorRequest) String() string       { return jsonString(m) }
func (QueryDepositorRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryDepositorRequest" }

func (QueryDepositorResponse) ProtoMessage()           {}
func (m *QueryDepositorResponse) Reset()               { *m = QueryDepositorResponse{} }
func (m *QueryDepositorResponse) String() string       { return jsonString(m) }
func (QueryDepositorResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryDepositorResponse" }

func (QueryDepositorsRequest) ProtoMessage()           {}
func (m *QueryDepositorsRequest) Reset()               { *m = QueryDepositorsRequest{} }
func (m *QueryDepositorsRequest) String() string       { return jsonString(m) }
func (QueryDepositorsRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryDepositorsRequest" }

func (QueryDepositorsResponse) ProtoMessage()           {}
func (m *QueryDepositorsResponse) Reset()               { *m = QueryDepositorsResponse{} }
func (m *QueryDepositorsResponse) String() string       { return jsonString(m) }
func (QueryDepositorsResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryDepositorsResponse" }

func (QueryIsDepositorRequest) ProtoMessage()           {}
func (m *QueryIsDepositorRequest) Reset()               { *m = QueryIsDepositorRequest{} }
func (m *QueryIsDepositorRequest) String() string       { return jsonString(m) }
func (QueryIsDepositorRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryIsDepositorRequest" }

func (QueryIsDepositorResponse) ProtoMessage()           {}
func (m *QueryIsDepositorResponse) Reset()               { *m = QueryIsDepositorResponse{} }
func (m *QueryIsDepositorResponse) String() string       { return jsonString(m) }
func (QueryIsDepositorResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryIsDepositorResponse" }

func (QueryWinnerRequest) ProtoMessage()           {}
func (m *QueryWinnerRequest) Reset()               { *m = QueryWinnerRequest{} }
func (m *QueryWinnerRequest) String() string       { return jsonString(m) }
func (QueryWinnerRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryWinnerRequest" }

func (QueryWinnerResponse) ProtoMessage()           {}
func (m *QueryWinnerResponse) Reset()               { *m = QueryWinnerResponse{} }
func (m *QueryWinnerResponse) String() string       { return jsonString(m) }
func (QueryWinnerResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryWinnerResponse" }

func (QueryHasWinnerRequest) ProtoMessage()           {}
func (m *QueryHasWinnerRequest) Reset()               { *m = QueryHasWinnerRequest{} }
func (m *QueryHasWinnerRequest) String() string       { return jsonString(m) }
func (QueryHasWinnerRequest) XXX_MessageName() string { return "vaultquest.vault.v1.QueryHasWinnerRequest" }

func (QueryHasWinnerResponse) ProtoMessage()           {}
func (m *QueryHasWinnerResponse) Reset()               { *m = QueryHasWinnerResponse{} }
func (m *QueryHasWinnerResponse) String() string       { return jsonString(m) }
func (QueryHasWinnerResponse) XXX_MessageName() string { return "vaultquest.vault.v1.QueryHasWinnerResponse" }
