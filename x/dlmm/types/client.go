package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	Bin(ctx context.Context, in *QueryBinRequest, opts ...grpc.CallOption) (*QueryBinResponse, error)
	Bins(ctx context.Context, in *QueryBinsRequest, opts ...grpc.CallOption) (*QueryBinsResponse, error)
	Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error)
	QuoteSwap(ctx context.Context, in *QueryQuoteSwapRequest, opts ...grpc.CallOption) (*QueryQuoteSwapResponse, error)
	ProtocolFees(ctx context.Context, in *QueryProtocolFeesRequest, opts ...grpc.CallOption) (*QueryProtocolFeesResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/Params", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/Pool", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/Pools", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Bin(ctx context.Context, in *QueryBinRequest, opts ...grpc.CallOption) (*QueryBinResponse, error) {
	out := new(QueryBinResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/Bin", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Bins(ctx context.Context, in *QueryBinsRequest, opts ...grpc.CallOption) (*QueryBinsResponse, error) {
	out := new(QueryBinsResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/Bins", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error) {
	out := new(QueryPositionResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/Position", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) QuoteSwap(ctx context.Context, in *QueryQuoteSwapRequest, opts ...grpc.CallOption) (*QueryQuoteSwapResponse, error) {
	out := new(QueryQuoteSwapResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/QuoteSwap", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ProtocolFees(ctx context.Context, in *QueryProtocolFeesRequest, opts ...grpc.CallOption) (*QueryProtocolFeesResponse, error) {
	out := new(QueryProtocolFeesResponse)
	if err := c.cc.Invoke(ctx, "/pearl.dlmm.v1.Query/ProtocolFees", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
