package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/Ramakant55/Trendora-Boutique/common"
)

func invoke(ctx context.Context, cc grpc.ClientConnInterface, service, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{common.JSONCallOption()}, opts...)
	return cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...)
}

// CatalogClient calls boutique.v1.Catalog.
type CatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

func (c *CatalogClient) ListProducts(ctx context.Context, opts ...grpc.CallOption) (*ProductList, error) {
	out := new(ProductList)
	if err := invoke(ctx, c.cc, CatalogServiceName, "ListProducts", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListCollections(ctx context.Context, opts ...grpc.CallOption) (*CollectionList, error) {
	out := new(CollectionList)
	if err := invoke(ctx, c.cc, CatalogServiceName, "ListCollections", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) FilterByCollection(ctx context.Context, collection string, opts ...grpc.CallOption) (*FilterResponse, error) {
	out := new(FilterResponse)
	if err := invoke(ctx, c.cc, CatalogServiceName, "FilterByCollection", &FilterRequest{Collection: collection}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListTestimonials(ctx context.Context, opts ...grpc.CallOption) (*TestimonialList, error) {
	out := new(TestimonialList)
	if err := invoke(ctx, c.cc, CatalogServiceName, "ListTestimonials", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// CartClient calls boutique.v1.Cart.
type CartClient struct {
	cc grpc.ClientConnInterface
}

func NewCartClient(cc grpc.ClientConnInterface) *CartClient {
	return &CartClient{cc: cc}
}

func (c *CartClient) AddToCart(ctx context.Context, req *AddToCartRequest, opts ...grpc.CallOption) (*CartReply, error) {
	out := new(CartReply)
	if err := invoke(ctx, c.cc, CartServiceName, "AddToCart", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CartClient) RemoveFromCart(ctx context.Context, req *RemoveFromCartRequest, opts ...grpc.CallOption) (*CartReply, error) {
	out := new(CartReply)
	if err := invoke(ctx, c.cc, CartServiceName, "RemoveFromCart", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CartClient) UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest, opts ...grpc.CallOption) (*CartReply, error) {
	out := new(CartReply)
	if err := invoke(ctx, c.cc, CartServiceName, "UpdateQuantity", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CartClient) GetCart(ctx context.Context, sessionID string, opts ...grpc.CallOption) (*CartReply, error) {
	out := new(CartReply)
	if err := invoke(ctx, c.cc, CartServiceName, "GetCart", &SessionRequest{SessionID: sessionID}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CartClient) EndSession(ctx context.Context, sessionID string, opts ...grpc.CallOption) (*EndSessionReply, error) {
	out := new(EndSessionReply)
	if err := invoke(ctx, c.cc, CartServiceName, "EndSession", &SessionRequest{SessionID: sessionID}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
