package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// Service names.
const (
	CatalogServiceName = "boutique.v1.Catalog"
	CartServiceName    = "boutique.v1.Cart"
)

// unary builds a MethodDesc from a method expression such as
// CatalogServer.ListProducts.
func unary[S any, Req any, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CatalogServer is the server API of boutique.v1.Catalog.
type CatalogServer interface {
	ListProducts(context.Context, *Empty) (*ProductList, error)
	ListCollections(context.Context, *Empty) (*CollectionList, error)
	FilterByCollection(context.Context, *FilterRequest) (*FilterResponse, error)
	ListTestimonials(context.Context, *Empty) (*TestimonialList, error)
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CatalogServiceName, "ListProducts", CatalogServer.ListProducts),
		unary(CatalogServiceName, "ListCollections", CatalogServer.ListCollections),
		unary(CatalogServiceName, "FilterByCollection", CatalogServer.FilterByCollection),
		unary(CatalogServiceName, "ListTestimonials", CatalogServer.ListTestimonials),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "boutique/v1/catalog",
}

func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// CartServer is the server API of boutique.v1.Cart.
type CartServer interface {
	AddToCart(context.Context, *AddToCartRequest) (*CartReply, error)
	RemoveFromCart(context.Context, *RemoveFromCartRequest) (*CartReply, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*CartReply, error)
	GetCart(context.Context, *SessionRequest) (*CartReply, error)
	EndSession(context.Context, *SessionRequest) (*EndSessionReply, error)
}

var CartServiceDesc = grpc.ServiceDesc{
	ServiceName: CartServiceName,
	HandlerType: (*CartServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CartServiceName, "AddToCart", CartServer.AddToCart),
		unary(CartServiceName, "RemoveFromCart", CartServer.RemoveFromCart),
		unary(CartServiceName, "UpdateQuantity", CartServer.UpdateQuantity),
		unary(CartServiceName, "GetCart", CartServer.GetCart),
		unary(CartServiceName, "EndSession", CartServer.EndSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "boutique/v1/cart",
}

func RegisterCartServer(s grpc.ServiceRegistrar, srv CartServer) {
	s.RegisterService(&CartServiceDesc, srv)
}
