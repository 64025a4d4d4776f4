package rpc

import (
	"context"

	"go.uber.org/zap"

	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
)

type catalogServer struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewCatalogServer serves the catalog over gRPC.
func NewCatalogServer(store *catalog.Store, logger *zap.Logger) CatalogServer {
	return &catalogServer{store: store, logger: logger}
}

func (s *catalogServer) ListProducts(ctx context.Context, _ *Empty) (*ProductList, error) {
	return &ProductList{Products: s.store.ListProducts()}, nil
}

func (s *catalogServer) ListCollections(ctx context.Context, _ *Empty) (*CollectionList, error) {
	return &CollectionList{Collections: s.store.ListCollections()}, nil
}

func (s *catalogServer) FilterByCollection(ctx context.Context, req *FilterRequest) (*FilterResponse, error) {
	products := s.store.FilterByCollection(req.Collection)
	resp := &FilterResponse{Products: products, Empty: len(products) == 0}
	if c, ok := s.store.CollectionByName(req.Collection); ok {
		resp.Collection = &c
	}
	s.logger.Debug("filtered by collection",
		zap.String("collection", req.Collection),
		zap.Int("matches", len(products)))
	return resp, nil
}

func (s *catalogServer) ListTestimonials(ctx context.Context, _ *Empty) (*TestimonialList, error) {
	return &TestimonialList{Testimonials: s.store.ListTestimonials()}, nil
}
