package rpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

type cartServer struct {
	store    *catalog.Store
	sessions *cart.Sessions
	logger   *zap.Logger
}

// NewCartServer serves session carts over gRPC.
func NewCartServer(store *catalog.Store, sessions *cart.Sessions, logger *zap.Logger) CartServer {
	return &cartServer{store: store, sessions: sessions, logger: logger}
}

func parseSession(raw string) (uuid.UUID, error) {
	id, err := common.ParseSessionID(raw)
	if err != nil {
		return uuid.Nil, common.NewInvalidArgumentf("invalid session id %q", raw)
	}
	return id, nil
}

// existing returns the session's cart, or a detached empty cart when the
// session has none, so read and no-op calls never open a session.
func (s *cartServer) existing(id uuid.UUID) *cart.Cart {
	if c, ok := s.sessions.Get(id); ok {
		return c
	}
	return cart.NewCart(id)
}

func (s *cartServer) AddToCart(ctx context.Context, req *AddToCartRequest) (*CartReply, error) {
	id, err := parseSession(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	product, err := s.store.ProductByID(req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return nil, common.MapCommandError(common.NewNotFoundf("product %d not found", req.ProductID))
	}
	if err != nil {
		return nil, common.MapCommandError(err)
	}

	c := s.sessions.Open(id)
	if err := c.AddToCart(product); err != nil {
		return nil, common.MapCommandError(err)
	}
	s.logger.Info("added to cart",
		zap.String("session", req.SessionID),
		zap.Int("product_id", req.ProductID))
	return newCartReply(req.SessionID, c.Snapshot()), nil
}

func (s *cartServer) RemoveFromCart(ctx context.Context, req *RemoveFromCartRequest) (*CartReply, error) {
	id, err := parseSession(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	c := s.existing(id)
	c.RemoveFromCart(req.ProductID)
	return newCartReply(req.SessionID, c.Snapshot()), nil
}

func (s *cartServer) UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*CartReply, error) {
	id, err := parseSession(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	c := s.existing(id)
	if err := c.UpdateQuantityInput(req.ProductID, req.Quantity); err != nil {
		return nil, common.MapCommandError(err)
	}
	return newCartReply(req.SessionID, c.Snapshot()), nil
}

func (s *cartServer) GetCart(ctx context.Context, req *SessionRequest) (*CartReply, error) {
	id, err := parseSession(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	return newCartReply(req.SessionID, s.existing(id).Snapshot()), nil
}

func (s *cartServer) EndSession(ctx context.Context, req *SessionRequest) (*EndSessionReply, error) {
	id, err := parseSession(req.SessionID)
	if err != nil {
		return nil, common.MapCommandError(err)
	}
	ended := s.sessions.End(id)
	if ended {
		s.logger.Info("session ended", zap.String("session", req.SessionID))
	}
	return &EndSessionReply{Ended: ended}, nil
}

// Register returns a RegisterFunc that installs both services.
func Register(store *catalog.Store, sessions *cart.Sessions, logger *zap.Logger) common.RegisterFunc {
	return func(s *grpc.Server) {
		RegisterCatalogServer(s, NewCatalogServer(store, logger))
		RegisterCartServer(s, NewCartServer(store, sessions, logger))
	}
}
