package rpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	catalog  *CatalogClient
	cart     *CartClient
	health   grpc_health_v1.HealthClient
	sessions *cart.Sessions
}

func startServer(t *testing.T) *harness {
	t.Helper()

	store, err := catalog.LoadDefault()
	require.NoError(t, err)
	sessions := cart.NewSessions()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- common.Serve(ctx, lis, zap.NewNop(), "boutique", Register(store, sessions, zap.NewNop()))
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	return &harness{
		catalog:  NewCatalogClient(conn),
		cart:     NewCartClient(conn),
		health:   grpc_health_v1.NewHealthClient(conn),
		sessions: sessions,
	}
}

func callCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestCatalog_RoundTrip(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)

	products, err := h.catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products.Products)
	assert.Equal(t, "Silk Scarf", products.Products[0].Name)
	assert.Equal(t, common.Cents(4900), products.Products[0].Price)

	collections, err := h.catalog.ListCollections(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, collections.Collections)

	testimonials, err := h.catalog.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, testimonials.Testimonials)
}

func TestCatalog_FilterByCollection(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)

	resp, err := h.catalog.FilterByCollection(ctx, "summer dresses")
	require.NoError(t, err)
	assert.False(t, resp.Empty)
	require.NotNil(t, resp.Collection)
	assert.Equal(t, "Dresses", resp.Collection.Category)
	for _, p := range resp.Products {
		assert.Equal(t, "Dresses", p.Category)
	}

	none, err := h.catalog.FilterByCollection(ctx, "Nonexistent")
	require.NoError(t, err)
	assert.True(t, none.Empty)
	assert.NotNil(t, none.Products)
	assert.Empty(t, none.Products)
}

func TestCart_ScarfScenarioOverRPC(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)
	session := common.NewSessionID().String()

	reply, err := h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, reply.Count)
	assert.Equal(t, "49.00", reply.Total.Decimal())

	reply, err = h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, "98.00", reply.Total.Decimal())

	reply, err = h.cart.UpdateQuantity(ctx, &UpdateQuantityRequest{SessionID: session, ProductID: 1, Quantity: "5"})
	require.NoError(t, err)
	assert.Equal(t, 5, reply.Count)
	assert.Equal(t, "245.00", reply.Total.Decimal())

	reply, err = h.cart.UpdateQuantity(ctx, &UpdateQuantityRequest{SessionID: session, ProductID: 1, Quantity: "lots"})
	require.NoError(t, err)
	assert.Equal(t, 5, reply.Count)

	reply, err = h.cart.RemoveFromCart(ctx, &RemoveFromCartRequest{SessionID: session, ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, reply.Count)
	assert.Equal(t, "empty", reply.Mode)
	assert.Equal(t, common.Money(0), reply.Total)
}

func TestCart_ErrorsMapToStatusCodes(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)
	session := common.NewSessionID().String()

	_, err := h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: "nope", ProductID: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 1})
	require.NoError(t, err)
	_, err = h.cart.UpdateQuantity(ctx, &UpdateQuantityRequest{SessionID: session, ProductID: 1, Quantity: "-2"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCart_QuantityLimitOverRPC(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)
	session := common.NewSessionID().String()

	_, err := h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 1})
	require.NoError(t, err)

	_, err = h.cart.UpdateQuantity(ctx, &UpdateQuantityRequest{SessionID: session, ProductID: 1, Quantity: "9223372036854775807"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	reply, err := h.cart.UpdateQuantity(ctx, &UpdateQuantityRequest{SessionID: session, ProductID: 1, Quantity: "99"})
	require.NoError(t, err)
	assert.Equal(t, 99, reply.Count)

	_, err = h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 1})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestCart_NoOpCallsDoNotOpenSessions(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)
	session := common.NewSessionID().String()

	reply, err := h.cart.RemoveFromCart(ctx, &RemoveFromCartRequest{SessionID: session, ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, "empty", reply.Mode)

	reply, err = h.cart.UpdateQuantity(ctx, &UpdateQuantityRequest{SessionID: session, ProductID: 1, Quantity: "2"})
	require.NoError(t, err)
	assert.Equal(t, "empty", reply.Mode)

	assert.Equal(t, 0, h.sessions.Len())
}

func TestCart_GetCartAndEndSession(t *testing.T) {
	h := startServer(t)
	ctx := callCtx(t)
	session := common.NewSessionID().String()

	reply, err := h.cart.GetCart(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "empty", reply.Mode)
	assert.Equal(t, 0, h.sessions.Len())

	_, err = h.cart.AddToCart(ctx, &AddToCartRequest{SessionID: session, ProductID: 2})
	require.NoError(t, err)

	reply, err = h.cart.GetCart(ctx, session)
	require.NoError(t, err)
	require.Len(t, reply.Lines, 1)
	assert.Equal(t, "Floral Maxi Dress", reply.Lines[0].Name)

	ended, err := h.cart.EndSession(ctx, session)
	require.NoError(t, err)
	assert.True(t, ended.Ended)

	ended, err = h.cart.EndSession(ctx, session)
	require.NoError(t, err)
	assert.False(t, ended.Ended)
}

func TestHealth_Serving(t *testing.T) {
	h := startServer(t)
	resp, err := h.health.Check(callCtx(t), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}
