package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

type cartTestContext struct {
	catalog  *catalog.Store
	sessions *logic.Sessions
	session  uuid.UUID
	cart     *logic.Cart
	rebuilt  *logic.CartState
	err      error
}

func (c *cartTestContext) reset() error {
	store, err := catalog.LoadDefault()
	if err != nil {
		return err
	}
	c.catalog = store
	c.sessions = logic.NewSessions()
	c.session = common.NewSessionID()
	c.cart = nil
	c.rebuilt = nil
	c.err = nil
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = c.sessions.Open(c.session)
	return nil
}

func (c *cartTestContext) iAddProductToTheCart(id int) error {
	product, err := c.catalog.ProductByID(id)
	if err != nil {
		return err
	}
	c.err = c.cart.AddToCart(product)
	return nil
}

func (c *cartTestContext) productIsInTheCart(id int) error {
	if err := c.iAddProductToTheCart(id); err != nil {
		return err
	}
	return c.err
}

func (c *cartTestContext) iSetTheQuantityOfProductTo(id, quantity int) error {
	c.err = c.cart.UpdateQuantity(id, quantity)
	return nil
}

func (c *cartTestContext) iTypeAsTheQuantityOfProduct(raw string, id int) error {
	c.err = c.cart.UpdateQuantityInput(id, raw)
	return nil
}

func (c *cartTestContext) iRemoveProductFromTheCart(id int) error {
	c.cart.RemoveFromCart(id)
	return nil
}

func (c *cartTestContext) iRebuildTheCartFromItsJournal() error {
	state := logic.RebuildState(c.cart.Events())
	c.rebuilt = &state
	return nil
}

func (c *cartTestContext) theSessionEnds() error {
	if !c.sessions.End(c.session) {
		return errors.New("session was not open")
	}
	return nil
}

func (c *cartTestContext) theCartCountIs(n int) error {
	if got := c.cart.Count(); got != n {
		return fmt.Errorf("expected count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total string) error {
	if got := c.cart.Total().Decimal(); got != total {
		return fmt.Errorf("expected total %s, got %s", total, got)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if mode := c.cart.Mode(); mode != logic.ModeEmpty {
		return fmt.Errorf("expected empty cart, got mode %s with %d lines", mode, len(c.cart.Lines()))
	}
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if got := len(c.cart.Lines()); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theLastEventIs(eventType string) error {
	pages := c.cart.Events().Pages
	if len(pages) == 0 {
		return errors.New("journal is empty")
	}
	if got := pages[len(pages)-1].Event.EventType(); got != eventType {
		return fmt.Errorf("expected last event %s, got %s", eventType, got)
	}
	return nil
}

func (c *cartTestContext) theJournalHasEvents(n int) error {
	if got := len(c.cart.Events().Pages); got != n {
		return fmt.Errorf("expected %d events, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCommandSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *cartTestContext) theCommandFailsWithStatus(statusName string) error {
	if c.err == nil {
		return errors.New("expected command to fail but it succeeded")
	}
	var cmdErr *common.CommandError
	if !errors.As(c.err, &cmdErr) {
		return fmt.Errorf("expected CommandError, got %T", c.err)
	}
	if !strings.EqualFold(cmdErr.Code.String(), statusName) {
		return fmt.Errorf("expected status %s, got %s", statusName, cmdErr.Code)
	}
	return nil
}

func (c *cartTestContext) theRebuiltCartMatchesTheLiveCart() error {
	if c.rebuilt == nil {
		return errors.New("cart was not rebuilt")
	}
	if diff := cmp.Diff(c.cart.Lines(), c.rebuilt.Lines); diff != "" {
		return fmt.Errorf("rebuilt cart differs (-live +rebuilt):\n%s", diff)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^product (\d+) is in the cart$`, tc.productIsInTheCart)

	// When steps
	ctx.Step(`^I add product (\d+) to the cart$`, tc.iAddProductToTheCart)
	ctx.Step(`^I set the quantity of product (\d+) to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^I type "([^"]*)" as the quantity of product (\d+)$`, tc.iTypeAsTheQuantityOfProduct)
	ctx.Step(`^I remove product (\d+) from the cart$`, tc.iRemoveProductFromTheCart)
	ctx.Step(`^I rebuild the cart from its journal$`, tc.iRebuildTheCartFromItsJournal)
	ctx.Step(`^the session ends$`, tc.theSessionEnds)

	// Then steps
	ctx.Step(`^the cart count is (\d+)$`, tc.theCartCountIs)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the last event is "([^"]*)"$`, tc.theLastEventIs)
	ctx.Step(`^the journal has (\d+) events?$`, tc.theJournalHasEvents)
	ctx.Step(`^the command succeeds$`, tc.theCommandSucceeds)
	ctx.Step(`^the command fails with status "([^"]*)"$`, tc.theCommandFailsWithStatus)
	ctx.Step(`^the rebuilt cart matches the live cart$`, tc.theRebuiltCartMatchesTheLiveCart)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
