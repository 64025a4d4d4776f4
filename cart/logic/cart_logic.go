package logic

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// Domain names the cart aggregate in event covers.
const Domain = "cart"

// Snapshot is a consistent read of the cart.
type Snapshot struct {
	Lines []CartLine   `json:"lines"`
	Count int          `json:"count"`
	Total common.Money `json:"total"`
	Mode  Mode         `json:"mode"`
}

// Change is delivered to subscribers after every state change.
type Change struct {
	Session  uuid.UUID
	Root     uuid.UUID
	Page     common.EventPage
	Snapshot Snapshot
}

type subscriber struct {
	id int
	fn func(Change)
}

// Cart is the cart owned by one session. All methods are safe for
// concurrent use; operations on one cart are serialized.
//
// Subscribers run synchronously while the cart is locked and must not call
// back into the same cart.
type Cart struct {
	mu          sync.Mutex
	session     uuid.UUID
	book        *common.EventBook
	state       CartState
	subscribers []subscriber
	nextSubID   int
	now         func() time.Time
	lastSeen    time.Time
}

// NewCart creates an empty cart for a session.
func NewCart(session uuid.UUID) *Cart {
	return newCart(session, time.Now)
}

func newCart(session uuid.UUID, now func() time.Time) *Cart {
	return &Cart{
		session: session,
		book: &common.EventBook{
			Cover: common.Cover{Domain: Domain, Root: common.CartRoot(session)},
		},
		state:    NewCartState(),
		now:      now,
		lastSeen: now(),
	}
}

// Session returns the owning session id.
func (c *Cart) Session() uuid.UUID {
	return c.session
}

// AddToCart adds one unit of product.
func (c *Cart) AddToCart(product catalog.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, err := HandleAddToCart(&c.state, product)
	if err != nil {
		return err
	}
	c.record(event)
	return nil
}

// RemoveFromCart deletes the line for productID and reports whether one existed.
func (c *Cart) RemoveFromCart(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	event := HandleRemoveFromCart(&c.state, productID)
	if event == nil {
		return false
	}
	c.record(event)
	return true
}

// UpdateQuantity sets the quantity of an existing line; zero removes it.
func (c *Cart) UpdateQuantity(productID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, err := HandleUpdateQuantity(&c.state, productID, quantity)
	if err != nil {
		return err
	}
	if event != nil {
		c.record(event)
	}
	return nil
}

// UpdateQuantityInput applies a quantity typed by the shopper. Input that
// does not parse as an integer is discarded without error.
func (c *Cart) UpdateQuantityInput(productID int, raw string) error {
	quantity, ok := ParseQuantity(raw)
	if !ok {
		return nil
	}
	return c.UpdateQuantity(productID, quantity)
}

// Clear drops every line and reports whether the cart had any.
func (c *Cart) Clear() bool {
	return c.clear(ReasonCleared)
}

func (c *Cart) clear(reason string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	event := HandleClearCart(&c.state, reason)
	if event == nil {
		return false
	}
	c.record(event)
	return true
}

// Count is the number of units in the cart.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Count()
}

// Total is the sum of quantity times unit price over all lines.
func (c *Cart) Total() common.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Total()
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.state.Lines)
}

func (c *Cart) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Mode()
}

// Snapshot reads lines, count, total and mode under one lock.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Cart) snapshot() Snapshot {
	return Snapshot{
		Lines: slices.Clone(c.state.Lines),
		Count: c.state.Count(),
		Total: c.state.Total(),
		Mode:  c.state.Mode(),
	}
}

// Events returns a copy of the cart's journal.
func (c *Cart) Events() *common.EventBook {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.book.Clone()
}

// Subscribe registers fn for every subsequent change. The returned
// function removes the subscription.
func (c *Cart) Subscribe(fn func(Change)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subscribers = slices.DeleteFunc(c.subscribers, func(s subscriber) bool {
			return s.id == id
		})
	}
}

// Touch marks the cart as used at the current time.
func (c *Cart) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = c.now()
}

// LastSeen is the time of the last mutation or Touch.
func (c *Cart) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// record appends event to the journal, applies it and notifies subscribers.
// Callers hold c.mu.
func (c *Cart) record(event common.Event) {
	page := c.book.Append(event)
	applyEvent(&c.state, event)
	c.lastSeen = c.now()

	if len(c.subscribers) == 0 {
		return
	}
	change := Change{
		Session:  c.session,
		Root:     c.book.Cover.Root,
		Page:     page,
		Snapshot: c.snapshot(),
	}
	for _, s := range c.subscribers {
		s.fn(change)
	}
}
