// Package logic turns cart journal entries into structured log lines.
package logic

import (
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// LogResult contains the result of processing an event for logging.
type LogResult struct {
	Domain    string                 `json:"domain"`
	RootID    string                 `json:"root_id"`
	Session   string                 `json:"session,omitempty"`
	Sequence  uint32                 `json:"sequence"`
	EventType string                 `json:"event_type"`
	Fields    map[string]interface{} `json:"fields"`
	Unknown   bool                   `json:"unknown,omitempty"`
}

// ProcessEventBook processes all events in a cart journal.
func ProcessEventBook(book *common.EventBook) []LogResult {
	if book == nil || len(book.Pages) == 0 {
		return nil
	}

	domain := cart.Domain
	if book.Cover.Domain != "" {
		domain = book.Cover.Domain
	}
	rootID := shortID(book.Cover.Root.String())

	results := make([]LogResult, 0, len(book.Pages))
	for _, page := range book.Pages {
		results = append(results, ProcessEventPage(domain, rootID, page))
	}
	return results
}

// ProcessChange builds the log result for one live cart change, including
// the cart totals after the change.
func ProcessChange(change cart.Change) LogResult {
	result := ProcessEventPage(cart.Domain, shortID(change.Root.String()), change.Page)
	result.Session = change.Session.String()
	result.Fields["cart_count"] = change.Snapshot.Count
	result.Fields["cart_total"] = change.Snapshot.Total.String()
	return result
}

// ProcessEventPage processes a single event page.
func ProcessEventPage(domain, rootID string, page common.EventPage) LogResult {
	result := LogResult{
		Domain:   domain,
		RootID:   rootID,
		Sequence: page.Sequence,
		Fields:   make(map[string]interface{}),
	}
	if page.Event == nil {
		result.Unknown = true
		return result
	}
	result.EventType = page.Event.EventType()
	if page.CreatedAt != nil {
		result.Fields["created_at"] = formatTimestamp(page.CreatedAt)
	}

	switch event := page.Event.(type) {
	case cart.ItemAdded:
		result.Fields["product_id"] = event.ProductID
		result.Fields["name"] = event.Name
		result.Fields["unit_price"] = event.UnitPrice.String()
		result.Fields["quantity"] = event.Quantity
	case cart.QuantityIncremented:
		result.Fields["product_id"] = event.ProductID
		result.Fields["old_quantity"] = event.OldQuantity
		result.Fields["new_quantity"] = event.NewQuantity
	case cart.QuantityUpdated:
		result.Fields["product_id"] = event.ProductID
		result.Fields["old_quantity"] = event.OldQuantity
		result.Fields["new_quantity"] = event.NewQuantity
	case cart.ItemRemoved:
		result.Fields["product_id"] = event.ProductID
		result.Fields["quantity"] = event.Quantity
	case cart.CartCleared:
		result.Fields["lines"] = event.Lines
		result.Fields["reason"] = event.Reason
	default:
		result.Unknown = true
	}
	return result
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatTimestamp converts a protobuf Timestamp to RFC 3339 string.
func formatTimestamp(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().Format(time.RFC3339Nano)
}

// LogEvents logs all events from the log results using the provided logger.
func LogEvents(logger *zap.Logger, results []LogResult) {
	for _, r := range results {
		eventLogger := logger.With(
			zap.String("domain", r.Domain),
			zap.String("root_id", r.RootID),
			zap.Uint32("sequence", r.Sequence),
			zap.String("event_type", r.EventType),
		)
		if r.Session != "" {
			eventLogger = eventLogger.With(zap.String("session", r.Session))
		}

		fields := make([]zap.Field, 0, len(r.Fields))
		for k, v := range r.Fields {
			switch val := v.(type) {
			case string:
				fields = append(fields, zap.String(k, val))
			case int:
				fields = append(fields, zap.Int(k, val))
			default:
				fields = append(fields, zap.Any(k, val))
			}
		}

		if r.Unknown {
			eventLogger.Warn("unknown cart event", fields...)
			continue
		}
		eventLogger.Info("cart event", fields...)
	}
}

// Subscriber returns a cart observer that logs every change.
func Subscriber(logger *zap.Logger) func(cart.Change) {
	return func(change cart.Change) {
		LogEvents(logger, []LogResult{ProcessChange(change)})
	}
}
