package common

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Event is a domain event recorded in an EventBook.
type Event interface {
	// EventType names the event, e.g. "ItemAdded".
	EventType() string
}

// Cover identifies the aggregate an EventBook belongs to.
type Cover struct {
	Domain string    `json:"domain"`
	Root   uuid.UUID `json:"root"`
}

// EventPage is one sequenced entry of an EventBook.
type EventPage struct {
	Sequence  uint32                 `json:"sequence"`
	Event     Event                  `json:"event"`
	CreatedAt *timestamppb.Timestamp `json:"created_at"`
}

// EventBook is the ordered journal of one aggregate.
type EventBook struct {
	Cover Cover       `json:"cover"`
	Pages []EventPage `json:"pages"`
}

// NextSequence returns the sequence number the next appended page will get.
func NextSequence(book *EventBook) uint32 {
	if book == nil || len(book.Pages) == 0 {
		return 0
	}
	return book.Pages[len(book.Pages)-1].Sequence + 1
}

// Append records event as the next page of the book and returns that page.
func (b *EventBook) Append(event Event) EventPage {
	page := EventPage{
		Sequence:  NextSequence(b),
		Event:     event,
		CreatedAt: timestamppb.Now(),
	}
	b.Pages = append(b.Pages, page)
	return page
}

// Clone returns a copy of the book whose page slice can be modified freely.
// Events themselves are shared; they are treated as immutable values.
func (b *EventBook) Clone() *EventBook {
	if b == nil {
		return nil
	}
	pages := make([]EventPage, len(b.Pages))
	copy(pages, b.Pages)
	return &EventBook{Cover: b.Cover, Pages: pages}
}
