package common

import (
	"fmt"

	"github.com/google/uuid"
)

// ComputeRoot derives a deterministic UUID v5 from a domain and business key.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "boutique" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// CartRoot computes the root UUID of the cart owned by a session.
func CartRoot(sessionID uuid.UUID) uuid.UUID {
	return ComputeRoot("cart", sessionID.String())
}

// NewSessionID mints a random session identifier.
func NewSessionID() uuid.UUID {
	return uuid.New()
}

// ParseSessionID parses a session identifier, rejecting the nil UUID.
func ParseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse session id: %w", err)
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("parse session id: nil uuid")
	}
	return id, nil
}
