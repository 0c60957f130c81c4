package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

type Booking struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	EventID         int64     `json:"event_id"`
	ReferenceNumber string    `json:"reference_number"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateBookingInput struct {
	UserID  int64
	EventID int64
	// ReferenceNumber is generated by the booking store when empty.
	ReferenceNumber string
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReferenceNumber builds a human-readable booking reference: the
// first two characters of the event name upper-cased (or "EV" when the
// event could not be resolved), the calendar year, a hyphen, and an
// eight-character random token. It is a convenience identifier, not a
// unique key: collisions are possible and unguarded.
func NewReferenceNumber(eventName string) string {
	prefix := "EV"
	if runes := []rune(strings.ToUpper(eventName)); len(runes) >= 2 {
		prefix = string(runes[:2])
	}

	token := make([]byte, 8)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; fall back to a fixed character rather than panic.
			token[i] = '0'
			continue
		}
		token[i] = referenceAlphabet[n.Int64()]
	}

	return fmt.Sprintf("%s%d-%s", prefix, time.Now().Year(), token)
}
