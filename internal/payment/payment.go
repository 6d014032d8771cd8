package payment

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDeclined means the processor refused the charge.
	ErrDeclined = errors.New("payment declined")
	// ErrUnavailable means the processor could not be reached.
	ErrUnavailable = errors.New("payment service unavailable")
)

// ChargeRequest describes a single booking charge.
type ChargeRequest struct {
	UserID      string
	RoomID      string
	AmountCents int64
	Currency    string
	Description string
	// MethodToken identifies the payer's payment method at the processor.
	MethodToken string
}

// Receipt is the processor's confirmation of a successful charge.
type Receipt struct {
	Reference   string
	AmountCents int64
	ChargedAt   time.Time
}

// Collaborator is the boundary to the external payment processor.
// It is invoked only after a booking request has passed schedule and
// conflict validation; a failed charge aborts the booking with no
// record written. Refund is the compensating action for the rare case
// where the charge succeeds but the booking insert loses a race.
type Collaborator interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
	Refund(ctx context.Context, reference string) error
}
