package payment

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// FakeCollaborator approves every charge. It backs local development and
// environments with no gateway configured.
type FakeCollaborator struct {
	seq atomic.Int64
}

func NewFakeCollaborator() *FakeCollaborator {
	return &FakeCollaborator{}
}

func (f *FakeCollaborator) Charge(_ context.Context, req ChargeRequest) (*Receipt, error) {
	return &Receipt{
		Reference:   fmt.Sprintf("fake-%d", f.seq.Add(1)),
		AmountCents: req.AmountCents,
		ChargedAt:   time.Now(),
	}, nil
}

func (f *FakeCollaborator) Refund(_ context.Context, _ string) error {
	return nil
}
