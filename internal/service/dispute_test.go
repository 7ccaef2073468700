package service

import (
	"context"
	"testing"

	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
)

func TestRaiseDispute(t *testing.T) {
	ctx := context.Background()
	m := newTestMarketplace(t)
	verifiedGuide(t, m)
	expID := cityTour(t, m)

	bookingID, err := m.CreateBooking(ctx, as(travelerB, 4), expID, 20, 2)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	_, err = m.RaiseDispute(ctx, as(travelerB, 5), 99, "no show")
	wantCode(t, err, apperr.CodeNotFound)
	_, err = m.RaiseDispute(ctx, as(guideA, 5), bookingID, "no show")
	wantCode(t, err, apperr.CodeUnauthorized)

	// disputes do not depend on booking status
	id, err := m.RaiseDispute(ctx, as(travelerB, 6), bookingID, "guide was late")
	if err != nil {
		t.Fatalf("raise dispute: %v", err)
	}
	if id != 1 {
		t.Fatalf("dispute id = %d, want 1", id)
	}

	d, err := m.GetDispute(ctx, id)
	if err != nil || d == nil {
		t.Fatalf("get dispute: %v", err)
	}
	if d.Status != model.DisputeStatusOpen || d.Resolution != nil || d.RaisedBy != travelerB || d.CreatedAt != 6 {
		t.Fatalf("unexpected dispute: %+v", d)
	}

	if err := m.CompleteBooking(ctx, as(travelerB, 7), bookingID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	id, err = m.RaiseDispute(ctx, as(travelerB, 8), bookingID, "refund")
	if err != nil {
		t.Fatalf("raise dispute on completed booking: %v", err)
	}
	if id != 2 {
		t.Fatalf("dispute id = %d, want 2", id)
	}
}

func TestResolveDispute(t *testing.T) {
	ctx := context.Background()
	m := newTestMarketplace(t)
	verifiedGuide(t, m)
	expID := cityTour(t, m)

	bookingID, _ := m.CreateBooking(ctx, as(travelerB, 4), expID, 20, 1)
	disputeID, err := m.RaiseDispute(ctx, as(travelerB, 5), bookingID, "late")
	if err != nil {
		t.Fatalf("raise: %v", err)
	}

	wantCode(t, m.ResolveDispute(ctx, as(travelerB, 6), disputeID, "self-served"), apperr.CodeUnauthorized)
	wantCode(t, m.ResolveDispute(ctx, as(guideA, 6), 99, "x"), apperr.CodeUnauthorized)
	wantCode(t, m.ResolveDispute(ctx, as(rootAccount, 6), 99, "x"), apperr.CodeNotFound)

	if err := m.ResolveDispute(ctx, as(rootAccount, 7), disputeID, "partial refund"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	d, _ := m.GetDispute(ctx, disputeID)
	if d.Status != model.DisputeStatusResolved || d.Resolution == nil || *d.Resolution != "partial refund" {
		t.Fatalf("unexpected dispute: %+v", d)
	}
}

// Re-resolving a resolved dispute is allowed and overwrites the resolution text;
// the status never leaves resolved.
func TestResolveDispute_ReResolutionOverwrites(t *testing.T) {
	ctx := context.Background()
	m := newTestMarketplace(t)
	verifiedGuide(t, m)
	expID := cityTour(t, m)

	bookingID, _ := m.CreateBooking(ctx, as(travelerB, 4), expID, 20, 1)
	disputeID, _ := m.RaiseDispute(ctx, as(travelerB, 5), bookingID, "late")

	if err := m.ResolveDispute(ctx, as(rootAccount, 6), disputeID, "first"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := m.ResolveDispute(ctx, as(rootAccount, 7), disputeID, "second"); err != nil {
		t.Fatalf("re-resolve: %v", err)
	}

	d, _ := m.GetDispute(ctx, disputeID)
	if d.Status != model.DisputeStatusResolved || *d.Resolution != "second" {
		t.Fatalf("unexpected dispute: %+v", d)
	}
}

func TestListOpenDisputes(t *testing.T) {
	ctx := context.Background()
	m := newTestMarketplace(t)
	verifiedGuide(t, m)
	expID := cityTour(t, m)

	bookingID, _ := m.CreateBooking(ctx, as(travelerB, 4), expID, 20, 1)
	for i := 0; i < 3; i++ {
		if _, err := m.RaiseDispute(ctx, as(travelerB, int64(5+i)), bookingID, "issue"); err != nil {
			t.Fatalf("raise: %v", err)
		}
	}
	if err := m.ResolveDispute(ctx, as(rootAccount, 9), 2, "done"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	page, err := m.ListOpenDisputes(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 || page.Items[0].ID != 1 || page.Items[1].ID != 3 {
		t.Fatalf("unexpected open disputes: %+v", page)
	}
}
