package queries

import (
	"context"

	"range-booking/internal/domain/audit"
	"range-booking/internal/pkg/config"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditQueries interface {
	// Trail returns a booking's entries newest first.
	Trail(ctx context.Context, bookingID uuid.UUID) ([]*AuditEntryView, error)
	Search(ctx context.Context, filter audit.Filter) ([]*AuditEntryView, error)
}

type auditQueriesImpl struct {
	uow shared.UnitOfWork
	cfg config.BookingConfig
}

func NewAuditQueries(uow shared.UnitOfWork, cfg config.BookingConfig) AuditQueries {
	return &auditQueriesImpl{uow: uow, cfg: cfg}
}

func (q *auditQueriesImpl) Trail(ctx context.Context, bookingID uuid.UUID) ([]*AuditEntryView, error) {
	reads := q.uow.Reads()
	if _, err := reads.BookingByID(ctx, bookingID); err != nil {
		return nil, shared.Classify(err)
	}
	entries, err := reads.AuditTrail(ctx, bookingID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return toAuditViews(entries), nil
}

func (q *auditQueriesImpl) Search(ctx context.Context, filter audit.Filter) ([]*AuditEntryView, error) {
	if err := filter.Validate(); err != nil {
		return nil, errs.Validation(err)
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = q.cfg.AuditQueryLimit
	case filter.Limit > q.cfg.AuditQueryMax:
		filter.Limit = q.cfg.AuditQueryMax
	}
	entries, err := q.uow.Reads().AuditSearch(ctx, filter)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return toAuditViews(entries), nil
}

func toAuditViews(entries []*audit.Entry) []*AuditEntryView {
	views := make([]*AuditEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, NewAuditEntryView(e))
	}
	return views
}
