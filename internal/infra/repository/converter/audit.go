package converter

import (
	"encoding/json"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	sqlc "range-booking/internal/infra/sqlc/generated"
	"range-booking/internal/pkg/errs"
	"range-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func AuditEntryToParams(e *audit.Entry) (sqlc.InsertAuditEntryParams, error) {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return sqlc.InsertAuditEntryParams{}, errs.Wrap(err, "encode audit metadata")
	}
	oldStatus := pgtype.Text{}
	if e.OldStatus != nil {
		oldStatus = pgtype.Text{String: e.OldStatus.String(), Valid: true}
	}
	return sqlc.InsertAuditEntryParams{
		ID:        e.ID,
		BookingID: e.BookingID,
		Action:    string(e.Action),
		Actor:     e.Actor,
		OldStatus: oldStatus,
		NewStatus: e.NewStatus.String(),
		Reason:    e.Reason,
		Metadata:  raw,
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt),
	}, nil
}

func AuditEntryFromRow(row sqlc.AuditLog) (*audit.Entry, error) {
	meta := map[string]any{}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &meta); err != nil {
			return nil, errs.Wrapf(err, "decode metadata of audit entry %s", row.ID)
		}
	}
	var oldStatus *booking.Status
	if row.OldStatus.Valid {
		s := booking.Status(row.OldStatus.String)
		oldStatus = &s
	}
	return &audit.Entry{
		ID:        row.ID,
		BookingID: row.BookingID,
		Action:    audit.Action(row.Action),
		Actor:     row.Actor,
		OldStatus: oldStatus,
		NewStatus: booking.Status(row.NewStatus),
		Reason:    row.Reason,
		Metadata:  meta,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func AuditEntriesFromRows(rows []sqlc.AuditLog) ([]*audit.Entry, error) {
	out := make([]*audit.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := AuditEntryFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
