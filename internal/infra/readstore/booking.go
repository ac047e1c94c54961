package readstore

import (
	"context"
	"encoding/json"

	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/pkg/pgconv"
	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.booking_number, b.customer_id, b.room_id, r.room_number,
		       b.check_in, b.check_out, b.adults, b.children, b.status,
		       b.payment_method, b.payment_status, b.payment_amount_cents, b.paid_at, b.transaction_id,
		       b.room_price_cents, b.total_amount_cents, b.check_in_record, b.check_out_record,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`

	var (
		view        queries.BookingView
		checkIn     pgtype.Date
		checkOut    pgtype.Date
		paidAt      pgtype.Timestamptz
		txID        pgtype.Text
		checkInRec  []byte
		checkOutRec []byte
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.BookingNumber, &view.CustomerID, &view.RoomID, &view.RoomNumber,
		&checkIn, &checkOut, &view.Adults, &view.Children, &view.Status,
		&view.PaymentMethod, &view.PaymentStatus, &view.PaymentAmountCents, &paidAt, &txID,
		&view.RoomPriceCents, &view.TotalAmountCents, &checkInRec, &checkOutRec,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.CheckIn = checkIn.Time
	view.CheckOut = checkOut.Time
	view.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	view.TransactionID = pgconv.StringPtrFromPgtype(txID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if len(checkInRec) > 0 {
		view.CheckInRecord = &queries.CheckInRecordView{}
		if err := json.Unmarshal(checkInRec, view.CheckInRecord); err != nil {
			return nil, infra.WrapRepoErr("failed to decode check-in record", err)
		}
	}
	if len(checkOutRec) > 0 {
		view.CheckOutRecord = &queries.CheckOutRecordView{}
		if err := json.Unmarshal(checkOutRec, view.CheckOutRecord); err != nil {
			return nil, infra.WrapRepoErr("failed to decode check-out record", err)
		}
	}

	history, err := r.loadHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	view.History = history

	return &view, nil
}

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.booking_number, b.room_id, r.room_number,
		       b.check_in, b.check_out, b.status, b.total_amount_cents, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC`

	return r.list(ctx, query, customerID)
}

func (r *BookingReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.booking_number, b.room_id, r.room_number,
		       b.check_in, b.check_out, b.status, b.total_amount_cents, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.room_id = $1
		ORDER BY b.check_in DESC`

	return r.list(ctx, query, roomID)
}

func (r *BookingReadStore) list(ctx context.Context, query string, arg any) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			checkIn   pgtype.Date
			checkOut  pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.BookingNumber, &item.RoomID, &item.RoomNumber,
			&checkIn, &checkOut, &item.Status, &item.TotalAmountCents, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckIn = checkIn.Time
		item.CheckOut = checkOut.Time
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) loadHistory(ctx context.Context, bookingID uuid.UUID) ([]queries.HistoryEntryView, error) {
	const query = `
		SELECT status, changed_at, actor_id, reason
		FROM booking_status_history
		WHERE booking_id = $1
		ORDER BY seq`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking history", err)
	}
	defer rows.Close()

	var history []queries.HistoryEntryView
	for rows.Next() {
		var (
			entry     queries.HistoryEntryView
			changedAt pgtype.Timestamptz
			reason    pgtype.Text
		)
		if err := rows.Scan(&entry.Status, &changedAt, &entry.ActorID, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking history row", err)
		}
		entry.ChangedAt = pgconv.TimeFromPgtype(changedAt)
		entry.Reason = pgconv.StringPtrFromPgtype(reason)
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking history rows", err)
	}

	return history, nil
}
