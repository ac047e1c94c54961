package repository

import (
	"context"

	"hotel-back-office/internal/domain/booking"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/infra/repository/converter"
	"hotel-back-office/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	checkInRec, err := converter.CheckInRecordToJSON(b.CheckInRecord())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode check-in record", err)
	}
	checkOutRec, err := converter.CheckOutRecordToJSON(b.CheckOutRecord())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode check-out record", err)
	}

	const query = `
		INSERT INTO bookings (
			id, booking_number, customer_id, room_id,
			check_in, check_out, adults, children, status,
			payment_method, payment_status, payment_amount_cents, paid_at, transaction_id,
			room_price_cents, total_amount_cents, check_in_record, check_out_record
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		b.ID(),
		b.BookingNumber(),
		b.CustomerID(),
		b.RoomID(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Guests().Adults(),
		b.Guests().Children(),
		b.Status().String(),
		b.Payment().Method().String(),
		b.Payment().Status().String(),
		b.Payment().Amount().Cents(),
		pgconv.TimePtrToPgtype(b.Payment().PaidAt()),
		pgconv.StringPtrToPgtype(b.Payment().TransactionID()),
		b.RoomPrice().Cents(),
		b.TotalAmount().Cents(),
		checkInRec,
		checkOutRec,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapDBErr("failed to create booking", err)
	}

	if err := r.insertHistory(ctx, tx, b); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	checkInRec, err := converter.CheckInRecordToJSON(b.CheckInRecord())
	if err != nil {
		return infra.WrapRepoErr("failed to encode check-in record", err)
	}
	checkOutRec, err := converter.CheckOutRecordToJSON(b.CheckOutRecord())
	if err != nil {
		return infra.WrapRepoErr("failed to encode check-out record", err)
	}

	const query = `
		UPDATE bookings SET
			status = $2,
			payment_status = $3,
			payment_amount_cents = $4,
			paid_at = $5,
			transaction_id = $6,
			total_amount_cents = $7,
			check_in_record = $8,
			check_out_record = $9,
			updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		b.ID(),
		b.Status().String(),
		b.Payment().Status().String(),
		b.Payment().Amount().Cents(),
		pgconv.TimePtrToPgtype(b.Payment().PaidAt()),
		pgconv.StringPtrToPgtype(b.Payment().TransactionID()),
		b.TotalAmount().Cents(),
		checkInRec,
		checkOutRec,
	)
	if err != nil {
		return wrapDBErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return r.insertHistory(ctx, tx, b)
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, booking_number, customer_id, room_id,
		       check_in, check_out, adults, children, status,
		       payment_method, payment_status, payment_amount_cents, paid_at, transaction_id,
		       room_price_cents, total_amount_cents, check_in_record, check_out_record,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var row bookingRow
	err := tx.QueryRow(ctx, query, id).Scan(
		&row.id, &row.bookingNumber, &row.customerID, &row.roomID,
		&row.checkIn, &row.checkOut, &row.adults, &row.children, &row.status,
		&row.paymentMethod, &row.paymentStatus, &row.paymentAmountCents, &row.paidAt, &row.transactionID,
		&row.roomPriceCents, &row.totalAmountCents, &row.checkInRecord, &row.checkOutRecord,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		return nil, wrapDBErr("failed to find booking for update", err)
	}

	history, err := r.loadHistory(ctx, tx, row.id)
	if err != nil {
		return nil, err
	}

	return row.toDomain(history)
}

// HasActiveOverlap re-checks the half-open interval invariant under the room
// lock before a new booking row is inserted. The exclusion constraint on
// bookings backstops this check.
func (r *BookingRepository) HasActiveOverlap(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayWindow) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status IN ('pending', 'confirmed', 'checked_in')
			  AND check_in < $3
			  AND check_out > $2
		)`

	var exists bool
	err := tx.QueryRow(ctx, query, roomID, stay.CheckIn(), stay.CheckOut()).Scan(&exists)
	if err != nil {
		return false, wrapDBErr("failed to check booking overlap", err)
	}

	return exists, nil
}

// insertHistory appends status history rows keyed by their position in the
// aggregate's history slice. Existing rows are never rewritten.
func (r *BookingRepository) insertHistory(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO booking_status_history (booking_id, seq, status, changed_at, actor_id, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (booking_id, seq) DO NOTHING`

	for seq, entry := range b.History() {
		_, err := tx.Exec(ctx, query,
			b.ID(),
			seq,
			entry.Status.String(),
			entry.ChangedAt,
			entry.ActorID,
			pgconv.StringPtrToPgtype(entry.Reason),
		)
		if err != nil {
			return wrapDBErr("failed to insert booking status history", err)
		}
	}

	return nil
}

func (r *BookingRepository) loadHistory(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) ([]booking.HistoryEntry, error) {
	const query = `
		SELECT status, changed_at, actor_id, reason
		FROM booking_status_history
		WHERE booking_id = $1
		ORDER BY seq`

	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, wrapDBErr("failed to load booking status history", err)
	}
	defer rows.Close()

	var history []booking.HistoryEntry
	for rows.Next() {
		var (
			status    string
			changedAt pgtype.Timestamptz
			actorID   uuid.UUID
			reason    pgtype.Text
		)
		if err := rows.Scan(&status, &changedAt, &actorID, &reason); err != nil {
			return nil, wrapDBErr("failed to scan booking status history", err)
		}
		st, err := booking.NewStatus(status)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking status in history", err)
		}
		history = append(history, booking.HistoryEntry{
			Status:    st,
			ChangedAt: pgconv.TimeFromPgtype(changedAt),
			ActorID:   actorID,
			Reason:    pgconv.StringPtrFromPgtype(reason),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr("failed to iterate booking status history", err)
	}

	return history, nil
}

type bookingRow struct {
	id                 uuid.UUID
	bookingNumber      string
	customerID         uuid.UUID
	roomID             uuid.UUID
	checkIn            pgtype.Date
	checkOut           pgtype.Date
	adults             int
	children           int
	status             string
	paymentMethod      string
	paymentStatus      string
	paymentAmountCents int64
	paidAt             pgtype.Timestamptz
	transactionID      pgtype.Text
	roomPriceCents     int64
	totalAmountCents   int64
	checkInRecord      []byte
	checkOutRecord     []byte
	createdAt          pgtype.Timestamptz
	updatedAt          pgtype.Timestamptz
}

func (row bookingRow) toDomain(history []booking.HistoryEntry) (*booking.Booking, error) {
	stay, err := booking.NewStayWindow(row.checkIn.Time, row.checkOut.Time)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stay window in storage", err)
	}
	guests, err := booking.NewGuestCount(row.adults, row.children)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid guest count in storage", err)
	}
	status, err := booking.NewStatus(row.status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in storage", err)
	}
	method, err := booking.NewPaymentMethod(row.paymentMethod)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment method in storage", err)
	}
	paymentStatus, err := booking.NewPaymentStatus(row.paymentStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment status in storage", err)
	}
	paymentAmount, err := booking.NewMoney(row.paymentAmountCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment amount in storage", err)
	}
	roomPrice, err := booking.NewMoney(row.roomPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room price in storage", err)
	}
	totalAmount, err := booking.NewMoney(row.totalAmountCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total amount in storage", err)
	}
	checkInRec, err := converter.CheckInRecordFromJSON(row.checkInRecord)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode check-in record", err)
	}
	checkOutRec, err := converter.CheckOutRecordFromJSON(row.checkOutRecord)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode check-out record", err)
	}

	payment := booking.ReconstructPayment(
		method, paymentStatus, paymentAmount,
		pgconv.TimePtrFromPgtype(row.paidAt),
		pgconv.StringPtrFromPgtype(row.transactionID),
	)

	return booking.ReconstructBooking(
		row.id, row.bookingNumber, row.customerID, row.roomID,
		stay, guests, status, payment, roomPrice, totalAmount,
		checkInRec, checkOutRec, history,
		pgconv.TimeFromPgtype(row.createdAt),
		pgconv.TimeFromPgtype(row.updatedAt),
	), nil
}
