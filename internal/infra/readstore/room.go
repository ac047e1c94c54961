package readstore

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"hotel-back-office/internal/domain/room"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/pkg/pgconv"
	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `
		SELECT id, room_number, floor, room_type,
		       base_nightly_cents, first_hour_cents, additional_hour_cents, seasonal_rates,
		       status, cleaning_status, current_booking_id, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var (
		view             queries.RoomView
		seasonsJSON      []byte
		currentBookingID pgtype.UUID
		createdAt        pgtype.Timestamptz
		updatedAt        pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.RoomNumber, &view.Floor, &view.RoomType,
		&view.BaseNightlyCents, &view.FirstHourCents, &view.AdditionalHourCents, &seasonsJSON,
		&view.Status, &view.CleaningStatus, &currentBookingID, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	if len(seasonsJSON) > 0 {
		if err := json.Unmarshal(seasonsJSON, &view.SeasonalRates); err != nil {
			return nil, infra.WrapRepoErr("failed to decode seasonal rates", err)
		}
	}
	view.DisplayStatus = deriveDisplayStatus(view.Status, view.CleaningStatus)
	view.CurrentBookingID = pgconv.UUIDPtrFromPgtype(currentBookingID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomListItem, error) {
	const query = `
		SELECT id, room_number, floor, room_type, status, cleaning_status, base_nightly_cents
		FROM rooms
		ORDER BY room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomListItem
	for rows.Next() {
		var (
			item           queries.RoomListItem
			cleaningStatus string
		)
		if err := rows.Scan(
			&item.ID, &item.RoomNumber, &item.Floor, &item.RoomType,
			&item.Status, &cleaningStatus, &item.BaseNightlyCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		item.DisplayStatus = deriveDisplayStatus(item.Status, cleaningStatus)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}

func (r *RoomReadStore) HasActiveConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status IN ('pending', 'confirmed', 'checked_in')
			  AND check_in < $3
			  AND check_out > $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room conflict", err)
	}

	return exists, nil
}

func (r *RoomReadStore) FindAvailable(ctx context.Context, checkIn, checkOut time.Time, filters queries.RoomSearchFilters) ([]*queries.RoomListItem, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT r.id, r.room_number, r.floor, r.room_type, r.status, r.cleaning_status, r.base_nightly_cents
		FROM rooms r
		WHERE r.status = 'available'
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status IN ('pending', 'confirmed', 'checked_in')
			  AND b.check_in < $2
			  AND b.check_out > $1
		  )`)
	args := []any{checkIn, checkOut}

	appendFilter := func(condition string, value any) {
		args = append(args, value)
		sb.WriteString(" AND " + condition + "$" + strconv.Itoa(len(args)))
	}
	if filters.RoomType != nil {
		appendFilter("r.room_type = ", *filters.RoomType)
	}
	if filters.Floor != nil {
		appendFilter("r.floor = ", *filters.Floor)
	}
	if filters.MinPriceCents != nil {
		appendFilter("r.base_nightly_cents >= ", *filters.MinPriceCents)
	}
	if filters.MaxPriceCents != nil {
		appendFilter("r.base_nightly_cents <= ", *filters.MaxPriceCents)
	}
	sb.WriteString(" ORDER BY r.room_number")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomListItem
	for rows.Next() {
		var (
			item           queries.RoomListItem
			cleaningStatus string
		)
		if err := rows.Scan(
			&item.ID, &item.RoomNumber, &item.Floor, &item.RoomType,
			&item.Status, &cleaningStatus, &item.BaseNightlyCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available room row", err)
		}
		item.DisplayStatus = deriveDisplayStatus(item.Status, cleaningStatus)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available room rows", err)
	}

	return result, nil
}

func deriveDisplayStatus(status, cleaningStatus string) string {
	st, err := room.NewStatus(status)
	if err != nil {
		return status
	}
	cleaning, err := room.NewCleaningStatus(cleaningStatus)
	if err != nil {
		return status
	}
	return room.DeriveDisplayStatus(st, cleaning).String()
}
