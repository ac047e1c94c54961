package repository

import (
	"context"

	"hotel-back-office/internal/domain/room"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/infra/repository/converter"
	"hotel-back-office/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	seasons, err := converter.SeasonalRatesToJSON(rm.Rates().Seasons())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode seasonal rates", err)
	}

	const query = `
		INSERT INTO rooms (
			id, room_number, floor, room_type,
			base_nightly_cents, first_hour_cents, additional_hour_cents, seasonal_rates,
			status, cleaning_status, current_booking_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		rm.ID(),
		rm.Number().Value(),
		rm.Floor(),
		rm.RoomType().String(),
		rm.Rates().BaseNightlyCents(),
		rm.Rates().FirstHourCents(),
		rm.Rates().AdditionalHourCents(),
		seasons,
		rm.Status().String(),
		rm.CleaningStatus().String(),
		pgconv.UUIDPtrToPgtype(rm.CurrentBookingID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapDBErr("failed to create room", err)
	}

	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	seasons, err := converter.SeasonalRatesToJSON(rm.Rates().Seasons())
	if err != nil {
		return infra.WrapRepoErr("failed to encode seasonal rates", err)
	}

	const query = `
		UPDATE rooms SET
			floor = $2,
			room_type = $3,
			base_nightly_cents = $4,
			first_hour_cents = $5,
			additional_hour_cents = $6,
			seasonal_rates = $7,
			status = $8,
			cleaning_status = $9,
			current_booking_id = $10,
			updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		rm.ID(),
		rm.Floor(),
		rm.RoomType().String(),
		rm.Rates().BaseNightlyCents(),
		rm.Rates().FirstHourCents(),
		rm.Rates().AdditionalHourCents(),
		seasons,
		rm.Status().String(),
		rm.CleaningStatus().String(),
		pgconv.UUIDPtrToPgtype(rm.CurrentBookingID()),
	)
	if err != nil {
		return wrapDBErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

// FindByIDForUpdate locks the room row for the rest of the transaction.
// Concurrent booking writes against the same room serialize here.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	const query = `
		SELECT id, room_number, floor, room_type,
		       base_nightly_cents, first_hour_cents, additional_hour_cents, seasonal_rates,
		       status, cleaning_status, current_booking_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	var (
		roomID              uuid.UUID
		roomNumber          string
		floor               int
		roomType            string
		baseNightlyCents    int64
		firstHourCents      int64
		additionalHourCents int64
		seasonsJSON         []byte
		status              string
		cleaningStatus      string
		currentBookingID    pgtype.UUID
		createdAt           pgtype.Timestamptz
		updatedAt           pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&roomID, &roomNumber, &floor, &roomType,
		&baseNightlyCents, &firstHourCents, &additionalHourCents, &seasonsJSON,
		&status, &cleaningStatus, &currentBookingID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapDBErr("failed to find room for update", err)
	}

	return reconstructRoom(
		roomID, roomNumber, floor, roomType,
		baseNightlyCents, firstHourCents, additionalHourCents, seasonsJSON,
		status, cleaningStatus, currentBookingID, createdAt, updatedAt,
	)
}

func reconstructRoom(
	id uuid.UUID,
	roomNumber string,
	floor int,
	roomType string,
	baseNightlyCents, firstHourCents, additionalHourCents int64,
	seasonsJSON []byte,
	status, cleaningStatus string,
	currentBookingID pgtype.UUID,
	createdAt, updatedAt pgtype.Timestamptz,
) (*room.Room, error) {
	number, err := room.NewRoomNumber(roomNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room number in storage", err)
	}
	typ, err := room.NewType(roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room type in storage", err)
	}
	seasons, err := converter.SeasonalRatesFromJSON(seasonsJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode seasonal rates", err)
	}
	rates, err := room.NewRateCard(baseNightlyCents, firstHourCents, additionalHourCents, seasons)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid rate card in storage", err)
	}
	st, err := room.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room status in storage", err)
	}
	cleaning, err := room.NewCleaningStatus(cleaningStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cleaning status in storage", err)
	}

	return room.ReconstructRoom(
		id, number, floor, typ, rates, st, cleaning,
		pgconv.UUIDPtrFromPgtype(currentBookingID),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
