//go:build unit || e2e

package builder

import (
	"time"

	"hotel-back-office/internal/domain/room"
	reqdto "hotel-back-office/internal/handler/dto/request"
	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	RoomNumber          string
	Floor               int
	RoomType            string
	BaseNightlyCents    int64
	FirstHourCents      int64
	AdditionalHourCents int64
	Seasons             []room.SeasonalRate
	Status              string
	CleaningStatus      string
	CurrentBookingID    *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		RoomNumber:          "301",
		Floor:               3,
		RoomType:            "standard",
		BaseNightlyCents:    1_000_000,
		FirstHourCents:      100_000,
		AdditionalHourCents: 20_000,
		Status:              "available",
		CleaningStatus:      "clean",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	number, err := room.NewRoomNumber(r.RoomNumber)
	if err != nil {
		return nil, err
	}

	roomType, err := room.NewType(r.RoomType)
	if err != nil {
		return nil, err
	}

	rates, err := room.NewRateCard(r.BaseNightlyCents, r.FirstHourCents, r.AdditionalHourCents, r.Seasons)
	if err != nil {
		return nil, err
	}

	return room.NewRoom(number, r.Floor, roomType, rates), nil
}

// BuildReconstructed yields a room in an arbitrary stored state, bypassing the
// creation invariants the way the repository layer does.
func (r *RoomBuilder) BuildReconstructed() (*room.Room, error) {
	number, err := room.NewRoomNumber(r.RoomNumber)
	if err != nil {
		return nil, err
	}

	roomType, err := room.NewType(r.RoomType)
	if err != nil {
		return nil, err
	}

	rates, err := room.NewRateCard(r.BaseNightlyCents, r.FirstHourCents, r.AdditionalHourCents, r.Seasons)
	if err != nil {
		return nil, err
	}

	status, err := room.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}

	cleaning, err := room.NewCleaningStatus(r.CleaningStatus)
	if err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		uuid.New(), number, r.Floor, roomType, rates,
		status, cleaning, r.CurrentBookingID, r.CreatedAt, r.UpdatedAt,
	), nil
}

func (r *RoomBuilder) BuildRates() room.RateCard {
	rates, err := room.NewRateCard(r.BaseNightlyCents, r.FirstHourCents, r.AdditionalHourCents, r.Seasons)
	if err != nil {
		panic(err)
	}
	return rates
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		RoomNumber:          r.RoomNumber,
		Floor:               r.Floor,
		RoomType:            r.RoomType,
		BaseNightlyCents:    r.BaseNightlyCents,
		FirstHourCents:      r.FirstHourCents,
		AdditionalHourCents: r.AdditionalHourCents,
	}
}

func (r *RoomBuilder) BuildViewQuery() *queries.RoomView {
	return &queries.RoomView{
		ID:                  uuid.New(),
		RoomNumber:          r.RoomNumber,
		Floor:               r.Floor,
		RoomType:            r.RoomType,
		Status:              r.Status,
		DisplayStatus:       r.Status,
		CleaningStatus:      r.CleaningStatus,
		BaseNightlyCents:    r.BaseNightlyCents,
		FirstHourCents:      r.FirstHourCents,
		AdditionalHourCents: r.AdditionalHourCents,
		CurrentBookingID:    r.CurrentBookingID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildListItem() *queries.RoomListItem {
	return &queries.RoomListItem{
		ID:               uuid.New(),
		RoomNumber:       r.RoomNumber,
		Floor:            r.Floor,
		RoomType:         r.RoomType,
		Status:           r.Status,
		DisplayStatus:    r.Status,
		BaseNightlyCents: r.BaseNightlyCents,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithRoomNumber(number string) *RoomBuilder {
	r.RoomNumber = number
	return r
}

func (r *RoomBuilder) WithFloor(floor int) *RoomBuilder {
	r.Floor = floor
	return r
}

func (r *RoomBuilder) WithRoomType(roomType string) *RoomBuilder {
	r.RoomType = roomType
	return r
}

func (r *RoomBuilder) WithRates(nightly, firstHour, additionalHour int64) *RoomBuilder {
	r.BaseNightlyCents = nightly
	r.FirstHourCents = firstHour
	r.AdditionalHourCents = additionalHour
	return r
}

func (r *RoomBuilder) WithSeason(from, to time.Time, multiplier float64) *RoomBuilder {
	r.Seasons = append(r.Seasons, room.SeasonalRate{From: from, To: to, Multiplier: multiplier})
	return r
}

func (r *RoomBuilder) WithStatus(status string) *RoomBuilder {
	r.Status = status
	return r
}

func (r *RoomBuilder) WithCleaningStatus(status string) *RoomBuilder {
	r.CleaningStatus = status
	return r
}

func (r *RoomBuilder) WithCurrentBooking(bookingID uuid.UUID) *RoomBuilder {
	r.CurrentBookingID = &bookingID
	return r
}

func (r *RoomBuilder) AsReserved(bookingID uuid.UUID) *RoomBuilder {
	r.Status = "reserved"
	r.CurrentBookingID = &bookingID
	return r
}

func (r *RoomBuilder) AsOccupied(bookingID uuid.UUID) *RoomBuilder {
	r.Status = "occupied"
	r.CurrentBookingID = &bookingID
	return r
}
