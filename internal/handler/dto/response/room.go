package response

import (
	"time"

	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID                  uuid.UUID              `json:"id"`
	RoomNumber          string                 `json:"room_number"`
	Floor               int                    `json:"floor"`
	RoomType            string                 `json:"room_type"`
	Status              string                 `json:"status"`
	DisplayStatus       string                 `json:"display_status"`
	CleaningStatus      string                 `json:"cleaning_status"`
	BaseNightlyCents    int64                  `json:"base_nightly_cents"`
	FirstHourCents      int64                  `json:"first_hour_cents"`
	AdditionalHourCents int64                  `json:"additional_hour_cents"`
	SeasonalRates       []SeasonalRateResponse `json:"seasonal_rates,omitempty"`
	CurrentBookingID    *uuid.UUID             `json:"current_booking_id,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

type SeasonalRateResponse struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Multiplier float64   `json:"multiplier"`
}

type RoomListResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"room_number"`
	Floor            int       `json:"floor"`
	RoomType         string    `json:"room_type"`
	Status           string    `json:"status"`
	DisplayStatus    string    `json:"display_status"`
	BaseNightlyCents int64     `json:"base_nightly_cents"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Available bool      `json:"available"`
}

func FromRoomView(view *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRoomListItem(item *queries.RoomListItem) *RoomListResponse {
	return &RoomListResponse{
		ID:               item.ID,
		RoomNumber:       item.RoomNumber,
		Floor:            item.Floor,
		RoomType:         item.RoomType,
		Status:           item.Status,
		DisplayStatus:    item.DisplayStatus,
		BaseNightlyCents: item.BaseNightlyCents,
	}
}
