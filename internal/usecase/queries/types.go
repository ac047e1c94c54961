package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID                  uuid.UUID          `json:"id"`
	RoomNumber          string             `json:"room_number"`
	Floor               int                `json:"floor"`
	RoomType            string             `json:"room_type"`
	Status              string             `json:"status"`
	DisplayStatus       string             `json:"display_status"`
	CleaningStatus      string             `json:"cleaning_status"`
	BaseNightlyCents    int64              `json:"base_nightly_cents"`
	FirstHourCents      int64              `json:"first_hour_cents"`
	AdditionalHourCents int64              `json:"additional_hour_cents"`
	SeasonalRates       []SeasonalRateView `json:"seasonal_rates"`
	CurrentBookingID    *uuid.UUID         `json:"current_booking_id,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type SeasonalRateView struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Multiplier float64   `json:"multiplier"`
}

type RoomListItem struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"room_number"`
	Floor            int       `json:"floor"`
	RoomType         string    `json:"room_type"`
	Status           string    `json:"status"`
	DisplayStatus    string    `json:"display_status"`
	BaseNightlyCents int64     `json:"base_nightly_cents"`
}

// RoomSearchFilters narrows availability searches; nil fields match all.
type RoomSearchFilters struct {
	RoomType      *string
	Floor         *int
	MinPriceCents *int64
	MaxPriceCents *int64
}

type BookingView struct {
	ID                 uuid.UUID           `json:"id"`
	BookingNumber      string              `json:"booking_number"`
	CustomerID         uuid.UUID           `json:"customer_id"`
	RoomID             uuid.UUID           `json:"room_id"`
	RoomNumber         string              `json:"room_number"`
	CheckIn            time.Time           `json:"check_in"`
	CheckOut           time.Time           `json:"check_out"`
	Adults             int                 `json:"adults"`
	Children           int                 `json:"children"`
	Status             string              `json:"status"`
	PaymentMethod      string              `json:"payment_method"`
	PaymentStatus      string              `json:"payment_status"`
	PaymentAmountCents int64               `json:"payment_amount_cents"`
	PaidAt             *time.Time          `json:"paid_at,omitempty"`
	TransactionID      *string             `json:"transaction_id,omitempty"`
	RoomPriceCents     int64               `json:"room_price_cents"`
	TotalAmountCents   int64               `json:"total_amount_cents"`
	CheckInRecord      *CheckInRecordView  `json:"check_in_record,omitempty"`
	CheckOutRecord     *CheckOutRecordView `json:"check_out_record,omitempty"`
	History            []HistoryEntryView  `json:"history,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type CheckInRecordView struct {
	At          time.Time  `json:"at"`
	StaffID     uuid.UUID  `json:"staff_id"`
	RoomKey     string     `json:"room_key"`
	ExtraGuests []string   `json:"extra_guests,omitempty"`
	CustomTime  *time.Time `json:"custom_time,omitempty"`
}

type CheckOutRecordView struct {
	At         time.Time    `json:"at"`
	StaffID    uuid.UUID    `json:"staff_id"`
	Condition  string       `json:"condition"`
	Damages    []DamageView `json:"damages,omitempty"`
	CustomTime *time.Time   `json:"custom_time,omitempty"`
}

type DamageView struct {
	Description string `json:"description"`
	CostCents   int64  `json:"cost_cents"`
}

type HistoryEntryView struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ActorID   uuid.UUID `json:"actor_id"`
	Reason    *string   `json:"reason,omitempty"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	BookingNumber    string    `json:"booking_number"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomNumber       string    `json:"room_number"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	Status           string    `json:"status"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	BookingID   uuid.UUID       `json:"booking_id"`
	Status      string          `json:"status"`
	RequestedAt time.Time       `json:"requested_at"`
	Items       []OrderItemView `json:"items"`
	TotalCents  int64           `json:"total_cents"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type OrderItemView struct {
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	FullName string    `json:"full_name"`
	IsActive bool      `json:"is_active"`
}
