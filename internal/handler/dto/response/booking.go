package response

import (
	"time"

	"hotel-back-office/internal/usecase/commands"
	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID               `json:"id"`
	BookingNumber      string                  `json:"booking_number"`
	CustomerID         uuid.UUID               `json:"customer_id"`
	RoomID             uuid.UUID               `json:"room_id"`
	RoomNumber         string                  `json:"room_number"`
	CheckIn            time.Time               `json:"check_in"`
	CheckOut           time.Time               `json:"check_out"`
	Adults             int                     `json:"adults"`
	Children           int                     `json:"children"`
	Status             string                  `json:"status"`
	PaymentMethod      string                  `json:"payment_method"`
	PaymentStatus      string                  `json:"payment_status"`
	PaymentAmountCents int64                   `json:"payment_amount_cents"`
	PaidAt             *time.Time              `json:"paid_at,omitempty"`
	TransactionID      *string                 `json:"transaction_id,omitempty"`
	RoomPriceCents     int64                   `json:"room_price_cents"`
	TotalAmountCents   int64                   `json:"total_amount_cents"`
	CheckInRecord      *CheckInRecordResponse  `json:"check_in_record,omitempty"`
	CheckOutRecord     *CheckOutRecordResponse `json:"check_out_record,omitempty"`
	History            []HistoryEntryResponse  `json:"history,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

type CheckInRecordResponse struct {
	At          time.Time  `json:"at"`
	StaffID     uuid.UUID  `json:"staff_id"`
	RoomKey     string     `json:"room_key"`
	ExtraGuests []string   `json:"extra_guests,omitempty"`
	CustomTime  *time.Time `json:"custom_time,omitempty"`
}

type CheckOutRecordResponse struct {
	At         time.Time        `json:"at"`
	StaffID    uuid.UUID        `json:"staff_id"`
	Condition  string           `json:"condition"`
	Damages    []DamageResponse `json:"damages,omitempty"`
	CustomTime *time.Time       `json:"custom_time,omitempty"`
}

type DamageResponse struct {
	Description string `json:"description"`
	CostCents   int64  `json:"cost_cents"`
}

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ActorID   uuid.UUID `json:"actor_id"`
	Reason    *string   `json:"reason,omitempty"`
}

type BookingListResponse struct {
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

type CreateBookingResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	TotalCents    int64     `json:"total_cents"`
}

type CheckOutResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	TotalCents int64     `json:"total_cents"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:               item.ID,
		BookingNumber:    item.BookingNumber,
		RoomID:           item.RoomID,
		RoomNumber:       item.RoomNumber,
		CheckIn:          item.CheckIn,
		CheckOut:         item.CheckOut,
		Status:           item.Status,
		TotalAmountCents: item.TotalAmountCents,
		CreatedAt:        item.CreatedAt,
	}
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:     result.BookingID,
		BookingNumber: result.BookingNumber,
		TotalCents:    result.TotalCents,
	}
}

func FromCheckOutResult(result *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{
		BookingID:  result.BookingID,
		TotalCents: result.TotalCents,
	}
}
