package request

import (
	"time"

	"hotel-back-office/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        uuid.UUID  `json:"room_id" binding:"required"`
	CheckIn       string     `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut      string     `json:"check_out" binding:"required,datetime=2006-01-02"`
	Adults        int        `json:"adults" binding:"required,min=1,max=10"`
	Children      int        `json:"children" binding:"min=0,max=5"`
	PaymentMethod string     `json:"payment_method" binding:"required,oneof=cash card bank_transfer online"`
	InitialStatus string     `json:"initial_status" binding:"omitempty,oneof=pending confirmed"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingCommand, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}

	initialStatus := r.InitialStatus
	if initialStatus == "" {
		initialStatus = "pending"
	}

	return commands.CreateBookingCommand{
		RoomID:        r.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        r.Adults,
		Children:      r.Children,
		PaymentMethod: r.PaymentMethod,
		InitialStatus: initialStatus,
		CheckInTime:   r.CheckInTime,
		CheckOutTime:  r.CheckOutTime,
	}, nil
}

type CheckInRequest struct {
	RoomKey     string     `json:"room_key" binding:"required"`
	ExtraGuests []string   `json:"extra_guests,omitempty"`
	CustomTime  *time.Time `json:"custom_time,omitempty"`
}

func (r CheckInRequest) ToCommand() commands.CheckInCommand {
	return commands.CheckInCommand{
		RoomKey:     r.RoomKey,
		ExtraGuests: r.ExtraGuests,
		CustomTime:  r.CustomTime,
	}
}

type DamageRequest struct {
	Description string `json:"description" binding:"required"`
	CostCents   int64  `json:"cost_cents" binding:"min=0"`
}

type CheckOutRequest struct {
	Condition  string          `json:"condition" binding:"required,oneof=good damaged needs_cleaning needs_maintenance"`
	Damages    []DamageRequest `json:"damages,omitempty" binding:"omitempty,dive"`
	CustomTime *time.Time      `json:"custom_time,omitempty"`
}

func (r CheckOutRequest) ToCommand() commands.CheckOutCommand {
	damages := make([]commands.DamageCommand, len(r.Damages))
	for i, d := range r.Damages {
		damages[i] = commands.DamageCommand{Description: d.Description, CostCents: d.CostCents}
	}
	return commands.CheckOutCommand{
		Condition:  r.Condition,
		Damages:    damages,
		CustomTime: r.CustomTime,
	}
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type NoShowRequest struct {
	Reason *string `json:"reason,omitempty"`
}
