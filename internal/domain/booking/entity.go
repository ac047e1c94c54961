package booking

import (
	"errors"
	"time"

	"hotel-back-office/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errors.New("invalid booking status")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidStayWindow     = errors.New("check-out date must not precede check-in date")
	ErrInvalidGuestCount     = errors.New("guest count out of range")
	ErrInvalidInitialStatus  = errors.New("initial status must be pending or confirmed")
	ErrInvalidTransition     = errors.New("invalid booking status transition")
	ErrNotConfirmed          = errors.New("booking must be confirmed before check-in")
	ErrNotCheckedIn          = errors.New("booking is not checked in")
	ErrCancellationClosed    = errors.New("cancellation window has closed")
	ErrCheckedInUndeletable  = errors.New("checked-in booking cannot be deleted")
	ErrNotChargeable         = errors.New("booking cannot accept service charges")
	ErrInvalidRoomCondition  = errors.New("invalid room condition")
	ErrEmptyRoomKey          = errors.New("room key cannot be empty")
	ErrCheckOutBeforeCheckIn = errors.New("check-out instant precedes check-in instant")
)

// customerCancelCutoff is how long before the scheduled arrival a confirmed
// booking stays customer-cancellable.
const customerCancelCutoff = 24 * time.Hour

type Booking struct {
	id            uuid.UUID
	bookingNumber string
	customerID    uuid.UUID
	roomID        uuid.UUID
	stay          StayWindow
	guests        GuestCount
	status        Status
	payment       Payment
	roomPrice     Money
	totalAmount   Money
	checkInRec    *CheckInRecord
	checkOutRec   *CheckOutRecord
	history       []HistoryEntry
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	bookingNumber string,
	customerID, roomID uuid.UUID,
	stay StayWindow,
	guests GuestCount,
	status Status,
	payment Payment,
	roomPrice, totalAmount Money,
	checkInRec *CheckInRecord,
	checkOutRec *CheckOutRecord,
	history []HistoryEntry,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		bookingNumber: bookingNumber,
		customerID:    customerID,
		roomID:        roomID,
		stay:          stay,
		guests:        guests,
		status:        status,
		payment:       payment,
		roomPrice:     roomPrice,
		totalAmount:   totalAmount,
		checkInRec:    checkInRec,
		checkOutRec:   checkOutRec,
		history:       history,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) BookingNumber() string        { return b.bookingNumber }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) RoomID() uuid.UUID            { return b.roomID }
func (b *Booking) Stay() StayWindow             { return b.stay }
func (b *Booking) Guests() GuestCount           { return b.guests }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Payment() Payment             { return b.payment }
func (b *Booking) RoomPrice() Money             { return b.roomPrice }
func (b *Booking) TotalAmount() Money           { return b.totalAmount }
func (b *Booking) CheckInRecord() *CheckInRecord   { return b.checkInRec }
func (b *Booking) CheckOutRecord() *CheckOutRecord { return b.checkOutRec }
func (b *Booking) History() []HistoryEntry      { return b.history }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// Confirm promotes a pending booking.
func (b *Booking) Confirm(actorID uuid.UUID, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.appendHistory(StatusConfirmed, now, actorID, nil)
	return nil
}

// CheckIn requires a strictly confirmed booking; pending is rejected, never
// coerced.
func (b *Booking) CheckIn(staffID uuid.UUID, roomKey string, extraGuests []ExtraGuest, customTime *time.Time, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if roomKey == "" {
		return ErrEmptyRoomKey
	}

	at := now
	if customTime != nil {
		at = *customTime
	}

	b.status = StatusCheckedIn
	b.checkInRec = &CheckInRecord{
		At:          at,
		StaffID:     staffID,
		RoomKey:     roomKey,
		ExtraGuests: extraGuests,
		CustomTime:  customTime,
	}
	b.appendHistory(StatusCheckedIn, now, staffID, nil)
	return nil
}

// CheckOut closes the stay and recomputes the billed amount from the actual
// occupancy, overwriting both the total and the payment amount.
func (b *Booking) CheckOut(rates room.RateCard, staffID uuid.UUID, condition room.Condition, damages []Damage, customTime *time.Time, now time.Time) error {
	if b.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	if !condition.IsValid() {
		return ErrInvalidRoomCondition
	}

	at := now
	if customTime != nil {
		at = *customTime
	}
	if b.checkInRec != nil && at.Before(b.checkInRec.At) {
		return ErrCheckOutBeforeCheckIn
	}

	actualIn := b.stay.CheckInDeadline()
	if b.checkInRec != nil {
		actualIn = b.checkInRec.At
	}

	b.status = StatusCheckedOut
	b.checkOutRec = &CheckOutRecord{
		At:         at,
		StaffID:    staffID,
		Condition:  condition,
		Damages:    damages,
		CustomTime: customTime,
	}

	actual := RecomputeActual(rates, actualIn, at)
	b.totalAmount = actual
	b.payment.amount = actual

	b.appendHistory(StatusCheckedOut, now, staffID, nil)
	return nil
}

// CanCancel is the customer-facing rule: pending is always cancellable,
// confirmed only while more than 24 hours remain before scheduled arrival.
func (b *Booking) CanCancel(now time.Time) bool {
	switch b.status {
	case StatusPending:
		return true
	case StatusConfirmed:
		return b.stay.CheckInDeadline().Sub(now) > customerCancelCutoff
	default:
		return false
	}
}

func (b *Booking) CancelByCustomer(customerID uuid.UUID, reason *string, now time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if !b.CanCancel(now) {
		return ErrCancellationClosed
	}
	b.status = StatusCancelled
	b.appendHistory(StatusCancelled, now, customerID, reason)
	return nil
}

func (b *Booking) CancelByStaff(staffID uuid.UUID, reason *string, now time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.appendHistory(StatusCancelled, now, staffID, reason)
	return nil
}

// MarkNoShow records a guest who never arrived or abandoned the stay. Any
// non-terminal booking qualifies; the room is released by the caller.
func (b *Booking) MarkNoShow(staffID uuid.UUID, reason *string, now time.Time) error {
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	b.status = StatusNoShow
	b.appendHistory(StatusNoShow, now, staffID, reason)
	return nil
}

// CanDelete: administrative deletion is blocked only while the guest is in
// the room.
func (b *Booking) CanDelete() bool {
	return b.status != StatusCheckedIn
}

// ApplyServiceCharge adds an order total on top of the room price.
func (b *Booking) ApplyServiceCharge(amount Money) error {
	if b.status != StatusConfirmed && b.status != StatusCheckedIn {
		return ErrNotChargeable
	}
	b.totalAmount = b.totalAmount.Add(amount)
	b.payment.amount = b.payment.amount.Add(amount)
	return nil
}

func (b *Booking) appendHistory(status Status, at time.Time, actorID uuid.UUID, reason *string) {
	b.history = append(b.history, HistoryEntry{
		Status:    status,
		ChangedAt: at,
		ActorID:   actorID,
		Reason:    reason,
	})
}
