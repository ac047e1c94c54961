package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomType       = errors.New("invalid room type")
	ErrInvalidStatus         = errors.New("invalid room status")
	ErrInvalidCleaningStatus = errors.New("invalid cleaning status")
	ErrInvalidCondition      = errors.New("invalid room condition")
	ErrNegativeRate          = errors.New("rate cannot be negative")
	ErrInvalidSeasonWindow   = errors.New("invalid seasonal rate window")
	ErrNotAvailable          = errors.New("room is not available")
	ErrNotReservedForBooking = errors.New("room is not reserved for this booking")
	ErrNotOccupied           = errors.New("room is not occupied")
	ErrRoomInUse             = errors.New("room is referenced by an active booking")
)

// Room aggregate. status and currentBookingID move together: the pointer is
// set iff status is reserved or occupied.
type Room struct {
	id               uuid.UUID
	number           RoomNumber
	floor            int
	roomType         Type
	rates            RateCard
	status           Status
	cleaningStatus   CleaningStatus
	currentBookingID *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(number RoomNumber, floor int, roomType Type, rates RateCard) *Room {
	return &Room{
		id:             uuid.New(),
		number:         number,
		floor:          floor,
		roomType:       roomType,
		rates:          rates,
		status:         StatusAvailable,
		cleaningStatus: CleaningClean,
	}
}

func ReconstructRoom(
	id uuid.UUID,
	number RoomNumber,
	floor int,
	roomType Type,
	rates RateCard,
	status Status,
	cleaningStatus CleaningStatus,
	currentBookingID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		number:           number,
		floor:            floor,
		roomType:         roomType,
		rates:            rates,
		status:           status,
		cleaningStatus:   cleaningStatus,
		currentBookingID: currentBookingID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Room) ID() uuid.UUID                  { return r.id }
func (r *Room) Number() RoomNumber             { return r.number }
func (r *Room) Floor() int                     { return r.floor }
func (r *Room) RoomType() Type                 { return r.roomType }
func (r *Room) Rates() RateCard                { return r.rates }
func (r *Room) Status() Status                 { return r.status }
func (r *Room) CleaningStatus() CleaningStatus { return r.cleaningStatus }
func (r *Room) CurrentBookingID() *uuid.UUID   { return r.currentBookingID }
func (r *Room) CreatedAt() time.Time           { return r.createdAt }
func (r *Room) UpdatedAt() time.Time           { return r.updatedAt }

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

// Reserve points the room at a newly created booking.
func (r *Room) Reserve(bookingID uuid.UUID) error {
	if r.status != StatusAvailable {
		return ErrNotAvailable
	}
	r.status = StatusReserved
	r.currentBookingID = &bookingID
	return nil
}

// Occupy marks the guest as physically checked in. The room must already be
// reserved for the same booking.
func (r *Room) Occupy(bookingID uuid.UUID) error {
	if r.status != StatusReserved || r.currentBookingID == nil || *r.currentBookingID != bookingID {
		return ErrNotReservedForBooking
	}
	r.status = StatusOccupied
	r.currentBookingID = &bookingID
	return nil
}

// ReleaseAfterStay clears the booking pointer at check-out and refines the
// operational state from the reported condition.
func (r *Room) ReleaseAfterStay(cond Condition) error {
	if r.status != StatusOccupied {
		return ErrNotOccupied
	}
	if !cond.IsValid() {
		return ErrInvalidCondition
	}

	r.currentBookingID = nil
	switch cond {
	case ConditionGood:
		r.status = StatusAvailable
		r.cleaningStatus = CleaningClean
	case ConditionNeedsCleaning:
		r.status = StatusNeedsCleaning
		r.cleaningStatus = CleaningDirty
	case ConditionNeedsMaintenance:
		r.status = StatusMaintenance
		r.cleaningStatus = CleaningDirty
	case ConditionDamaged:
		r.status = StatusOutOfOrder
		r.cleaningStatus = CleaningDirty
	}
	return nil
}

// Release detaches the room from its booking on cancellation, no-show, or an
// administrative delete. Safe to call when the room holds no booking.
func (r *Room) Release() {
	if r.status == StatusReserved || r.status == StatusOccupied {
		r.status = StatusAvailable
	}
	r.currentBookingID = nil
}

func (r *Room) StartCleaning() error {
	if r.status == StatusReserved || r.status == StatusOccupied {
		return ErrRoomInUse
	}
	r.status = StatusCleaning
	r.cleaningStatus = CleaningInProgress
	return nil
}

func (r *Room) FinishCleaning() {
	r.status = StatusAvailable
	r.cleaningStatus = CleaningClean
}

func (r *Room) MarkMaintenance() error {
	if r.status == StatusReserved || r.status == StatusOccupied {
		return ErrRoomInUse
	}
	r.status = StatusMaintenance
	r.cleaningStatus = CleaningMaintenanceRequired
	return nil
}

func (r *Room) CanDelete() bool {
	return r.currentBookingID == nil
}

func (r *Room) UpdateDetails(floor int, roomType Type, rates RateCard) {
	r.floor = floor
	r.roomType = roomType
	r.rates = rates
}

// ValidateBookingRef checks the stored-state invariant: the booking pointer is
// set iff the room is reserved or occupied.
func (r *Room) ValidateBookingRef() bool {
	holds := r.status == StatusReserved || r.status == StatusOccupied
	return holds == (r.currentBookingID != nil)
}

// DeriveDisplayStatus computes the status shown to staff from the stored
// fields, so stale derived state is never persisted.
func DeriveDisplayStatus(status Status, cleaning CleaningStatus) Status {
	if status != StatusAvailable {
		return status
	}
	switch cleaning {
	case CleaningDirty:
		return StatusNeedsCleaning
	case CleaningInProgress:
		return StatusCleaning
	case CleaningMaintenanceRequired:
		return StatusMaintenance
	default:
		return status
	}
}
