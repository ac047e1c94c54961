package commands

import (
	"context"
	"errors"
	"time"

	dombooking "hotel-back-office/internal/domain/booking"
	domroom "hotel-back-office/internal/domain/room"
	"hotel-back-office/internal/domain/user"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/pkg/clock"
	"hotel-back-office/internal/pkg/errs"
	"hotel-back-office/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound       = errs.New("room not found")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrRoomUnavailable    = errs.New("room is not available")
	ErrBookingConflict    = errs.New("booking conflicts with an existing stay")
	ErrInvalidTransition  = errs.New("invalid booking state transition")
	ErrCancellationClosed = errs.New("cancellation window has closed")
	ErrNotBookingOwner    = errs.New("booking does not belong to this customer")
	ErrStaffOnly          = errs.New("operation requires staff role")
	ErrBookingUndeletable = errs.New("checked-in booking cannot be deleted")
	ErrDomainValidation   = errs.New("domain validation error")
)

type CreateBookingCommand struct {
	RoomID        uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	PaymentMethod string
	InitialStatus string
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
}

type CheckInCommand struct {
	RoomKey     string
	ExtraGuests []string
	CustomTime  *time.Time
}

type CheckOutCommand struct {
	Condition  string
	Damages    []DamageCommand
	CustomTime *time.Time
}

type DamageCommand struct {
	Description string
	CostCents   int64
}

type CreateBookingResult struct {
	BookingID     uuid.UUID
	BookingNumber string
	TotalCents    int64
}

type CheckOutResult struct {
	BookingID  uuid.UUID
	TotalCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, cmd CreateBookingCommand, customerID uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	CheckIn(ctx context.Context, bookingID uuid.UUID, cmd CheckInCommand, staffID uuid.UUID, staffRole user.Role) error
	CheckOut(ctx context.Context, bookingID uuid.UUID, cmd CheckOutCommand, staffID uuid.UUID, staffRole user.Role) (*CheckOutResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role, reason *string) error
	MarkNoShow(ctx context.Context, bookingID uuid.UUID, staffID uuid.UUID, staffRole user.Role, reason *string) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, staffID uuid.UUID, staffRole user.Role) error
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *dombooking.Factory
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, factory *dombooking.Factory, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, factory: factory, clock: clk}
}

// CreateBooking reserves the room and inserts the booking in one transaction.
// The room row is locked before the overlap re-check, so two concurrent
// requests for the same room serialize; the DB exclusion constraint backstops
// the same invariant.
func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, cmd CreateBookingCommand, customerID uuid.UUID) (*CreateBookingResult, error) {
	stay, err := dombooking.NewStayWindow(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	guests, err := dombooking.NewGuestCount(cmd.Adults, cmd.Children)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	method, err := dombooking.NewPaymentMethod(cmd.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	initial, err := dombooking.NewStatus(cmd.InitialStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), cmd.RoomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}

		if !rm.IsAvailable() {
			return ErrRoomUnavailable
		}

		overlap, derr := tx.Bookings().HasActiveOverlap(ctx, tx.DB(), rm.ID(), stay)
		if derr != nil {
			return derr
		}
		if overlap {
			return ErrBookingConflict
		}

		b, derr := uc.factory.CreateBooking(
			dombooking.RoomSpec{ID: rm.ID(), Rates: rm.Rates()},
			customerID, stay, guests, method, initial,
			cmd.CheckInTime, cmd.CheckOutTime,
		)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		if _, derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return derr
		}

		if derr = rm.Reserve(b.ID()); derr != nil {
			return ErrRoomUnavailable
		}
		if derr = tx.Rooms().Update(ctx, tx.DB(), rm); derr != nil {
			return derr
		}

		result = &CreateBookingResult{
			BookingID:     b.ID(),
			BookingNumber: b.BookingNumber(),
			TotalCents:    b.TotalAmount().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	if !actorRole.IsStaff() {
		return ErrStaffOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Confirm(actorID, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
}

func (uc *bookingCommandsImpl) CheckIn(ctx context.Context, bookingID uuid.UUID, cmd CheckInCommand, staffID uuid.UUID, staffRole user.Role) error {
	if !staffRole.IsStaff() {
		return ErrStaffOnly
	}

	extras := make([]dombooking.ExtraGuest, len(cmd.ExtraGuests))
	for i, name := range cmd.ExtraGuests {
		extras[i] = dombooking.ExtraGuest{Name: name}
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), b.RoomID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := b.CheckIn(staffID, cmd.RoomKey, extras, cmd.CustomTime, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := rm.Occupy(b.ID()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
}

// CheckOut closes the stay: the booking recomputes the billed amount from the
// actual occupancy and the room state is refined from the reported condition,
// both inside one transaction.
func (uc *bookingCommandsImpl) CheckOut(ctx context.Context, bookingID uuid.UUID, cmd CheckOutCommand, staffID uuid.UUID, staffRole user.Role) (*CheckOutResult, error) {
	if !staffRole.IsStaff() {
		return nil, ErrStaffOnly
	}

	condition, err := domroom.NewCondition(cmd.Condition)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	damages := make([]dombooking.Damage, len(cmd.Damages))
	for i, d := range cmd.Damages {
		damages[i] = dombooking.Damage{Description: d.Description, CostCents: d.CostCents}
	}

	var result *CheckOutResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.findBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}
		rm, derr := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), b.RoomID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}

		if derr = b.CheckOut(rm.Rates(), staffID, condition, damages, cmd.CustomTime, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrInvalidTransition)
		}
		if derr = rm.ReleaseAfterStay(condition); derr != nil {
			return errs.Mark(derr, ErrInvalidTransition)
		}

		if derr = tx.Bookings().Update(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr = tx.Rooms().Update(ctx, tx.DB(), rm); derr != nil {
			return derr
		}

		result = &CheckOutResult{BookingID: b.ID(), TotalCents: b.TotalAmount().Cents()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role, reason *string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if actorRole.IsStaff() {
			if err := b.CancelByStaff(actorID, reason, now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
		} else {
			if b.CustomerID() != actorID {
				return ErrNotBookingOwner
			}
			if err := b.CancelByCustomer(actorID, reason, now); err != nil {
				if errors.Is(err, dombooking.ErrCancellationClosed) {
					return ErrCancellationClosed
				}
				return errs.Mark(err, ErrInvalidTransition)
			}
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return uc.releaseRoom(ctx, tx, b.RoomID())
	})
}

func (uc *bookingCommandsImpl) MarkNoShow(ctx context.Context, bookingID uuid.UUID, staffID uuid.UUID, staffRole user.Role, reason *string) error {
	if !staffRole.IsStaff() {
		return ErrStaffOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.MarkNoShow(staffID, reason, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return uc.releaseRoom(ctx, tx, b.RoomID())
	})
}

// DeleteBooking is an administrative correction, not a lifecycle transition.
// Room state is reset the same way a cancellation would.
func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID, staffID uuid.UUID, staffRole user.Role) error {
	if !staffRole.IsStaff() {
		return ErrStaffOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.CanDelete() {
			return ErrBookingUndeletable
		}

		if b.Status().IsActive() {
			if err := uc.releaseRoom(ctx, tx, b.RoomID()); err != nil {
				return err
			}
		}
		return tx.Bookings().Delete(ctx, tx.DB(), bookingID)
	})
}

func (uc *bookingCommandsImpl) findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*dombooking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingCommandsImpl) releaseRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) error {
	rm, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Room already deleted; nothing to reset.
			return nil
		}
		return err
	}
	rm.Release()
	return tx.Rooms().Update(ctx, tx.DB(), rm)
}
