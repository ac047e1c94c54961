package commands

import (
	"context"
	"time"

	domroom "hotel-back-office/internal/domain/room"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/pkg/errs"
	"hotel-back-office/internal/pkg/patch"
	"hotel-back-office/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNumberTaken = errs.New("room number already in use")
	ErrRoomInUse       = errs.New("room is referenced by an active booking")
	ErrInvalidRoomOp   = errs.New("invalid room operation")
)

type CreateRoomCommand struct {
	RoomNumber          string
	Floor               int
	RoomType            string
	BaseNightlyCents    int64
	FirstHourCents      int64
	AdditionalHourCents int64
	SeasonalRates       []SeasonalRateCommand
}

type SeasonalRateCommand struct {
	From       time.Time
	To         time.Time
	Multiplier float64
}

type UpdateRoomCommand struct {
	Floor               *int
	RoomType            *string
	BaseNightlyCents    *int64
	FirstHourCents      *int64
	AdditionalHourCents *int64
	SeasonalRates       []SeasonalRateCommand
}

// RoomStatusOp is a staff-initiated operational transition, distinct from the
// transitions driven by the booking lifecycle.
type RoomStatusOp string

const (
	RoomOpStartCleaning   RoomStatusOp = "start_cleaning"
	RoomOpFinishCleaning  RoomStatusOp = "finish_cleaning"
	RoomOpMarkMaintenance RoomStatusOp = "mark_maintenance"
)

type RoomCommands interface {
	CreateRoom(ctx context.Context, cmd CreateRoomCommand) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, cmd UpdateRoomCommand) error
	SetRoomStatus(ctx context.Context, roomID uuid.UUID, op RoomStatusOp) error
	DeleteRoom(ctx context.Context, roomID uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (uc *roomCommandsImpl) CreateRoom(ctx context.Context, cmd CreateRoomCommand) (uuid.UUID, error) {
	number, err := domroom.NewRoomNumber(cmd.RoomNumber)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	roomType, err := domroom.NewType(cmd.RoomType)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	rates, err := domroom.NewRateCard(
		cmd.BaseNightlyCents, cmd.FirstHourCents, cmd.AdditionalHourCents,
		toSeasonalRates(cmd.SeasonalRates),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	rm := domroom.NewRoom(number, cmd.Floor, roomType, rates)

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Rooms().Create(ctx, tx.DB(), rm)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrRoomNumberTaken
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *roomCommandsImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, cmd UpdateRoomCommand) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		roomType := rm.RoomType()
		if cmd.RoomType != nil {
			roomType, err = domroom.NewType(*cmd.RoomType)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		seasons := rm.Rates().Seasons()
		if cmd.SeasonalRates != nil {
			seasons = toSeasonalRates(cmd.SeasonalRates)
		}
		rates, err := domroom.NewRateCard(
			patch.Coalesce(cmd.BaseNightlyCents, rm.Rates().BaseNightlyCents()),
			patch.Coalesce(cmd.FirstHourCents, rm.Rates().FirstHourCents()),
			patch.Coalesce(cmd.AdditionalHourCents, rm.Rates().AdditionalHourCents()),
			seasons,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		rm.UpdateDetails(patch.Coalesce(cmd.Floor, rm.Floor()), roomType, rates)
		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
}

func (uc *roomCommandsImpl) SetRoomStatus(ctx context.Context, roomID uuid.UUID, op RoomStatusOp) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		switch op {
		case RoomOpStartCleaning:
			err = rm.StartCleaning()
		case RoomOpFinishCleaning:
			rm.FinishCleaning()
		case RoomOpMarkMaintenance:
			err = rm.MarkMaintenance()
		default:
			return ErrInvalidRoomOp
		}
		if err != nil {
			return errs.Mark(err, ErrRoomInUse)
		}

		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
}

// DeleteRoom refuses while any active booking references the room; the
// foreign key on bookings backstops stale reads.
func (uc *roomCommandsImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if !rm.CanDelete() {
			return ErrRoomInUse
		}

		if err := tx.Rooms().Delete(ctx, tx.DB(), roomID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRoomInUse
			}
			return err
		}
		return nil
	})
}

func toSeasonalRates(cmds []SeasonalRateCommand) []domroom.SeasonalRate {
	if len(cmds) == 0 {
		return nil
	}
	rates := make([]domroom.SeasonalRate, len(cmds))
	for i, c := range cmds {
		rates[i] = domroom.SeasonalRate{From: c.From, To: c.To, Multiplier: c.Multiplier}
	}
	return rates
}
