package request

import (
	"time"

	"hotel-back-office/internal/usecase/commands"
	"hotel-back-office/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type SeasonalRateRequest struct {
	From       string  `json:"from" binding:"required,datetime=2006-01-02"`
	To         string  `json:"to" binding:"required,datetime=2006-01-02"`
	Multiplier float64 `json:"multiplier" binding:"required,gt=0"`
}

type CreateRoomRequest struct {
	RoomNumber          string                `json:"room_number" binding:"required"`
	Floor               int                   `json:"floor" binding:"required,min=1"`
	RoomType            string                `json:"room_type" binding:"required,oneof=standard deluxe presidential"`
	BaseNightlyCents    int64                 `json:"base_nightly_cents" binding:"min=0"`
	FirstHourCents      int64                 `json:"first_hour_cents" binding:"min=0"`
	AdditionalHourCents int64                 `json:"additional_hour_cents" binding:"min=0"`
	SeasonalRates       []SeasonalRateRequest `json:"seasonal_rates,omitempty" binding:"omitempty,dive"`
}

func (r CreateRoomRequest) ToCommand() (commands.CreateRoomCommand, error) {
	rates, err := toSeasonalRateCommands(r.SeasonalRates)
	if err != nil {
		return commands.CreateRoomCommand{}, err
	}
	return commands.CreateRoomCommand{
		RoomNumber:          r.RoomNumber,
		Floor:               r.Floor,
		RoomType:            r.RoomType,
		BaseNightlyCents:    r.BaseNightlyCents,
		FirstHourCents:      r.FirstHourCents,
		AdditionalHourCents: r.AdditionalHourCents,
		SeasonalRates:       rates,
	}, nil
}

type UpdateRoomRequest struct {
	Floor               *int                  `json:"floor,omitempty" binding:"omitempty,min=1"`
	RoomType            *string               `json:"room_type,omitempty" binding:"omitempty,oneof=standard deluxe presidential"`
	BaseNightlyCents    *int64                `json:"base_nightly_cents,omitempty" binding:"omitempty,min=0"`
	FirstHourCents      *int64                `json:"first_hour_cents,omitempty" binding:"omitempty,min=0"`
	AdditionalHourCents *int64                `json:"additional_hour_cents,omitempty" binding:"omitempty,min=0"`
	SeasonalRates       []SeasonalRateRequest `json:"seasonal_rates,omitempty" binding:"omitempty,dive"`
}

func (r UpdateRoomRequest) ToCommand() (commands.UpdateRoomCommand, error) {
	rates, err := toSeasonalRateCommands(r.SeasonalRates)
	if err != nil {
		return commands.UpdateRoomCommand{}, err
	}
	return commands.UpdateRoomCommand{
		Floor:               r.Floor,
		RoomType:            r.RoomType,
		BaseNightlyCents:    r.BaseNightlyCents,
		FirstHourCents:      r.FirstHourCents,
		AdditionalHourCents: r.AdditionalHourCents,
		SeasonalRates:       rates,
	}, nil
}

type RoomStatusRequest struct {
	Operation string `json:"operation" binding:"required,oneof=start_cleaning finish_cleaning mark_maintenance"`
}

type AvailabilityQuery struct {
	CheckIn       string  `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut      string  `form:"check_out" binding:"required,datetime=2006-01-02"`
	RoomType      *string `form:"room_type" binding:"omitempty,oneof=standard deluxe presidential"`
	Floor         *int    `form:"floor" binding:"omitempty,min=1"`
	MinPriceCents *int64  `form:"min_price_cents" binding:"omitempty,min=0"`
	MaxPriceCents *int64  `form:"max_price_cents" binding:"omitempty,min=0"`
}

func (q AvailabilityQuery) Window() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func (q AvailabilityQuery) Filters() queries.RoomSearchFilters {
	return queries.RoomSearchFilters{
		RoomType:      q.RoomType,
		Floor:         q.Floor,
		MinPriceCents: q.MinPriceCents,
		MaxPriceCents: q.MaxPriceCents,
	}
}

func toSeasonalRateCommands(reqs []SeasonalRateRequest) ([]commands.SeasonalRateCommand, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	rates := make([]commands.SeasonalRateCommand, len(reqs))
	for i, req := range reqs {
		from, err := time.Parse(dateLayout, req.From)
		if err != nil {
			return nil, err
		}
		to, err := time.Parse(dateLayout, req.To)
		if err != nil {
			return nil, err
		}
		rates[i] = commands.SeasonalRateCommand{From: from, To: to, Multiplier: req.Multiplier}
	}
	return rates, nil
}
