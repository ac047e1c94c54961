package room

import (
	"errors"
	"strings"
	"time"
)

type RoomNumber struct {
	value string
}

func NewRoomNumber(s string) (RoomNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RoomNumber{}, errors.New("room number cannot be empty")
	}
	return RoomNumber{value: s}, nil
}

func (n RoomNumber) Value() string {
	return n.value
}

// SeasonalRate is a multiplier applied to the nightly base during [From, To).
type SeasonalRate struct {
	From       time.Time
	To         time.Time
	Multiplier float64
}

func (r SeasonalRate) Contains(date time.Time) bool {
	return !date.Before(r.From) && date.Before(r.To)
}

// RateCard holds a room's static pricing: nightly base for multi-night stays
// and a first-hour/additional-hour pair for same-day hourly billing.
type RateCard struct {
	baseNightlyCents    int64
	firstHourCents      int64
	additionalHourCents int64
	seasons             []SeasonalRate
}

func NewRateCard(baseNightlyCents, firstHourCents, additionalHourCents int64, seasons []SeasonalRate) (RateCard, error) {
	if baseNightlyCents < 0 || firstHourCents < 0 || additionalHourCents < 0 {
		return RateCard{}, ErrNegativeRate
	}
	for _, s := range seasons {
		if !s.From.Before(s.To) {
			return RateCard{}, ErrInvalidSeasonWindow
		}
		if s.Multiplier <= 0 {
			return RateCard{}, ErrInvalidSeasonWindow
		}
	}
	return RateCard{
		baseNightlyCents:    baseNightlyCents,
		firstHourCents:      firstHourCents,
		additionalHourCents: additionalHourCents,
		seasons:             seasons,
	}, nil
}

func (r RateCard) BaseNightlyCents() int64    { return r.baseNightlyCents }
func (r RateCard) FirstHourCents() int64      { return r.firstHourCents }
func (r RateCard) AdditionalHourCents() int64 { return r.additionalHourCents }
func (r RateCard) Seasons() []SeasonalRate    { return r.seasons }

// NightlyCentsAt returns the nightly rate effective on the given date. The
// first matching seasonal window wins.
func (r RateCard) NightlyCentsAt(date time.Time) int64 {
	for _, s := range r.seasons {
		if s.Contains(date) {
			return int64(float64(r.baseNightlyCents) * s.Multiplier)
		}
	}
	return r.baseNightlyCents
}
