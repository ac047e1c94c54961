package booking

import (
	"time"

	"hotel-back-office/internal/domain/room"
)

// Default arrival and departure times used when the caller supplies none.
const (
	DefaultCheckInHour  = 13
	DefaultCheckOutHour = 12
)

// Quote computes the contracted price for a stay: nightly for multi-day
// windows, hourly for same-day ones. Pure function of its inputs.
func Quote(rates room.RateCard, stay StayWindow, checkInTime, checkOutTime *time.Time) Money {
	nights := stay.Nights()
	if nights > 0 {
		return Money{cents: rates.NightlyCentsAt(stay.CheckIn()) * int64(nights)}
	}

	in := stay.CheckIn().Add(time.Duration(DefaultCheckInHour) * time.Hour)
	if checkInTime != nil {
		in = *checkInTime
	}
	out := stay.CheckOut().Add(time.Duration(DefaultCheckOutHour) * time.Hour)
	if checkOutTime != nil {
		out = *checkOutTime
	}

	return hourlyPrice(rates, ceilHours(out.Sub(in)))
}

// RecomputeActual re-derives the price from the recorded check-in/check-out
// instants. Same-calendar-day stays bill hourly on actual elapsed time;
// multi-day stays bill nightly on actual elapsed days. The result overwrites
// the booking's total and payment amount at check-out.
func RecomputeActual(rates room.RateCard, actualIn, actualOut time.Time) Money {
	elapsed := actualOut.Sub(actualIn)

	if sameCalendarDay(actualIn, actualOut) {
		return hourlyPrice(rates, ceilHours(elapsed))
	}

	nights := ceilDays(elapsed)
	return Money{cents: rates.NightlyCentsAt(actualIn) * nights}
}

func hourlyPrice(rates room.RateCard, hours int64) Money {
	cents := rates.FirstHourCents()
	if hours > 1 {
		cents += rates.AdditionalHourCents() * (hours - 1)
	}
	return Money{cents: cents}
}

// ceilHours rounds the duration up to whole hours with a one-hour minimum.
func ceilHours(d time.Duration) int64 {
	if d <= time.Hour {
		return 1
	}
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// ceilDays rounds the duration up to whole days with a one-day minimum.
func ceilDays(d time.Duration) int64 {
	day := 24 * time.Hour
	if d <= day {
		return 1
	}
	days := int64(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
