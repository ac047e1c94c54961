package booking

import (
	"errors"
	"time"

	"hotel-back-office/internal/domain/room"

	"github.com/google/uuid"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// StayWindow is a half-open [checkIn, checkOut) range of calendar dates.
// checkIn == checkOut is a valid same-day (hourly) stay.
type StayWindow struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if out.Before(in) {
		return StayWindow{}, ErrInvalidStayWindow
	}
	return StayWindow{checkIn: in, checkOut: out}, nil
}

func (w StayWindow) CheckIn() time.Time {
	return w.checkIn
}

func (w StayWindow) CheckOut() time.Time {
	return w.checkOut
}

// Nights is the calendar-day difference; zero for a same-day stay.
func (w StayWindow) Nights() int {
	return int(w.checkOut.Sub(w.checkIn).Hours() / 24)
}

func (w StayWindow) IsSameDay() bool {
	return w.checkIn.Equal(w.checkOut)
}

// Overlaps uses half-open semantics, so back-to-back stays touch without
// conflicting, and an empty same-day window overlaps nothing.
func (w StayWindow) Overlaps(other StayWindow) bool {
	return other.checkIn.Before(w.checkOut) && other.checkOut.After(w.checkIn)
}

// CheckInDeadline is the instant a guest is expected to arrive, used for the
// customer cancellation cutoff.
func (w StayWindow) CheckInDeadline() time.Time {
	return w.checkIn.Add(time.Duration(DefaultCheckInHour) * time.Hour)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type GuestCount struct {
	adults   int
	children int
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < 1 || adults > 10 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	if children < 0 || children > 5 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{adults: adults, children: children}, nil
}

func (g GuestCount) Adults() int   { return g.adults }
func (g GuestCount) Children() int { return g.children }
func (g GuestCount) Total() int    { return g.adults + g.children }

type Payment struct {
	method        PaymentMethod
	status        PaymentStatus
	amount        Money
	paidAt        *time.Time
	transactionID *string
}

func NewPayment(method PaymentMethod, amount Money) Payment {
	return Payment{
		method: method,
		status: PaymentStatusPending,
		amount: amount,
	}
}

func ReconstructPayment(method PaymentMethod, status PaymentStatus, amount Money, paidAt *time.Time, transactionID *string) Payment {
	return Payment{
		method:        method,
		status:        status,
		amount:        amount,
		paidAt:        paidAt,
		transactionID: transactionID,
	}
}

func (p Payment) Method() PaymentMethod  { return p.method }
func (p Payment) Status() PaymentStatus  { return p.status }
func (p Payment) Amount() Money          { return p.amount }
func (p Payment) PaidAt() *time.Time     { return p.paidAt }
func (p Payment) TransactionID() *string { return p.transactionID }

type HistoryEntry struct {
	Status    Status
	ChangedAt time.Time
	ActorID   uuid.UUID
	Reason    *string
}

type ExtraGuest struct {
	Name string
}

type CheckInRecord struct {
	At          time.Time
	StaffID     uuid.UUID
	RoomKey     string
	ExtraGuests []ExtraGuest
	CustomTime  *time.Time
}

type Damage struct {
	Description string
	CostCents   int64
}

type CheckOutRecord struct {
	At         time.Time
	StaffID    uuid.UUID
	Condition  room.Condition
	Damages    []Damage
	CustomTime *time.Time
}
