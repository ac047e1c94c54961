//go:build unit || e2e

package builder

import (
	"time"

	"hotel-back-office/internal/domain/booking"
	"hotel-back-office/internal/domain/room"
	reqdto "hotel-back-office/internal/handler/dto/request"
	"hotel-back-office/internal/pkg/clock"
	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID    uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	PaymentMethod string
	InitialStatus string
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	Rates         room.RateCard
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		CustomerID:    uuid.New(),
		RoomID:        uuid.New(),
		RoomNumber:    "301",
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 2),
		Adults:        2,
		Children:      0,
		PaymentMethod: "card",
		InitialStatus: "pending",
		Rates:         NewRoomBuilder().BuildRates(),
		Now:           checkIn.AddDate(0, 0, -7),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayWindow(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}

	guests, err := booking.NewGuestCount(b.Adults, b.Children)
	if err != nil {
		return nil, err
	}

	method, err := booking.NewPaymentMethod(b.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := booking.NewStatus(b.InitialStatus)
	if err != nil {
		return nil, err
	}

	factory := booking.NewFactory(clock.NewMockClock(b.Now))
	return factory.CreateBooking(
		booking.RoomSpec{ID: b.RoomID, Rates: b.Rates},
		b.CustomerID, stay, guests, method, status,
		b.CheckInTime, b.CheckOutTime,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn.Format("2006-01-02"),
		CheckOut:      b.CheckOut.Format("2006-01-02"),
		Adults:        b.Adults,
		Children:      b.Children,
		PaymentMethod: b.PaymentMethod,
		InitialStatus: b.InitialStatus,
		CheckInTime:   b.CheckInTime,
		CheckOutTime:  b.CheckOutTime,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:                 uuid.New(),
		BookingNumber:      "BK-20260115-TEST01",
		CustomerID:         b.CustomerID,
		RoomID:             b.RoomID,
		RoomNumber:         b.RoomNumber,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Adults:             b.Adults,
		Children:           b.Children,
		Status:             b.InitialStatus,
		PaymentMethod:      b.PaymentMethod,
		PaymentStatus:      "pending",
		PaymentAmountCents: 2_000_000,
		RoomPriceCents:     2_000_000,
		TotalAmountCents:   2_000_000,
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:               uuid.New(),
		BookingNumber:    "BK-20260115-TEST01",
		RoomID:           b.RoomID,
		RoomNumber:       b.RoomNumber,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Status:           b.InitialStatus,
		TotalAmountCents: 2_000_000,
		CreatedAt:        b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) AsSameDay(day time.Time) *BookingBuilder {
	b.CheckIn = day
	b.CheckOut = day
	return b
}

func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *BookingBuilder) WithPaymentMethod(method string) *BookingBuilder {
	b.PaymentMethod = method
	return b
}

func (b *BookingBuilder) WithInitialStatus(status string) *BookingBuilder {
	b.InitialStatus = status
	return b
}

func (b *BookingBuilder) WithCheckInTime(t time.Time) *BookingBuilder {
	b.CheckInTime = &t
	return b
}

func (b *BookingBuilder) WithCheckOutTime(t time.Time) *BookingBuilder {
	b.CheckOutTime = &t
	return b
}

func (b *BookingBuilder) WithRates(rates room.RateCard) *BookingBuilder {
	b.Rates = rates
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
