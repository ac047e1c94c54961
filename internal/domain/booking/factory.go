package booking

import (
	"crypto/rand"
	"time"

	"hotel-back-office/internal/domain/room"
	"hotel-back-office/internal/pkg/clock"

	"github.com/google/uuid"
)

// RoomSpec is the slice of the room aggregate the factory needs for quoting.
type RoomSpec struct {
	ID    uuid.UUID
	Rates room.RateCard
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking builds a new booking in pending or confirmed state, with the
// quoted price snapshotted into roomPrice, totalAmount, and the payment.
func (f *Factory) CreateBooking(
	roomSpec RoomSpec,
	customerID uuid.UUID,
	stay StayWindow,
	guests GuestCount,
	method PaymentMethod,
	initialStatus Status,
	checkInTime, checkOutTime *time.Time,
) (*Booking, error) {
	if initialStatus != StatusPending && initialStatus != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}

	price := Quote(roomSpec.Rates, stay, checkInTime, checkOutTime)
	now := f.Clock.Now()

	b := &Booking{
		id:            uuid.New(),
		bookingNumber: newBookingNumber(now),
		customerID:    customerID,
		roomID:        roomSpec.ID,
		stay:          stay,
		guests:        guests,
		status:        initialStatus,
		payment:       NewPayment(method, price),
		roomPrice:     price,
		totalAmount:   price,
	}
	b.appendHistory(initialStatus, now, customerID, nil)
	return b, nil
}

const bookingNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newBookingNumber yields an externally facing reference like BK-20260115-7KQ2ZD.
func newBookingNumber(now time.Time) string {
	suffix := make([]byte, 6)
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is effectively infallible; fall back to a time-derived suffix
		for i := range buf {
			buf[i] = byte(now.UnixNano() >> (i * 8))
		}
	}
	for i, v := range buf {
		suffix[i] = bookingNumberCharset[int(v)%len(bookingNumberCharset)]
	}
	return "BK-" + now.Format("20060102") + "-" + string(suffix)
}
