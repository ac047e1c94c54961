//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-back-office/internal/domain/booking"
	"hotel-back-office/internal/domain/room"
	"hotel-back-office/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, b.CustomerID, actual.CustomerID())
		assert.Equal(t, b.RoomID, actual.RoomID())

		// 2 nights at 1,000,000 per night
		assert.Equal(t, int64(2_000_000), actual.RoomPrice().Cents())
		assert.Equal(t, int64(2_000_000), actual.TotalAmount().Cents())
		assert.Equal(t, int64(2_000_000), actual.Payment().Amount().Cents())
		assert.Equal(t, booking.PaymentStatusPending, actual.Payment().Status())

		require.Len(t, actual.History(), 1)
		assert.Equal(t, booking.StatusPending, actual.History()[0].Status)
		assert.Equal(t, b.CustomerID, actual.History()[0].ActorID)
	})

	t.Run("予約番号はBK-日付-英数6桁", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Regexp(t, `^BK-\d{8}-[A-Z0-9]{6}$`, actual.BookingNumber())
	})

	t.Run("初期ステータスはpendingかconfirmedのみ", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, actual.Status())

		_, err = builder.NewBookingBuilder().WithInitialStatus("checked_in").BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidInitialStatus)
	})

	t.Run("ゲスト数の検証", func(t *testing.T) {
		_, err := booking.NewGuestCount(0, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)

		_, err = booking.NewGuestCount(11, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)

		_, err = booking.NewGuestCount(2, 6)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)

		_, err = booking.NewGuestCount(1, 0)
		assert.NoError(t, err)
	})

	t.Run("滞在窓の検証", func(t *testing.T) {
		day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

		_, err := booking.NewStayWindow(day, day.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayWindow)

		sameDay, err := booking.NewStayWindow(day, day)
		require.NoError(t, err)
		assert.True(t, sameDay.IsSameDay())
		assert.Equal(t, 0, sameDay.Nights())
	})
}

func TestStayWindowOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}
	window := func(in, out int) booking.StayWindow {
		w, err := booking.NewStayWindow(day(in), day(out))
		require.NoError(t, err)
		return w
	}

	tests := []struct {
		name string
		a, b booking.StayWindow
		want bool
	}{
		{name: "完全一致は重複", a: window(10, 12), b: window(10, 12), want: true},
		{name: "部分重複", a: window(10, 12), b: window(11, 14), want: true},
		{name: "包含", a: window(10, 15), b: window(11, 12), want: true},
		{name: "チェックアウト日のチェックインは重複しない", a: window(10, 12), b: window(12, 14), want: false},
		{name: "離れた期間は重複しない", a: window(10, 12), b: window(13, 15), want: false},
		{name: "同日滞在は空区間なので重複しない", a: window(10, 12), b: window(11, 11), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestBookingLifecycle(t *testing.T) {
	staffID := uuid.New()
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)

	confirmed := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)
		return b
	}

	checkedIn := func(t *testing.T) *booking.Booking {
		t.Helper()
		b := confirmed(t)
		require.NoError(t, b.CheckIn(staffID, "KEY-301", nil, nil, now))
		return b
	}

	t.Run("確定", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Confirm(staffID, now))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Len(t, b.History(), 2)

		assert.ErrorIs(t, b.Confirm(staffID, now), booking.ErrInvalidTransition)
	})

	t.Run("チェックインは確定済みのみ", func(t *testing.T) {
		pending, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, pending.CheckIn(staffID, "KEY-301", nil, nil, now), booking.ErrNotConfirmed)

		b := confirmed(t)
		assert.ErrorIs(t, b.CheckIn(staffID, "", nil, nil, now), booking.ErrEmptyRoomKey)

		extra := []booking.ExtraGuest{{Name: "山田太郎"}}
		require.NoError(t, b.CheckIn(staffID, "KEY-301", extra, nil, now))
		assert.Equal(t, booking.StatusCheckedIn, b.Status())

		rec := b.CheckInRecord()
		require.NotNil(t, rec)
		assert.Equal(t, now, rec.At)
		assert.Equal(t, staffID, rec.StaffID)
		assert.Equal(t, "KEY-301", rec.RoomKey)
		assert.Equal(t, extra, rec.ExtraGuests)
		assert.Nil(t, rec.CustomTime)
	})

	t.Run("カスタム時刻のチェックイン", func(t *testing.T) {
		b := confirmed(t)
		custom := now.Add(-2 * time.Hour)

		require.NoError(t, b.CheckIn(staffID, "KEY-301", nil, &custom, now))
		require.NotNil(t, b.CheckInRecord())
		assert.Equal(t, custom, b.CheckInRecord().At)
		require.NotNil(t, b.CheckInRecord().CustomTime)
	})

	t.Run("チェックアウトは実績で金額を再計算", func(t *testing.T) {
		b := checkedIn(t)
		rates := builder.NewRoomBuilder().BuildRates()

		// actual stay spans two calendar days → 1 night
		out := now.AddDate(0, 0, 1).Add(-2 * time.Hour)
		require.NoError(t, b.CheckOut(rates, staffID, room.ConditionGood, nil, &out, out))

		assert.Equal(t, booking.StatusCheckedOut, b.Status())
		assert.Equal(t, int64(1_000_000), b.TotalAmount().Cents())
		assert.Equal(t, int64(1_000_000), b.Payment().Amount().Cents())

		rec := b.CheckOutRecord()
		require.NotNil(t, rec)
		assert.Equal(t, room.ConditionGood, rec.Condition)
	})

	t.Run("チェックアウトの再計算はサービス料を上書きする", func(t *testing.T) {
		b := checkedIn(t)
		require.NoError(t, b.ApplyServiceCharge(booking.MustMoney(90_000)))
		assert.Equal(t, int64(2_090_000), b.TotalAmount().Cents())

		rates := builder.NewRoomBuilder().BuildRates()
		out := now.AddDate(0, 0, 1)
		require.NoError(t, b.CheckOut(rates, staffID, room.ConditionGood, nil, &out, out))

		// recomputed from actual occupancy only; the service charge is gone
		assert.Equal(t, int64(1_000_000), b.TotalAmount().Cents())
	})

	t.Run("チェックイン前のチェックアウトは拒否", func(t *testing.T) {
		b := checkedIn(t)
		rates := builder.NewRoomBuilder().BuildRates()
		before := now.Add(-1 * time.Hour)

		err := b.CheckOut(rates, staffID, room.ConditionGood, nil, &before, now)
		assert.ErrorIs(t, err, booking.ErrCheckOutBeforeCheckIn)
	})

	t.Run("チェックアウトは滞在中のみ", func(t *testing.T) {
		b := confirmed(t)
		rates := builder.NewRoomBuilder().BuildRates()

		err := b.CheckOut(rates, staffID, room.ConditionGood, nil, nil, now)
		assert.ErrorIs(t, err, booking.ErrNotCheckedIn)
	})

	t.Run("損傷記録付きチェックアウト", func(t *testing.T) {
		b := checkedIn(t)
		rates := builder.NewRoomBuilder().BuildRates()
		damages := []booking.Damage{{Description: "broken lamp", CostCents: 150_000}}

		out := now.Add(3 * time.Hour)
		require.NoError(t, b.CheckOut(rates, staffID, room.ConditionDamaged, damages, &out, out))
		require.NotNil(t, b.CheckOutRecord())
		assert.Equal(t, damages, b.CheckOutRecord().Damages)
	})
}

func TestBookingCancellation(t *testing.T) {
	customerID := uuid.New()
	staffID := uuid.New()
	reason := "plans changed"

	// check-in 2026-01-15, deadline = 13:00 on that day
	deadline := time.Date(2026, 1, 15, 13, 0, 0, 0, time.UTC)

	t.Run("キャンセル可否", func(t *testing.T) {
		tests := []struct {
			name   string
			status string
			now    time.Time
			want   bool
		}{
			{name: "pendingは常に可", status: "pending", now: deadline.Add(-1 * time.Hour), want: true},
			{name: "confirmedは24時間より前なら可", status: "confirmed", now: deadline.Add(-25 * time.Hour), want: true},
			{name: "confirmedの10時間前は不可", status: "confirmed", now: deadline.Add(-10 * time.Hour), want: false},
			{name: "confirmedのちょうど24時間前は不可", status: "confirmed", now: deadline.Add(-24 * time.Hour), want: false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b, err := builder.NewBookingBuilder().WithInitialStatus(tt.status).BuildDomain()
				require.NoError(t, err)

				assert.Equal(t, tt.want, b.CanCancel(tt.now))
			})
		}
	})

	t.Run("顧客キャンセルは期限切れを拒否", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)

		err = b.CancelByCustomer(customerID, &reason, deadline.Add(-10*time.Hour))
		assert.ErrorIs(t, err, booking.ErrCancellationClosed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("スタッフキャンセルは期限を無視", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)

		now := deadline.Add(-10 * time.Hour)
		require.NoError(t, b.CancelByStaff(staffID, &reason, now))
		assert.Equal(t, booking.StatusCancelled, b.Status())

		last := b.History()[len(b.History())-1]
		assert.Equal(t, booking.StatusCancelled, last.Status)
		assert.Equal(t, staffID, last.ActorID)
		require.NotNil(t, last.Reason)
		assert.Equal(t, reason, *last.Reason)
	})

	t.Run("ノーショーは全ての非終端状態から可能", func(t *testing.T) {
		now := deadline.Add(2 * time.Hour)

		b, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.MarkNoShow(staffID, nil, now))
		assert.Equal(t, booking.StatusNoShow, b.Status())

		p, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, p.MarkNoShow(staffID, nil, now))
		assert.Equal(t, booking.StatusNoShow, p.Status())

		in, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)
		require.NoError(t, in.CheckIn(staffID, "KEY-301", nil, nil, now))
		require.NoError(t, in.MarkNoShow(staffID, nil, now))
		assert.Equal(t, booking.StatusNoShow, in.Status())

		last := in.History()[len(in.History())-1]
		assert.Equal(t, booking.StatusNoShow, last.Status)
		assert.Equal(t, staffID, last.ActorID)
	})

	t.Run("終端状態からの遷移は全て拒否", func(t *testing.T) {
		now := deadline
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.CancelByStaff(staffID, nil, now))

		assert.ErrorIs(t, b.Confirm(staffID, now), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.CancelByStaff(staffID, nil, now), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.MarkNoShow(staffID, nil, now), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.CheckIn(staffID, "KEY-301", nil, nil, now), booking.ErrNotConfirmed)
	})

	t.Run("削除可否は滞在中のみ不可", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)
		assert.True(t, b.CanDelete())

		require.NoError(t, b.CheckIn(staffID, "KEY-301", nil, nil, deadline))
		assert.False(t, b.CanDelete())
	})

	t.Run("サービス料はconfirmedかchecked_inのみ", func(t *testing.T) {
		pending, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, pending.ApplyServiceCharge(booking.MustMoney(1000)), booking.ErrNotChargeable)

		b, err := builder.NewBookingBuilder().WithInitialStatus("confirmed").BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.ApplyServiceCharge(booking.MustMoney(90_000)))
		assert.Equal(t, int64(2_090_000), b.TotalAmount().Cents())
		assert.Equal(t, int64(2_090_000), b.Payment().Amount().Cents())
	})
}
