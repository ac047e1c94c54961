//go:build unit

package room_test

import (
	"testing"

	"hotel-back-office/internal/domain/room"
	"hotel-back-office/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomReservationFlow(t *testing.T) {
	bookingID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "301", actual.Number().Value())
		assert.Equal(t, room.StatusAvailable, actual.Status())
		assert.Equal(t, room.CleaningClean, actual.CleaningStatus())
		assert.Nil(t, actual.CurrentBookingID())
		assert.True(t, actual.ValidateBookingRef())
	})

	t.Run("予約から滞在までの一連の遷移", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Reserve(bookingID))
		assert.Equal(t, room.StatusReserved, r.Status())
		require.NotNil(t, r.CurrentBookingID())
		assert.Equal(t, bookingID, *r.CurrentBookingID())
		assert.True(t, r.ValidateBookingRef())

		require.NoError(t, r.Occupy(bookingID))
		assert.Equal(t, room.StatusOccupied, r.Status())
		assert.True(t, r.ValidateBookingRef())

		require.NoError(t, r.ReleaseAfterStay(room.ConditionGood))
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Nil(t, r.CurrentBookingID())
		assert.True(t, r.ValidateBookingRef())
	})

	t.Run("空室以外は予約できない", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Reserve(bookingID))

		assert.ErrorIs(t, r.Reserve(uuid.New()), room.ErrNotAvailable)
	})

	t.Run("別予約での入室は拒否", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Reserve(bookingID))

		assert.ErrorIs(t, r.Occupy(uuid.New()), room.ErrNotReservedForBooking)
	})

	t.Run("予約なしの入室は拒否", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, r.Occupy(bookingID), room.ErrNotReservedForBooking)
	})

	t.Run("滞在中でなければ退室処理できない", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, r.ReleaseAfterStay(room.ConditionGood), room.ErrNotOccupied)
	})
}

func TestReleaseAfterStayCondition(t *testing.T) {
	tests := []struct {
		name         string
		condition    room.Condition
		wantStatus   room.Status
		wantCleaning room.CleaningStatus
	}{
		{name: "良好なら即空室", condition: room.ConditionGood, wantStatus: room.StatusAvailable, wantCleaning: room.CleaningClean},
		{name: "要清掃", condition: room.ConditionNeedsCleaning, wantStatus: room.StatusNeedsCleaning, wantCleaning: room.CleaningDirty},
		{name: "要整備", condition: room.ConditionNeedsMaintenance, wantStatus: room.StatusMaintenance, wantCleaning: room.CleaningDirty},
		{name: "損傷は利用停止", condition: room.ConditionDamaged, wantStatus: room.StatusOutOfOrder, wantCleaning: room.CleaningDirty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingID := uuid.New()
			r, err := builder.NewRoomBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, r.Reserve(bookingID))
			require.NoError(t, r.Occupy(bookingID))

			require.NoError(t, r.ReleaseAfterStay(tt.condition))
			assert.Equal(t, tt.wantStatus, r.Status())
			assert.Equal(t, tt.wantCleaning, r.CleaningStatus())
			assert.Nil(t, r.CurrentBookingID())
		})
	}
}

func TestRoomHousekeeping(t *testing.T) {
	t.Run("清掃の開始と完了", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.StartCleaning())
		assert.Equal(t, room.StatusCleaning, r.Status())
		assert.Equal(t, room.CleaningInProgress, r.CleaningStatus())

		r.FinishCleaning()
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Equal(t, room.CleaningClean, r.CleaningStatus())
	})

	t.Run("予約中・滞在中は清掃も整備もできない", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Reserve(uuid.New()))

		assert.ErrorIs(t, r.StartCleaning(), room.ErrRoomInUse)
		assert.ErrorIs(t, r.MarkMaintenance(), room.ErrRoomInUse)
	})

	t.Run("整備指定", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.MarkMaintenance())
		assert.Equal(t, room.StatusMaintenance, r.Status())
		assert.Equal(t, room.CleaningMaintenanceRequired, r.CleaningStatus())
	})

	t.Run("解放は予約・滞在を空室に戻す", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Reserve(uuid.New()))

		r.Release()
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Nil(t, r.CurrentBookingID())

		// no-op on a room holding no booking
		r.Release()
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("削除可否は予約参照の有無", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, r.CanDelete())

		require.NoError(t, r.Reserve(uuid.New()))
		assert.False(t, r.CanDelete())
	})
}

func TestDeriveDisplayStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   room.Status
		cleaning room.CleaningStatus
		want     room.Status
	}{
		{name: "清掃済みの空室はそのまま", status: room.StatusAvailable, cleaning: room.CleaningClean, want: room.StatusAvailable},
		{name: "汚れた空室は要清掃に見せる", status: room.StatusAvailable, cleaning: room.CleaningDirty, want: room.StatusNeedsCleaning},
		{name: "清掃中の空室", status: room.StatusAvailable, cleaning: room.CleaningInProgress, want: room.StatusCleaning},
		{name: "整備待ちの空室", status: room.StatusAvailable, cleaning: room.CleaningMaintenanceRequired, want: room.StatusMaintenance},
		{name: "滞在中は清掃状態に関係なくそのまま", status: room.StatusOccupied, cleaning: room.CleaningDirty, want: room.StatusOccupied},
		{name: "予約中もそのまま", status: room.StatusReserved, cleaning: room.CleaningDirty, want: room.StatusReserved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, room.DeriveDisplayStatus(tt.status, tt.cleaning))
		})
	}
}

func TestRoomNumber(t *testing.T) {
	t.Run("空の部屋番号は拒否", func(t *testing.T) {
		_, err := room.NewRoomNumber("  ")
		assert.Error(t, err)
	})

	t.Run("前後の空白は除去", func(t *testing.T) {
		n, err := room.NewRoomNumber(" 301 ")
		require.NoError(t, err)
		assert.Equal(t, "301", n.Value())
	})
}
