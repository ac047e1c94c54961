//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-back-office/internal/domain/booking"
	"hotel-back-office/internal/domain/room"
	"hotel-back-office/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRates(t *testing.T) room.RateCard {
	t.Helper()
	// nightly 1,000,000 / first hour 100,000 / additional hour 20,000
	return builder.NewRoomBuilder().BuildRates()
}

func TestQuote(t *testing.T) {
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("宿泊料金の見積もり", func(t *testing.T) {
		rates := defaultRates(t)

		tests := []struct {
			name   string
			nights int
			want   int64
		}{
			{name: "1泊", nights: 1, want: 1_000_000},
			{name: "2泊", nights: 2, want: 2_000_000},
			{name: "7泊", nights: 7, want: 7_000_000},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				stay, err := booking.NewStayWindow(day, day.AddDate(0, 0, tt.nights))
				require.NoError(t, err)

				got := booking.Quote(rates, stay, nil, nil)
				assert.Equal(t, tt.want, got.Cents())
			})
		}
	})

	t.Run("同日（時間貸し）の見積もり", func(t *testing.T) {
		rates := defaultRates(t)
		stay, err := booking.NewStayWindow(day, day)
		require.NoError(t, err)

		tests := []struct {
			name    string
			inHour  time.Duration
			outHour time.Duration
			want    int64
		}{
			{name: "13時から16時は3時間分", inHour: 13 * time.Hour, outHour: 16 * time.Hour, want: 140_000},
			{name: "45分は初時間のみ", inHour: 13 * time.Hour, outHour: 13*time.Hour + 45*time.Minute, want: 100_000},
			{name: "ちょうど1時間は初時間のみ", inHour: 13 * time.Hour, outHour: 14 * time.Hour, want: 100_000},
			{name: "4時間半は5時間に切り上げ", inHour: 13 * time.Hour, outHour: 17*time.Hour + 30*time.Minute, want: 180_000},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := day.Add(tt.inHour)
				out := day.Add(tt.outHour)

				got := booking.Quote(rates, stay, &in, &out)
				assert.Equal(t, tt.want, got.Cents())
			})
		}
	})

	t.Run("時刻未指定の同日は既定の13時-12時で1時間扱い", func(t *testing.T) {
		rates := defaultRates(t)
		stay, err := booking.NewStayWindow(day, day)
		require.NoError(t, err)

		got := booking.Quote(rates, stay, nil, nil)
		assert.Equal(t, int64(100_000), got.Cents())
	})

	t.Run("シーズン倍率は初日の日付で決まる", func(t *testing.T) {
		rates := builder.NewRoomBuilder().
			WithSeason(day.AddDate(0, 0, -1), day.AddDate(0, 0, 10), 1.5).
			BuildRates()

		stay, err := booking.NewStayWindow(day, day.AddDate(0, 0, 2))
		require.NoError(t, err)

		got := booking.Quote(rates, stay, nil, nil)
		assert.Equal(t, int64(3_000_000), got.Cents())
	})
}

func TestRecomputeActual(t *testing.T) {
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	rates := defaultRates(t)

	t.Run("同日の実績は時間貸しで再計算", func(t *testing.T) {
		in := day.Add(13 * time.Hour)
		out := day.Add(16*time.Hour + 30*time.Minute)

		// 3.5h → 4 hours → 100,000 + 3 * 20,000
		got := booking.RecomputeActual(rates, in, out)
		assert.Equal(t, int64(160_000), got.Cents())
	})

	t.Run("日をまたぐ実績は泊数で再計算", func(t *testing.T) {
		in := day.Add(13 * time.Hour)
		out := day.AddDate(0, 0, 2).Add(11 * time.Hour)

		// 46h → 2 days
		got := booking.RecomputeActual(rates, in, out)
		assert.Equal(t, int64(2_000_000), got.Cents())
	})

	t.Run("深夜をわずかに越えた滞在は1泊扱い", func(t *testing.T) {
		in := day.Add(23 * time.Hour)
		out := day.AddDate(0, 0, 1).Add(1 * time.Hour)

		got := booking.RecomputeActual(rates, in, out)
		assert.Equal(t, int64(1_000_000), got.Cents())
	})
}

func TestRateCardNightlyCentsAt(t *testing.T) {
	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("シーズン窓は半開区間", func(t *testing.T) {
		rates := builder.NewRoomBuilder().
			WithSeason(day, day.AddDate(0, 0, 31), 2.0).
			BuildRates()

		assert.Equal(t, int64(1_000_000), rates.NightlyCentsAt(day.AddDate(0, 0, -1)))
		assert.Equal(t, int64(2_000_000), rates.NightlyCentsAt(day))
		assert.Equal(t, int64(2_000_000), rates.NightlyCentsAt(day.AddDate(0, 0, 30)))
		assert.Equal(t, int64(1_000_000), rates.NightlyCentsAt(day.AddDate(0, 0, 31)))
	})

	t.Run("先に定義された窓が優先", func(t *testing.T) {
		rates := builder.NewRoomBuilder().
			WithSeason(day, day.AddDate(0, 0, 10), 1.5).
			WithSeason(day, day.AddDate(0, 0, 31), 2.0).
			BuildRates()

		assert.Equal(t, int64(1_500_000), rates.NightlyCentsAt(day))
	})

	t.Run("負のレートは拒否", func(t *testing.T) {
		_, err := room.NewRateCard(-1, 0, 0, nil)
		assert.ErrorIs(t, err, room.ErrNegativeRate)
	})

	t.Run("不正なシーズン窓は拒否", func(t *testing.T) {
		_, err := room.NewRateCard(1000, 100, 10, []room.SeasonalRate{
			{From: day, To: day, Multiplier: 1.5},
		})
		assert.ErrorIs(t, err, room.ErrInvalidSeasonWindow)

		_, err = room.NewRateCard(1000, 100, 10, []room.SeasonalRate{
			{From: day, To: day.AddDate(0, 0, 1), Multiplier: 0},
		})
		assert.ErrorIs(t, err, room.ErrInvalidSeasonWindow)
	})
}
