//go:build unit

package order_test

import (
	"testing"

	"hotel-back-office/internal/domain/order"
	"hotel-back-office/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceOrder(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.BookingID, actual.BookingID())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Equal(t, b.RequestedAt, actual.RequestedAt())

		require.Len(t, actual.Items(), 1)
		item := actual.Items()[0]
		assert.Equal(t, b.ServiceID, item.ServiceID)
		assert.Equal(t, "Room Service Breakfast", item.ServiceName)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, int64(45_000), item.UnitPriceCents)

		// 2 × 45,000
		assert.Equal(t, int64(90_000), actual.TotalCents())
	})

	t.Run("明細検証", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.OrderBuilder)
			errIs  error
		}{
			{
				name:   "数量が上限ちょうどはOK",
				mutate: func(b *builder.OrderBuilder) { b.WithQuantity(10) },
			},
			{
				name:   "数量ゼロはNG",
				mutate: func(b *builder.OrderBuilder) { b.WithQuantity(0) },
				errIs:  order.ErrQuantityOutOfRange,
			},
			{
				name:   "上限超過はNG",
				mutate: func(b *builder.OrderBuilder) { b.WithQuantity(11) },
				errIs:  order.ErrQuantityOutOfRange,
			},
			{
				name:   "停止中のサービスはNG",
				mutate: func(b *builder.OrderBuilder) { b.AsInactiveService() },
				errIs:  order.ErrServiceInactive,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				actual, err := builder.NewOrderBuilder().With(tt.mutate).BuildDomain()

				if tt.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, tt.errIs)
				}
			})
		}
	})

	t.Run("明細なしはNG", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		_, err := order.NewServiceOrder(b.BookingID, nil, b.BuildCatalog(), b.RequestedAt)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("カタログにないサービスはNG", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		_, err := order.NewServiceOrder(
			b.BookingID,
			[]order.ItemRequest{{ServiceID: uuid.New(), Quantity: 1}},
			b.BuildCatalog(),
			b.RequestedAt,
		)
		assert.ErrorIs(t, err, order.ErrServiceInactive)
	})

	t.Run("複数明細の合計", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		spaID := uuid.New()
		catalog := b.BuildCatalog()
		catalog[spaID] = order.ServiceSpec{
			ID: spaID, Name: "Spa Session", PriceCents: 120_000, MaxQuantity: 4, IsActive: true,
		}

		actual, err := order.NewServiceOrder(
			b.BookingID,
			[]order.ItemRequest{
				{ServiceID: b.ServiceID, Quantity: 2},
				{ServiceID: spaID, Quantity: 1},
			},
			catalog,
			b.RequestedAt,
		)
		require.NoError(t, err)
		assert.Equal(t, int64(210_000), actual.TotalCents())
		assert.Len(t, actual.Items(), 2)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from order.Status
		to   order.Status
		ok   bool
	}{
		{name: "pending→confirmed", from: order.StatusPending, to: order.StatusConfirmed, ok: true},
		{name: "pending→cancelled", from: order.StatusPending, to: order.StatusCancelled, ok: true},
		{name: "pending→in_progressは飛ばせない", from: order.StatusPending, to: order.StatusInProgress, ok: false},
		{name: "confirmed→in_progress", from: order.StatusConfirmed, to: order.StatusInProgress, ok: true},
		{name: "confirmed→cancelled", from: order.StatusConfirmed, to: order.StatusCancelled, ok: true},
		{name: "in_progress→completed", from: order.StatusInProgress, to: order.StatusCompleted, ok: true},
		{name: "着手後のキャンセルは不可", from: order.StatusInProgress, to: order.StatusCancelled, ok: false},
		{name: "completedから先はない", from: order.StatusCompleted, to: order.StatusCancelled, ok: false},
		{name: "cancelledから先はない", from: order.StatusCancelled, to: order.StatusConfirmed, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}

	t.Run("TransitionToは状態を進める", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(order.StatusConfirmed))
		require.NoError(t, o.TransitionTo(order.StatusInProgress))
		require.NoError(t, o.TransitionTo(order.StatusCompleted))
		assert.Equal(t, order.StatusCompleted, o.Status())

		assert.ErrorIs(t, o.TransitionTo(order.StatusCancelled), order.ErrInvalidTransition)
		assert.ErrorIs(t, o.TransitionTo("unknown"), order.ErrInvalidStatus)
	})
}
