//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-back-office/internal/domain/user"
	"hotel-back-office/internal/handler/api"
	resdto "hotel-back-office/internal/handler/dto/response"
	"hotel-back-office/internal/usecase/commands"
	"hotel-back-office/internal/usecase/queries"
	"hotel-back-office/tests/common/builder"
	"hotel-back-office/tests/common/httptest"
	"hotel-back-office/tests/common/testutil"
	commandsmock "hotel-back-office/tests/mock/commands"
	queriesmock "hotel-back-office/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler

	actorID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/bookings/:id/orders", authMiddleware, s.handler.CreateOrder)
	s.router.GET("/bookings/:id/orders", authMiddleware, s.handler.ListBookingOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.PATCH("/orders/:id/status", authMiddleware, s.handler.UpdateOrderStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/orders"
	reqBody := builder.NewOrderBuilder().WithBookingID(bookingID).BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the order id", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), s.actorID).
			Return(orderID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(orderID.String(), body["id"])
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/orders", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []bookingTestCase{
			{name: "missing items", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
			{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
			{name: "zero quantity", mutate: testutil.Field("items", []map[string]any{
				{"service_id": uuid.New().String(), "quantity": 0},
			}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "booking not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
			{name: "booking not orderable", err: commands.ErrBookingNotOrderable, expectCode: http.StatusUnprocessableEntity},
			{name: "service unavailable", err: commands.ErrServiceUnavailable, expectCode: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), s.actorID).
					Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	view := builder.NewOrderBuilder().BuildViewQuery()

	s.Run("success: returns 200 OK with items and total", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.BookingID, body.BookingID)
		s.Equal("pending", body.Status)
		s.Len(body.Items, 1)
		s.Equal(view.TotalCents, body.TotalCents)
	})

	s.Run("error: 400 on malformed order ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the order does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrOrderNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestListBookingOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListBookingOrders() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/orders"

	s.Run("success: returns 200 OK with all orders of the booking", func() {
		views := []*queries.OrderView{
			builder.NewOrderBuilder().WithBookingID(bookingID).BuildViewQuery(),
			builder.NewOrderBuilder().WithBookingID(bookingID).WithQuantity(1).BuildViewQuery(),
		}
		s.mockQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(bookingID, body[0].BookingID)
	})

	s.Run("success: returns empty list when the booking has no orders", func() {
		s.mockQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

// ================================================================================
// TestUpdateOrderStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateOrderStatus() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, "in_progress").
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "in_progress"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "shipped"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the order does not exist", func() {
		s.mockCommands.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, "completed").
			Return(commands.ErrOrderNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "completed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 422 on invalid lifecycle transition", func() {
		s.mockCommands.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, "cancelled").
			Return(commands.ErrOrderTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
