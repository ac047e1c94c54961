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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID uuid.UUID
	role    user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.role = user.RoleCustomer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.role)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/bookings/:id/check-out", authMiddleware, s.handler.CheckOut)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/no-show", authMiddleware, s.handler.MarkNoShow)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type bookingTestCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	expectedResult := &commands.CreateBookingResult{
		BookingID:     uuid.New(),
		BookingNumber: "BK-20260115-7KQ2ZD",
		TotalCents:    2_000_000,
	}

	s.Run("success: returns 201 Created with booking number", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actorID).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.BookingID, body.BookingID)
		s.Equal(expectedResult.BookingNumber, body.BookingNumber)
		s.Equal(expectedResult.TotalCents, body.TotalCents)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []bookingTestCase{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "malformed check_in date", mutate: testutil.Field("check_in", "15-01-2026"), expectCode: http.StatusBadRequest},
			{name: "adults below minimum", mutate: testutil.Field("adults", 0), expectCode: http.StatusBadRequest},
			{name: "adults above maximum", mutate: testutil.Field("adults", 11), expectCode: http.StatusBadRequest},
			{name: "children above maximum", mutate: testutil.Field("children", 6), expectCode: http.StatusBadRequest},
			{name: "unknown payment method", mutate: testutil.Field("payment_method", "crypto"), expectCode: http.StatusBadRequest},
			{name: "initial status cannot be checked_in", mutate: testutil.Field("initial_status", "checked_in"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: usecase failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "room not found", err: commands.ErrRoomNotFound, expectCode: http.StatusNotFound},
			{name: "room unavailable", err: commands.ErrRoomUnavailable, expectCode: http.StatusConflict},
			{name: "overlapping stay", err: commands.ErrBookingConflict, expectCode: http.StatusConflict},
			{name: "domain validation", err: commands.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success: returns 200 OK with booking view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.role).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.BookingNumber, body.BookingNumber)
		s.Equal(view.RoomNumber, body.RoomNumber)
		s.Equal(view.TotalAmountCents, body.TotalAmountCents)
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 when the booking belongs to another customer", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actorID, s.role).
			Return(nil, queries.ErrBookingAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actorID, s.role).
			Return(nil, queries.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestListMyBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: returns 200 OK with own bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.actorID).
			Return(items, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	id := uuid.New()
	s.role = user.RoleReception

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id, s.actorID, user.RoleReception).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when the booking is not pending", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id, s.actorID, user.RoleReception).
			Return(commands.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *BookingHandlerTestSuite) TestCheckIn() {
	id := uuid.New()
	s.role = user.RoleReception
	url := "/bookings/" + id.String() + "/check-in"

	reqBody := map[string]any{"room_key": "KEY-301", "extra_guests": []string{"Guest Two"}}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any(), s.actorID, user.RoleReception).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 without room key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the booking is not confirmed", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, gomock.Any(), s.actorID, user.RoleReception).
			Return(commands.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *BookingHandlerTestSuite) TestCheckOut() {
	id := uuid.New()
	s.role = user.RoleReception
	url := "/bookings/" + id.String() + "/check-out"

	reqBody := map[string]any{"condition": "good"}
	expectedResult := &commands.CheckOutResult{BookingID: id, TotalCents: 1_000_000}

	s.Run("success: returns 200 OK with the recomputed total", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any(), s.actorID, user.RoleReception).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.BookingID)
		s.Equal(int64(1_000_000), body.TotalCents)
	})

	s.Run("error: 400 on unknown condition", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"condition": "pristine"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the guest is not checked in", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, gomock.Any(), s.actorID, user.RoleReception).
			Return(nil, commands.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204 without a body", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.actorID, s.role, gomock.Nil()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: passes the reason through", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.actorID, s.role, gomock.Not(gomock.Nil())).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "plans changed"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when the cancellation window has closed", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.actorID, s.role, gomock.Nil()).
			Return(commands.ErrCancellationClosed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 403 when the booking belongs to another customer", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.actorID, s.role, gomock.Nil()).
			Return(commands.ErrNotBookingOwner).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestMarkNoShow() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/no-show"

	s.Run("success: returns 204 for staff", func() {
		s.role = user.RoleReception
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id, s.actorID, user.RoleReception, gomock.Nil()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for customers", func() {
		s.role = user.RoleCustomer
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id, s.actorID, user.RoleCustomer, gomock.Nil()).
			Return(commands.ErrStaffOnly).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()
	s.role = user.RoleAdmin
	url := "/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, s.actorID, user.RoleAdmin).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 while the guest is in the room", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, s.actorID, user.RoleAdmin).
			Return(commands.ErrBookingUndeletable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, s.actorID, user.RoleAdmin).
			Return(commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
