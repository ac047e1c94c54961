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

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/rooms", authMiddleware, s.handler.CreateRoom)
	s.router.GET("/rooms", authMiddleware, s.handler.ListRooms)
	s.router.GET("/rooms/availability", authMiddleware, s.handler.SearchAvailable)
	s.router.GET("/rooms/:id", authMiddleware, s.handler.GetRoom)
	s.router.PATCH("/rooms/:id", authMiddleware, s.handler.UpdateRoom)
	s.router.DELETE("/rooms/:id", authMiddleware, s.handler.DeleteRoom)
	s.router.POST("/rooms/:id/status", authMiddleware, s.handler.SetRoomStatus)
	s.router.GET("/rooms/:id/availability", authMiddleware, s.handler.CheckAvailability)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestCreateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestCreateRoom() {
	url := "/rooms"

	reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()
	newID := uuid.New()

	s.Run("success: returns 201 Created with the room ID", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(newID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID.String(), body["id"])
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: room_number", mutate: testutil.Field("room_number", nil)},
			{name: "floor below minimum", mutate: testutil.Field("floor", 0)},
			{name: "unknown room type", mutate: testutil.Field("room_type", "penthouse")},
			{name: "negative nightly rate", mutate: testutil.Field("base_nightly_cents", -1)},
			{name: "malformed seasonal window", mutate: testutil.Field("seasonal_rates", []map[string]any{
				{"from": "2026/07/01", "to": "2026-08-31", "multiplier": 1.5},
			})},
			{name: "zero seasonal multiplier", mutate: testutil.Field("seasonal_rates", []map[string]any{
				{"from": "2026-07-01", "to": "2026-08-31", "multiplier": 0},
			})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when the room number is taken", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomNumberTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

// ================================================================================
// TestGetRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetRoom() {
	view := builder.NewRoomBuilder().BuildViewQuery()

	s.Run("success: returns 200 OK with the room view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+view.ID.String(), nil, "bearer-token")

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(view.ID, body.ID)
		s.Equal(view.RoomNumber, body.RoomNumber)
		s.Equal(view.DisplayStatus, body.DisplayStatus)
		s.Equal(view.BaseNightlyCents, body.BaseNightlyCents)
	})

	s.Run("error: 400 on malformed room ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the room does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestListRooms
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: returns 200 OK with all rooms", func() {
		items := []*queries.RoomListItem{
			builder.NewRoomBuilder().BuildListItem(),
			builder.NewRoomBuilder().WithRoomNumber("302").BuildListItem(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(items, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "bearer-token")

		var body []resdto.RoomListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("301", body[0].RoomNumber)
		s.Equal("302", body[1].RoomNumber)
	})
}

// ================================================================================
// TestUpdateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestUpdateRoom() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	reqBody := map[string]any{"base_nightly_cents": 1_200_000}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), id, gomock.Any()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on negative rate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"first_hour_cents": -1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestSetRoomStatus
// ================================================================================

func (s *RoomHandlerTestSuite) TestSetRoomStatus() {
	id := uuid.New()
	url := "/rooms/" + id.String() + "/status"

	s.Run("success: housekeeping operations return 204", func() {
		for _, op := range []string{"start_cleaning", "finish_cleaning", "mark_maintenance"} {
			s.Run(op, func() {
				s.mockCommands.EXPECT().SetRoomStatus(gomock.Any(), id, commands.RoomStatusOp(op)).
					Return(nil).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"operation": op}, "bearer-token")
				s.Equal(http.StatusNoContent, rec.Code)
			})
		}
	})

	s.Run("error: 400 on unknown operation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"operation": "fumigate"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 while the room is reserved or occupied", func() {
		s.mockCommands.EXPECT().SetRoomStatus(gomock.Any(), id, commands.RoomStatusOp("mark_maintenance")).
			Return(commands.ErrRoomInUse).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"operation": "mark_maintenance"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

// ================================================================================
// TestDeleteRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestDeleteRoom() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteRoom(gomock.Any(), id).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when an active booking references the room", func() {
		s.mockCommands.EXPECT().DeleteRoom(gomock.Any(), id).
			Return(commands.ErrRoomInUse).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockCommands.EXPECT().DeleteRoom(gomock.Any(), id).
			Return(commands.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *RoomHandlerTestSuite) TestCheckAvailability() {
	id := uuid.New()
	base := "/rooms/" + id.String() + "/availability"

	s.Run("success: reports the room as free", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2026-01-15&check_out=2026-01-17", nil, "bearer-token")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.RoomID)
		s.Equal("2026-01-15", body.CheckIn)
		s.Equal("2026-01-17", body.CheckOut)
		s.True(body.Available)
	})

	s.Run("success: reports an overlapping window as taken", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2026-01-15&check_out=2026-01-17", nil, "bearer-token")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
	})

	s.Run("error: 400 when check-out precedes check-in", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2026-01-17&check_out=2026-01-15", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when a date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2026-01-15", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(false, queries.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2026-01-15&check_out=2026-01-17", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestSearchAvailable
// ================================================================================

func (s *RoomHandlerTestSuite) TestSearchAvailable() {
	base := "/rooms/availability"

	s.Run("success: returns matching rooms with filters applied", func() {
		items := []*queries.RoomListItem{builder.NewRoomBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _, _ any, filters queries.RoomSearchFilters) ([]*queries.RoomListItem, error) {
				s.Require().NotNil(filters.RoomType)
				s.Equal("standard", *filters.RoomType)
				s.Require().NotNil(filters.Floor)
				s.Equal(3, *filters.Floor)
				return items, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2026-01-15&check_out=2026-01-17&room_type=standard&floor=3", nil, "bearer-token")

		var body []resdto.RoomListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 when the window is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_out=2026-01-17", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
