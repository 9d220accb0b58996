//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/handler/api"
	resdto "booking-wizard/internal/handler/dto/response"
	"booking-wizard/internal/usecase/commands"
	"booking-wizard/internal/usecase/queries"
	"booking-wizard/internal/usecase/shared"
	"booking-wizard/tests/common/builder"
	"booking-wizard/tests/common/httptest"
	"booking-wizard/tests/common/testutil"
	mock_commands "booking-wizard/tests/mock/commands"
	mock_queries "booking-wizard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockWizard     *mock_commands.MockWizardCommands
	mockSubmission *mock_commands.MockSubmissionCommands
	mockQueries    *mock_queries.MockSessionQueries
	handler        *api.WizardHandler

	staffPrincipal shared.Principal
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWizard = mock_commands.NewMockWizardCommands(s.mockCtrl)
	s.mockSubmission = mock_commands.NewMockSubmissionCommands(s.mockCtrl)
	s.mockQueries = mock_queries.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewWizardHandler(s.mockWizard, s.mockSubmission, s.mockQueries)

	s.staffPrincipal = shared.Principal{Staff: true, UserID: uuid.New(), Role: "staff", Token: "staff-token"}

	// Stand-in for AuthMiddleware.ResolvePrincipal: a bearer token means
	// staff, no token means guest.
	principalMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("principal", s.staffPrincipal)
		}
		c.Next()
	}

	sessions := s.router.Group("/api/sessions")
	sessions.Use(principalMiddleware)
	sessions.POST("", s.handler.CreateSession)
	sessions.GET("/:id", s.handler.GetSession)
	sessions.POST("/:id/category", s.handler.SelectCategory)
	sessions.POST("/:id/date", s.handler.SelectDate)
	sessions.GET("/:id/slots", s.handler.GetSlots)
	sessions.POST("/:id/slots/refresh", s.handler.RefreshSlots)
	sessions.POST("/:id/slots/toggle", s.handler.ToggleSlot)
	sessions.POST("/:id/people", s.handler.SetPeople)
	sessions.GET("/:id/quote", s.handler.GetQuote)
	sessions.POST("/:id/step", s.handler.Navigate)
	sessions.POST("/:id/submit", s.handler.Submit)
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

func sessionView(id uuid.UUID) *queries.SessionView {
	return &queries.SessionView{
		ID:             id,
		Step:           "category",
		NumberOfPeople: 1,
		Availability:   queries.AvailabilityView{Status: "idle"},
		SubmitPhase:    "idle",
	}
}

func (s *WizardHandlerTestSuite) TestCreateSession() {
	sessionID := uuid.New()

	s.Run("success: returns 201 with Location header", func() {
		s.mockWizard.EXPECT().StartSession().Return(sessionView(sessionID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sessions", nil, "")

		var view queries.SessionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
		s.Equal(sessionID, view.ID)
		s.Equal("category", view.Step)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/sessions/" + sessionID.String()})
	})
}

func (s *WizardHandlerTestSuite) TestGetSession() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String()

	s.Run("success: returns 200 with the session view", func() {
		s.mockQueries.EXPECT().Get(sessionID).Return(sessionView(sessionID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var view queries.SessionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal(sessionID, view.ID)
	})

	s.Run("error: 400 for a malformed session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sessions/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session id")
	})

	s.Run("error: 404 for an unknown or expired session", func() {
		s.mockQueries.EXPECT().Get(sessionID).Return(nil, queries.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})
}

func (s *WizardHandlerTestSuite) TestSelectCategory() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/category"
	reqBody := map[string]any{"categoryId": "cat-1", "name": "Treatments"}

	s.Run("success: forwards the selection", func() {
		s.mockWizard.EXPECT().
			SelectCategory(sessionID, commands.SelectCategoryParams{ID: "cat-1", Name: "Treatments"}).
			Return(sessionView(sessionID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when categoryId is missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("categoryId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *WizardHandlerTestSuite) TestSelectDate() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/date"

	s.Run("success", func() {
		s.mockWizard.EXPECT().SelectDate(sessionID, "2026-03-03").
			Return(sessionView(sessionID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"date": "2026-03-03"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an unparseable date", func() {
		s.mockWizard.EXPECT().SelectDate(sessionID, "03/05/2026").
			Return(nil, commands.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"date": "03/05/2026"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 422 for a date the domain rejects", func() {
		s.mockWizard.EXPECT().SelectDate(sessionID, "2020-01-01").
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"date": "2020-01-01"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Selection is not valid")
	})
}

func (s *WizardHandlerTestSuite) TestToggleSlot() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/slots/toggle"
	reqBody := map[string]any{"start": "09:00", "end": "10:00"}

	s.Run("success", func() {
		s.mockWizard.EXPECT().ToggleSlot(sessionID, "09:00", "10:00").
			Return(sessionView(sessionID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the slot is not in the loaded list", func() {
		s.mockWizard.EXPECT().ToggleSlot(sessionID, "09:00", "10:00").
			Return(nil, commands.ErrSlotNotOffered).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in the current availability")
	})

	s.Run("error: 400 when start or end is missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("end", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *WizardHandlerTestSuite) TestSetPeople() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/people"

	s.Run("validation boundaries", func() {
		cases := []struct {
			name       string
			people     int
			expectCode int
		}{
			{name: "minimum OK (1)", people: 1, expectCode: http.StatusOK},
			{name: "maximum OK (5)", people: 5, expectCode: http.StatusOK},
			{name: "below minimum (0)", people: 0, expectCode: http.StatusBadRequest},
			{name: "above maximum (6)", people: 6, expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockWizard.EXPECT().SetPeople(sessionID, tc.people).
						Return(sessionView(sessionID), nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"numberOfPeople": tc.people}, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})
}

func (s *WizardHandlerTestSuite) TestNavigate() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/step"

	s.Run("success", func() {
		s.mockWizard.EXPECT().Navigate(sessionID, "room").
			Return(sessionView(sessionID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"step": "room"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 with the required step on a guard violation", func() {
		guardErr := &wizard.StepGuardError{Target: wizard.StepConfirm, Required: wizard.StepTime, Reason: "no time slots selected"}
		s.mockWizard.EXPECT().Navigate(sessionID, "confirm").
			Return(nil, guardErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"step": "confirm"}, "")

		var body struct {
			Detail struct {
				RequiredStep string `json:"required_step"`
				Reason       string `json:"reason"`
			} `json:"detail"`
		}
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "complete all previous steps")
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("time", body.Detail.RequiredStep)
		s.Equal("no time slots selected", body.Detail.Reason)
	})
}

func (s *WizardHandlerTestSuite) TestSubmit() {
	sessionID := uuid.New()
	url := "/api/sessions/" + sessionID.String() + "/submit"
	reqBody := builder.NewWizardBuilder().BuildSubmitRequestDTO()

	s.Run("success: guest submission returns the payment redirect", func() {
		s.mockSubmission.EXPECT().
			Submit(gomock.Any(), sessionID, gomock.Any(), shared.Guest()).
			Return(&commands.SubmitResult{
				Outcome:     commands.OutcomeRedirect,
				BookingID:   "abc",
				RedirectURL: "https://pay.example.com/abc",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("redirect", response.Outcome)
		s.Equal("abc", response.BookingID)
		s.Equal("https://pay.example.com/abc", response.RedirectURL)
	})

	s.Run("success: staff submission confirms without a redirect", func() {
		s.mockSubmission.EXPECT().
			Submit(gomock.Any(), sessionID, gomock.Any(), s.staffPrincipal).
			Return(&commands.SubmitResult{Outcome: commands.OutcomeConfirmed, BookingID: "bk-77"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "staff-bearer")

		var response resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Outcome)
		s.Equal("bk-77", response.BookingID)
		s.Empty(response.RedirectURL)
	})

	s.Run("error: 400 on contact validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing firstName", mutate: testutil.Field("firstName", nil)},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "people out of range", mutate: testutil.Field("numberOfPeople", 6)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps submission errors to proper statuses", func() {
		cases := []struct {
			name           string
			submitError    error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "draft not ready",
				submitError:    commands.ErrDraftNotReady,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Selection is not valid",
			},
			{
				name:           "submission already in flight",
				submitError:    commands.ErrSubmissionInFlight,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already in progress",
			},
			{
				name:           "booking rejected upstream",
				submitError:    commands.ErrBookingRejected,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "not accepted",
			},
			{
				name:           "session expired",
				submitError:    commands.ErrSessionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Session not found",
			},
			{
				name:           "internal error",
				submitError:    errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockSubmission.EXPECT().
					Submit(gomock.Any(), sessionID, gomock.Any(), shared.Guest()).
					Return(nil, tc.submitError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 502 with the booking id when the payment intent fails", func() {
		s.mockSubmission.EXPECT().
			Submit(gomock.Any(), sessionID, gomock.Any(), shared.Guest()).
			Return(nil, &commands.PaymentIntentError{BookingID: "bk-55"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body struct {
			Detail resdto.PaymentUnavailableResponse `json:"detail"`
		}
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "payment is unavailable")
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("payment_unavailable", body.Detail.Outcome)
		s.Equal("bk-55", body.Detail.BookingID)
	})
}
