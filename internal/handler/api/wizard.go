package api

import (
	"errors"
	"net/http"

	"booking-wizard/internal/domain/wizard"
	reqdto "booking-wizard/internal/handler/dto/request"
	resdto "booking-wizard/internal/handler/dto/response"
	"booking-wizard/internal/handler/httperr"
	"booking-wizard/internal/handler/middleware"
	"booking-wizard/internal/usecase/commands"
	"booking-wizard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizardCommands     commands.WizardCommands
	submissionCommands commands.SubmissionCommands
	sessionQueries     queries.SessionQueries
}

func NewWizardHandler(
	wizardCommands commands.WizardCommands,
	submissionCommands commands.SubmissionCommands,
	sessionQueries queries.SessionQueries,
) *WizardHandler {
	return &WizardHandler{
		wizardCommands:     wizardCommands,
		submissionCommands: submissionCommands,
		sessionQueries:     sessionQueries,
	}
}

// @Summary Start wizard session
// @Description Create an empty booking draft and return its session
// @Tags sessions
// @Produce json
// @Success 201 {object} queries.SessionView
// @Router /sessions [post]
func (h *WizardHandler) CreateSession(c *gin.Context) {
	view, err := h.wizardCommands.StartSession()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Location", "/api/sessions/"+view.ID.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Get session snapshot
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *WizardHandler) GetSession(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.sessionQueries.Get(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select category
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectCategoryRequest true "Category selection"
// @Success 200 {object} queries.SessionView
// @Router /sessions/{id}/category [post]
func (h *WizardHandler) SelectCategory(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectCategoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.SelectCategory(sessionID, commands.SelectCategoryParams{
		ID:   req.CategoryID,
		Name: req.Name,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select room
// @Description Changing rooms invalidates the chosen date and slots
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectRoomRequest true "Room selection"
// @Success 200 {object} queries.SessionView
// @Router /sessions/{id}/room [post]
func (h *WizardHandler) SelectRoom(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.SelectRoom(sessionID, commands.SelectRoomParams{
		ID:   req.RoomID,
		Name: req.Name,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select service
// @Description Changing services invalidates the chosen date and slots
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectServiceRequest true "Service selection"
// @Success 200 {object} queries.SessionView
// @Router /sessions/{id}/service [post]
func (h *WizardHandler) SelectService(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.SelectService(sessionID, commands.SelectServiceParams{
		ID:                req.ServiceID,
		Name:              req.Name,
		PricePerSlotCents: req.PricePerSlotCents,
		AvailableDays:     req.AvailableDays,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select date
// @Description Rejects past days and weekdays the service is not offered on
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Date selection"
// @Success 200 {object} queries.SessionView
// @Failure 422 {object} map[string]string
// @Router /sessions/{id}/date [post]
func (h *WizardHandler) SelectDate(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.SelectDate(sessionID, req.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get availability snapshot
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} queries.AvailabilityView
// @Router /sessions/{id}/slots [get]
func (h *WizardHandler) GetSlots(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.sessionQueries.Slots(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Re-query availability
// @Description Forces a fresh fetch for the current key, e.g. after a slot conflict
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Router /sessions/{id}/slots/refresh [post]
func (h *WizardHandler) RefreshSlots(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.wizardCommands.RefreshSlots(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Toggle time slot
// @Description Selects an available slot, or deselects it when already chosen
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.ToggleSlotRequest true "Slot identity"
// @Success 200 {object} queries.SessionView
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/slots/toggle [post]
func (h *WizardHandler) ToggleSlot(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ToggleSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.ToggleSlot(sessionID, req.Start, req.End)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set number of people
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetPeopleRequest true "Headcount"
// @Success 200 {object} queries.SessionView
// @Router /sessions/{id}/people [post]
func (h *WizardHandler) SetPeople(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SetPeopleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.SetPeople(sessionID, req.NumberOfPeople)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set promo code
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetPromoCodeRequest true "Promo code"
// @Success 200 {object} queries.SessionView
// @Router /sessions/{id}/promo [post]
func (h *WizardHandler) SetPromoCode(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SetPromoCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.SetPromoCode(sessionID, req.PromoCode)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get price quote
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} queries.QuoteView
// @Router /sessions/{id}/quote [get]
func (h *WizardHandler) GetQuote(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.sessionQueries.Quote(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Navigate wizard
// @Description Backward navigation is always allowed; forward navigation is guarded
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.NavigateRequest true "Target step"
// @Success 200 {object} queries.SessionView
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/step [post]
func (h *WizardHandler) Navigate(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.NavigateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.wizardCommands.Navigate(sessionID, req.Step)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit booking
// @Description Staff submissions confirm immediately; guest submissions return a payment redirect
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SubmitBookingRequest true "Contact and final details"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /sessions/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	principal := middleware.GetPrincipal(c)
	result, err := h.submissionCommands.Submit(c.Request.Context(), sessionID, req.ToParams(), principal)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}

func (h *WizardHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var guardErr *wizard.StepGuardError
	var paymentErr *commands.PaymentIntentError

	switch {
	case errors.Is(err, commands.ErrSessionNotFound), errors.Is(err, queries.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found or expired", nil)
	case errors.Is(err, commands.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, commands.ErrInvalidContact):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contact details", nil)
	case errors.Is(err, commands.ErrSlotNotOffered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not in the current availability", nil)
	case errors.Is(err, commands.ErrSubmissionInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "A submission is already in progress", nil)
	case errors.As(err, &guardErr):
		// Guard violations are recoverable prompts, never hard failures:
		// the client is told which step to jump back to.
		httperr.AbortWithError(c, http.StatusConflict, err, "Please complete all previous steps first", gin.H{
			"reason":        guardErr.Reason,
			"required_step": guardErr.Required.String(),
		})
	case errors.As(err, &paymentErr):
		// The booking exists upstream without a payment path. Distinct
		// from a booking failure; retrying could mint a duplicate intent.
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking was created but payment is unavailable", resdto.PaymentUnavailableResponse{
			Outcome:   "payment_unavailable",
			BookingID: paymentErr.BookingID,
			Error:     "Contact support to complete payment for this booking",
		})
	case errors.Is(err, commands.ErrBookingRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking was not accepted", nil)
	case errors.Is(err, commands.ErrDraftNotReady), errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selection is not valid for this booking", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
