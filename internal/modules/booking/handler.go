package booking

import (
	"errors"
	"net/http"
	"strconv"

	"cinebook/internal/domain"
	"cinebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the moviegoer surface; staff routes are mounted
// separately behind the staff role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/user", h.ListMine)
	rg.GET("/bookings/user/:id", h.GetMine)
	rg.PUT("/bookings/user/:id", h.UpdateMine)
	rg.PUT("/bookings/user/:id/cancel", h.CancelMine)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/staff", h.ListAll)
	rg.GET("/bookings/staff/:id", h.GetAny)
	rg.PUT("/bookings/staff/:id", h.UpdateAny)
	rg.PUT("/bookings/staff/:id/cancel", h.CancelAny)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetMine(c *gin.Context) { h.get(c) }
func (h *Handler) GetAny(c *gin.Context)  { h.get(c) }

func (h *Handler) get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.Get(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) UpdateMine(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), actorFrom(c), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateAny(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := actorFrom(c)
	ctx := c.Request.Context()

	var (
		b   *domain.Booking
		err error
	)
	if req.Status != "" {
		b, err = h.service.UpdateStatus(ctx, actor, id, domain.BookingStatus(req.Status))
		if err != nil {
			h.writeError(c, err)
			return
		}
	}
	if req.TicketCount != nil || req.TotalAmount != nil {
		b, err = h.service.OverrideAmounts(ctx, actor, id, req.TicketCount, req.TotalAmount)
		if err != nil {
			h.writeError(c, err)
			return
		}
	}
	if b == nil {
		b, err = h.service.Get(ctx, actor, id)
		if err != nil {
			h.writeError(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelMine(c *gin.Context) { h.cancel(c) }
func (h *Handler) CancelAny(c *gin.Context)  { h.cancel(c) }

func (h *Handler) cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.Cancel(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var conflict *domain.SeatConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusBadRequest, "SEAT_CONFLICT",
			"One or more selected seats are already booked",
			gin.H{"seat_ids": conflict.SeatIDs})
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrScreeningNotFound), errors.Is(err, ErrSeatNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrValidation), errors.Is(err, ErrScreeningUnavailable):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrVoucherNotFound), errors.Is(err, ErrVoucherExpired), errors.Is(err, ErrVoucherNotEligible):
		response.Error(c, http.StatusBadRequest, "VOUCHER_ERROR", err.Error())
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAlreadyTerminal):
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking request")
	}
}
