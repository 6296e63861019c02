package seat

import (
	"errors"
	"net/http"
	"strconv"

	"cinebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/seats", h.ListByRoom)
	rg.GET("/screenings/:id/seats", h.Availability)
	rg.GET("/screenings/:id/available", h.AvailableSeats)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/seats", h.CreateBatch)
	rg.GET("/seats/:id", h.Get)
	rg.PUT("/seats/:id", h.Update)
	rg.DELETE("/seats/:id", h.Delete)
}

func pathID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+what+" id")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateBatch(c *gin.Context) {
	var req CreateSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	seats, err := h.service.CreateBatch(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"seats": seats})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "seat")
	if !ok {
		return
	}
	seat, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seat": seat})
}

func (h *Handler) ListByRoom(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	seats, err := h.service.ListByRoom(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seats": seats})
}

func (h *Handler) Availability(c *gin.Context) {
	id, ok := pathID(c, "screening")
	if !ok {
		return
	}
	statuses, err := h.service.Availability(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seats": statuses})
}

func (h *Handler) AvailableSeats(c *gin.Context) {
	id, ok := pathID(c, "screening")
	if !ok {
		return
	}
	seats, err := h.service.AvailableSeats(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seats": seats})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "seat")
	if !ok {
		return
	}
	var req UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	seat, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"seat": seat})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "seat")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrScreeningNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrSeatInUse):
		response.Error(c, http.StatusConflict, "SEAT_IN_USE", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process seat request")
	}
}
