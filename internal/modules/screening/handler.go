package screening

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

// RegisterRoutes mounts the public read surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/screenings", h.List)
	rg.GET("/screenings/:id", h.Get)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/screenings", h.Create)
	rg.PUT("/screenings/:id", h.Update)
	rg.DELETE("/screenings/:id", h.Delete)
}

func screeningID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid screening id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"screening": sc})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := screeningID(c)
	if !ok {
		return
	}
	sc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"screening": sc})
}

func (h *Handler) List(c *gin.Context) {
	var q ListScreeningsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	screenings, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"screenings": screenings})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := screeningID(c)
	if !ok {
		return
	}
	var req UpdateScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sc, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"screening": sc})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := screeningID(c)
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
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "SCHEDULE_CONFLICT", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process screening request")
	}
}
