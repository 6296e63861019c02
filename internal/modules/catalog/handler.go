package catalog

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

// RegisterRoutes mounts the public browse surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/movies", h.ListMovies)
	rg.GET("/movies/:id", h.GetMovie)
	rg.GET("/genres", h.ListGenres)
	rg.GET("/cinemas", h.ListCinemas)
	rg.GET("/cinemas/:id", h.GetCinema)
	rg.GET("/cinemas/:id/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/movies", h.CreateMovie)
	rg.PUT("/movies/:id", h.UpdateMovie)
	rg.DELETE("/movies/:id", h.DeleteMovie)
	rg.POST("/genres", h.CreateGenre)
	rg.POST("/cinemas", h.CreateCinema)
	rg.PUT("/cinemas/:id", h.UpdateCinema)
	rg.DELETE("/cinemas/:id", h.DeleteCinema)
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
}

func pathID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+what+" id")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	movie, err := h.service.CreateMovie(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"movie": movie})
}

func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := pathID(c, "movie")
	if !ok {
		return
	}
	movie, err := h.service.GetMovie(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"movie": movie})
}

func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.service.ListMovies(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"movies": movies})
}

func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := pathID(c, "movie")
	if !ok {
		return
	}
	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	movie, err := h.service.UpdateMovie(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"movie": movie})
}

func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := pathID(c, "movie")
	if !ok {
		return
	}
	if err := h.service.DeleteMovie(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	genre, err := h.service.CreateGenre(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"genre": genre})
}

func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.service.ListGenres(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"genres": genres})
}

func (h *Handler) CreateCinema(c *gin.Context) {
	var req CinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	cinema, err := h.service.CreateCinema(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"cinema": cinema})
}

func (h *Handler) GetCinema(c *gin.Context) {
	id, ok := pathID(c, "cinema")
	if !ok {
		return
	}
	cinema, err := h.service.GetCinema(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cinema": cinema})
}

func (h *Handler) ListCinemas(c *gin.Context) {
	cinemas, err := h.service.ListCinemas(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cinemas": cinemas})
}

func (h *Handler) UpdateCinema(c *gin.Context) {
	id, ok := pathID(c, "cinema")
	if !ok {
		return
	}
	var req CinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	cinema, err := h.service.UpdateCinema(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cinema": cinema})
}

func (h *Handler) DeleteCinema(c *gin.Context) {
	id, ok := pathID(c, "cinema")
	if !ok {
		return
	}
	if err := h.service.DeleteCinema(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ListRooms(c *gin.Context) {
	id, ok := pathID(c, "cinema")
	if !ok {
		return
	}
	rooms, err := h.service.ListRooms(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrCinemaNotFound), errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrGenreNotFound), errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrRoomInUse):
		response.Error(c, http.StatusConflict, "ROOM_IN_USE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process catalog request")
	}
}
