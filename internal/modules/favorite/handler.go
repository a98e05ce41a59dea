// Package favorite is thin enough that the handler talks to the
// repository directly; there is no business logic to hide behind a
// service.
package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"equiprent/internal/middleware"
	"equiprent/internal/pkg/response"
	"equiprent/internal/repository"
)

type Handler struct {
	favorites FavoriteRepository
	equipment EquipmentStore
}

func NewHandler(favorites FavoriteRepository, equipment EquipmentStore) *Handler {
	return &Handler{favorites: favorites, equipment: equipment}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.List)
	rg.POST("/favorites/:equipmentId", h.Add)
	rg.DELETE("/favorites/:equipmentId", h.Remove)
	rg.GET("/favorites/:equipmentId/status", h.Status)
}

func (h *Handler) equipmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("equipmentId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment id")
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	favorites, err := h.favorites.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": favorites})
}

func (h *Handler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	equipmentID, ok := h.equipmentID(c)
	if !ok {
		return
	}

	if _, err := h.equipment.GetByID(c.Request.Context(), equipmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}

	fav, err := h.favorites.Add(c.Request.Context(), userID, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorite) {
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Equipment is already in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": fav})
}

func (h *Handler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	equipmentID, ok := h.equipmentID(c)
	if !ok {
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, equipmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment is not in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// Status answers the heart icon on the equipment card.
func (h *Handler) Status(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	equipmentID, ok := h.equipmentID(c)
	if !ok {
		return
	}

	isFavorite, err := h.favorites.Exists(c.Request.Context(), userID, equipmentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check favorite status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_favorite": isFavorite})
}
