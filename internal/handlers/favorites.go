package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/services"
)

// FavoriteProvider defines the interface that the favorites service must implement.
type FavoriteProvider interface {
	ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWithObject, error)
	Add(ctx context.Context, userID, objectID int64) (fav *models.FavoriteDB, created bool, err error)
	Remove(ctx context.Context, userID, objectID int64) (*models.FavoriteDB, error)
}

// AddFavoriteRequest represents the JSON body for favorite creation
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// required: true
	UserID int64 `json:"user_id"`
	// required: true
	ObjectID int64 `json:"object_id"`
}

// FavoriteExistsResponse is returned when the pair is already a favorite
// swagger:model FavoriteExistsResponse
type FavoriteExistsResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// FavoriteRemovedResponse confirms a removal
// swagger:model FavoriteRemovedResponse
type FavoriteRemovedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// NewFavoritesHandler returns the HTTP handler for the favorites resource.
// @Summary Favorites resource
// @Description GET a user's favorites with object snapshots, POST an idempotent favorite creation (notifies the object's broker on a fresh insert), DELETE a favorite by pair.
// @Tags favorites
// @Accept json
// @Produce json
// @Param user_id query int true "Investor id"
// @Success 200 {array} models.FavoriteWithObject
// @Failure 400 {object} handlers.ErrorResponse "user_id is required"
// @Router /api [get]
func NewFavoritesHandler(svc FavoriteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listFavorites(svc, w, r)
		case http.MethodPost:
			addFavorite(svc, w, r)
		case http.MethodDelete:
			removeFavorite(svc, w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func listFavorites(svc FavoriteProvider, w http.ResponseWriter, r *http.Request) {
	userID, ok := int64QueryParam(r, "user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	favorites, err := svc.ListByUser(r.Context(), userID)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func addFavorite(svc FavoriteProvider, w http.ResponseWriter, r *http.Request) {
	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "user_id and object_id are required")
		return
	}
	if req.UserID == 0 || req.ObjectID == 0 {
		writeError(w, http.StatusBadRequest, "user_id and object_id are required")
		return
	}

	fav, created, err := svc.Add(r.Context(), req.UserID, req.ObjectID)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, FavoriteExistsResponse{Message: "Already in favorites", ID: fav.ID})
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func removeFavorite(svc FavoriteProvider, w http.ResponseWriter, r *http.Request) {
	userID, okUser := int64QueryParam(r, "user_id")
	objectID, okObject := int64QueryParam(r, "object_id")
	if !okUser || !okObject {
		writeError(w, http.StatusBadRequest, "user_id and object_id are required")
		return
	}

	removed, err := svc.Remove(r.Context(), userID, objectID)
	if err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) {
			writeError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, FavoriteRemovedResponse{Message: "Favorite removed", ID: removed.ID})
}

func int64QueryParam(r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
