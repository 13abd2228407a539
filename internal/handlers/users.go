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

// UserProvider defines the interface that the users service must implement.
type UserProvider interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Create(ctx context.Context, email, name, role string) (user *models.UserDB, created bool, err error)
}

// CreateUserRequest represents the JSON body for user signup
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Display name
	// required: true
	Name string `json:"name"`

	// Role, defaults to investor
	Role string `json:"role"`
}

// UserExistsResponse is returned when signup hits an existing email
// swagger:model UserExistsResponse
type UserExistsResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// NewUsersHandler returns the HTTP handler for the users resource.
// @Summary Users resource
// @Description GET one user by id or email, GET the 100 newest users, or POST a signup. Signup is idempotent: an existing email returns the existing id untouched.
// @Tags users
// @Accept json
// @Produce json
// @Param id query int false "User id"
// @Param email query string false "User email"
// @Success 200 {object} models.UserDB
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api [get]
func NewUsersHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getUsers(svc, w, r)
		case http.MethodPost:
			createUser(svc, w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func getUsers(svc UserProvider, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if rawID := query.Get("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		user, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, user)
		return
	}

	if email := query.Get("email"); email != "" {
		user, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, user)
		return
	}

	users, err := svc.List(r.Context())
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func createUser(svc UserProvider, w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and name are required")
		return
	}

	if req.Email == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Email and name are required")
		return
	}

	user, created, err := svc.Create(r.Context(), req.Email, req.Name, req.Role)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, UserExistsResponse{ID: user.ID, Message: "User already exists"})
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
