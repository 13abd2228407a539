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

// UserManager defines the interface the admin user-management handler needs.
// Unlike the signup path, Upsert overwrites name and role on an email
// conflict.
type UserManager interface {
	ListAll(ctx context.Context) ([]models.UserShort, error)
	Upsert(ctx context.Context, email, name, role string) (*models.UserShort, error)
	Delete(ctx context.Context, id int64) error
}

// AdminUsersListResponse wraps the full user list
// swagger:model AdminUsersListResponse
type AdminUsersListResponse struct {
	Users []models.UserShort `json:"users"`
}

// AdminUserResponse wraps a single upserted user
// swagger:model AdminUserResponse
type AdminUserResponse struct {
	User *models.UserShort `json:"user"`
}

// AdminDeleteResponse marks a successful deletion
// swagger:model AdminDeleteResponse
type AdminDeleteResponse struct {
	Success bool `json:"success"`
}

// NewAdminUsersHandler returns the HTTP handler for admin user management.
// @Summary Admin user management
// @Description GET all users, POST an upsert-by-email (name and role are updated in place on conflict), DELETE a user by id.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} handlers.AdminUsersListResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/users [get]
func NewAdminUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			users, err := svc.ListAll(r.Context())
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, AdminUsersListResponse{Users: users})

		case http.MethodPost:
			var req CreateUserRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "Email и имя обязательны")
				return
			}
			if req.Email == "" || req.Name == "" {
				writeError(w, http.StatusBadRequest, "Email и имя обязательны")
				return
			}

			user, err := svc.Upsert(r.Context(), req.Email, req.Name, req.Role)
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusCreated, AdminUserResponse{User: user})

		case http.MethodDelete:
			rawID := r.URL.Query().Get("id")
			if rawID == "" {
				writeError(w, http.StatusBadRequest, "ID пользователя обязателен")
				return
			}
			id, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "ID пользователя обязателен")
				return
			}

			if err := svc.Delete(r.Context(), id); err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					writeError(w, http.StatusNotFound, "Пользователь не найден")
					return
				}
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, AdminDeleteResponse{Success: true})

		default:
			writeError(w, http.StatusMethodNotAllowed, "Метод не поддерживается")
		}
	}
}
