package services

import (
	"context"
	"errors"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// Error variables
var (
	ErrUserNotFound = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	ListAll(ctx context.Context) ([]models.UserShort, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Insert(ctx context.Context, email, name, role string) (*models.UserDB, error)
	Upsert(ctx context.Context, email, name, role string) (*models.UserShort, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UsersService handles user lookups, signup and admin management.
//
// Create and Upsert deliberately coexist as two distinct operations: the
// signup path never overwrites an existing user, while the admin management
// path updates name and role in place on an email conflict.
type UsersService struct {
	reader UserReader
	writer UserWriter
}

// NewUsersService creates a new UsersService instance.
func NewUsersService(reader UserReader, writer UserWriter) *UsersService {
	return &UsersService{reader: reader, writer: writer}
}

// Get returns a user by id.
func (svc *UsersService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail returns a user by email.
func (svc *UsersService) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns up to 100 most recently created users.
func (svc *UsersService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// ListAll returns all users in the compact admin projection.
func (svc *UsersService) ListAll(ctx context.Context) ([]models.UserShort, error) {
	users, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all users", "err", err)
		return nil, err
	}
	return users, nil
}

// Create registers a new user. When a user with the same email already
// exists, the existing row is returned untouched and created is false.
func (svc *UsersService) Create(ctx context.Context, email, name, role string) (user *models.UserDB, created bool, err error) {
	if role == "" {
		role = models.RoleInvestor
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err = svc.writer.Insert(ctx, email, name, role)
	if err != nil {
		logger.Log.Errorw("failed to insert user", "email", email, "err", err)
		return nil, false, err
	}
	return user, true, nil
}

// Upsert creates a user or updates name and role of the existing row with the
// same email. Used by the admin user management endpoint.
func (svc *UsersService) Upsert(ctx context.Context, email, name, role string) (*models.UserShort, error) {
	if role == "" {
		role = models.RoleInvestor
	}

	user, err := svc.writer.Upsert(ctx, email, name, role)
	if err != nil {
		logger.Log.Errorw("failed to upsert user", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

// Delete removes a user by id.
func (svc *UsersService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
