package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/services"
)

func TestUsersService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		role         string
		existing     *models.UserDB
		readerErr    error
		wantCreated  bool
		wantRole     string
		wantErr      bool
	}{
		{
			name:        "new user defaults to investor",
			email:       "new@example.com",
			existing:    nil,
			wantCreated: true,
			wantRole:    "investor",
		},
		{
			name:        "explicit role is kept",
			email:       "broker@example.com",
			role:        "broker",
			existing:    nil,
			wantCreated: true,
			wantRole:    "broker",
		},
		{
			name:        "existing email returns existing row untouched",
			email:       "old@example.com",
			existing:    &models.UserDB{ID: 3, Email: "old@example.com"},
			wantCreated: false,
		},
		{
			name:      "reader error",
			email:     "err@example.com",
			readerErr: errors.New("db error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUsersService(mockReader, mockWriter)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existing, tt.readerErr)

			if tt.existing == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Insert(gomock.Any(), tt.email, "Name", tt.wantRole).
					Return(&models.UserDB{ID: 10, Email: tt.email, Role: tt.wantRole}, nil)
			}

			user, created, err := svc.Create(context.Background(), tt.email, "Name", tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			if !tt.wantCreated {
				assert.Equal(t, tt.existing.ID, user.ID)
			}
		})
	}
}

func TestUsersService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUsersService(mockReader, services.NewMockUserWriter(ctrl))

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7}, nil)

		user, err := svc.Get(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		user, err := svc.Get(context.Background(), 404)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUsersService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUsersService(services.NewMockUserReader(ctrl), mockWriter)

	mockWriter.EXPECT().
		Upsert(gomock.Any(), "b@example.com", "B", "investor").
		Return(&models.UserShort{ID: 2, Email: "b@example.com", Name: "B", Role: "investor"}, nil)

	user, err := svc.Upsert(context.Background(), "b@example.com", "B", "")
	assert.NoError(t, err)
	assert.Equal(t, "investor", user.Role)
}

func TestUsersService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUsersService(services.NewMockUserReader(ctrl), mockWriter)

	t.Run("deleted", func(t *testing.T) {
		mockWriter.EXPECT().
			Delete(gomock.Any(), int64(5)).
			Return(true, nil)

		assert.NoError(t, svc.Delete(context.Background(), 5))
	})

	t.Run("no row maps to not found", func(t *testing.T) {
		mockWriter.EXPECT().
			Delete(gomock.Any(), int64(99)).
			Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 99), services.ErrUserNotFound)
	})
}
