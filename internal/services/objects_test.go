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

func int64Ptr(v int64) *int64 { return &v }

func TestObjectsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockReader := services.NewMockObjectReader(ctrl)
		mockCache := services.NewMockObjectCache(ctrl)
		svc := services.NewObjectsService(mockReader, services.NewMockObjectWriter(ctrl), services.NewMockActorReader(ctrl), mockCache)

		mockCache.EXPECT().
			GetObject(gomock.Any(), int64(5)).
			Return(&models.ObjectDB{ID: 5, Title: "Лофт"}, nil)

		obj, err := svc.Get(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, "Лофт", obj.Title)
	})

	t.Run("cache miss reads through and populates", func(t *testing.T) {
		mockReader := services.NewMockObjectReader(ctrl)
		mockCache := services.NewMockObjectCache(ctrl)
		svc := services.NewObjectsService(mockReader, services.NewMockObjectWriter(ctrl), services.NewMockActorReader(ctrl), mockCache)

		mockCache.EXPECT().
			GetObject(gomock.Any(), int64(5)).
			Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(5)).
			Return(&models.ObjectDB{ID: 5}, nil)
		mockCache.EXPECT().
			SetObject(gomock.Any(), gomock.Any()).
			Return(nil)

		obj, err := svc.Get(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), obj.ID)
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		mockReader := services.NewMockObjectReader(ctrl)
		mockCache := services.NewMockObjectCache(ctrl)
		svc := services.NewObjectsService(mockReader, services.NewMockObjectWriter(ctrl), services.NewMockActorReader(ctrl), mockCache)

		mockCache.EXPECT().
			GetObject(gomock.Any(), int64(5)).
			Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(5)).
			Return(&models.ObjectDB{ID: 5}, nil)
		mockCache.EXPECT().
			SetObject(gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		_, err := svc.Get(context.Background(), 5)
		assert.NoError(t, err)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mockReader := services.NewMockObjectReader(ctrl)
		svc := services.NewObjectsService(mockReader, services.NewMockObjectWriter(ctrl), services.NewMockActorReader(ctrl), nil)

		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(999)).
			Return(nil, nil)

		obj, err := svc.Get(context.Background(), 999)
		assert.ErrorIs(t, err, services.ErrObjectNotFound)
		assert.Nil(t, obj)
	})
}

func TestObjectsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockObjectWriter(ctrl)
	svc := services.NewObjectsService(services.NewMockObjectReader(ctrl), mockWriter, services.NewMockActorReader(ctrl), nil)

	mockWriter.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obj models.ObjectDB) (*models.ObjectDB, error) {
			assert.Equal(t, "available", obj.Status)
			obj.ID = 1
			return &obj, nil
		})

	created, err := svc.Create(context.Background(), models.ObjectDB{Title: "Студия"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestObjectsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	status := "sold"
	upd := models.ObjectUpdate{Status: &status}

	tests := []struct {
		name      string
		actorID   *int64
		actor     *models.UserDB
		brokerID  *int64
		found     bool
		wantErr   error
	}{
		{
			name:     "owner may edit",
			actorID:  int64Ptr(2),
			actor:    &models.UserDB{ID: 2},
			brokerID: int64Ptr(2),
			found:    true,
		},
		{
			name:     "admin may edit any object",
			actorID:  int64Ptr(1),
			actor:    &models.UserDB{ID: 1, IsAdmin: true},
			brokerID: int64Ptr(2),
			found:    true,
		},
		{
			name:     "stranger is denied",
			actorID:  int64Ptr(9),
			actor:    &models.UserDB{ID: 9},
			brokerID: int64Ptr(2),
			found:    true,
			wantErr:  services.ErrAccessDenied,
		},
		{
			name:     "ownerless object is denied to non-admins",
			actorID:  int64Ptr(9),
			actor:    &models.UserDB{ID: 9},
			brokerID: nil,
			found:    true,
			wantErr:  services.ErrAccessDenied,
		},
		{
			name:    "unknown actor id skips the ownership check",
			actorID: int64Ptr(1000),
			actor:   nil,
		},
		{
			name:    "absent identity skips the ownership check",
			actorID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockObjectReader(ctrl)
			mockWriter := services.NewMockObjectWriter(ctrl)
			mockActors := services.NewMockActorReader(ctrl)
			svc := services.NewObjectsService(mockReader, mockWriter, mockActors, nil)

			if tt.actorID != nil {
				mockActors.EXPECT().
					GetByID(gomock.Any(), *tt.actorID).
					Return(tt.actor, nil)
				if tt.actor != nil {
					mockReader.EXPECT().
						GetBrokerID(gomock.Any(), int64(5)).
						Return(tt.brokerID, tt.found, nil)
				}
			}

			if tt.wantErr == nil {
				mockWriter.EXPECT().
					Update(gomock.Any(), int64(5), upd).
					Return(&models.ObjectDB{ID: 5, Status: status}, nil)
			}

			updated, err := svc.Update(context.Background(), 5, tt.actorID, upd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		})
	}

	t.Run("missing row maps to not found", func(t *testing.T) {
		mockWriter := services.NewMockObjectWriter(ctrl)
		svc := services.NewObjectsService(services.NewMockObjectReader(ctrl), mockWriter, services.NewMockActorReader(ctrl), nil)

		mockWriter.EXPECT().
			Update(gomock.Any(), int64(77), upd).
			Return(nil, nil)

		_, err := svc.Update(context.Background(), 77, nil, upd)
		assert.ErrorIs(t, err, services.ErrObjectNotFound)
	})

	t.Run("update invalidates the cache", func(t *testing.T) {
		mockWriter := services.NewMockObjectWriter(ctrl)
		mockCache := services.NewMockObjectCache(ctrl)
		svc := services.NewObjectsService(services.NewMockObjectReader(ctrl), mockWriter, services.NewMockActorReader(ctrl), mockCache)

		mockWriter.EXPECT().
			Update(gomock.Any(), int64(5), upd).
			Return(&models.ObjectDB{ID: 5}, nil)
		mockCache.EXPECT().
			InvalidateObject(gomock.Any(), int64(5)).
			Return(nil)

		_, err := svc.Update(context.Background(), 5, nil, upd)
		assert.NoError(t, err)
	})
}
