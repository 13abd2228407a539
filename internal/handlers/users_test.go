package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/services"
)

func TestUsersHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserProvider)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "by id",
			target: "/api?resource=users&id=7",
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					Get(gomock.Any(), int64(7)).
					Return(&models.UserDB{ID: 7, Email: "ivan@example.com", Name: "Ivan"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "by id not found",
			target: "/api?resource=users&id=404",
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					Get(gomock.Any(), int64(404)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedErr:  "User not found",
		},
		{
			name:         "invalid id",
			target:       "/api?resource=users&id=abc",
			expectedCode: 400,
			expectedErr:  "Invalid user id",
		},
		{
			name:   "by email",
			target: "/api?resource=users&email=ivan%40example.com",
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					GetByEmail(gomock.Any(), "ivan@example.com").
					Return(&models.UserDB{ID: 7, Email: "ivan@example.com"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "list",
			target: "/api?resource=users",
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					List(gomock.Any()).
					Return([]models.UserDB{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "list error",
			target: "/api?resource=users",
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: 500,
			expectedErr:  "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserProvider(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUsersHandler(mockSvc)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

func TestUsersHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserProvider)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"email":"new@example.com","name":"New"}`,
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					Create(gomock.Any(), "new@example.com", "New", "").
					Return(&models.UserDB{ID: 10, Email: "new@example.com", Name: "New", Role: "investor"}, true, nil)
			},
			expectedCode: 201,
		},
		{
			name: "already exists",
			body: `{"email":"old@example.com","name":"Old"}`,
			mockSetup: func(m *MockUserProvider) {
				m.EXPECT().
					Create(gomock.Any(), "old@example.com", "Old", "").
					Return(&models.UserDB{ID: 3, Email: "old@example.com"}, false, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "missing fields",
			body:         `{"email":"","name":""}`,
			expectedCode: 400,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserProvider(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUsersHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api?resource=users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}

	t.Run("exists response carries existing id", func(t *testing.T) {
		mockSvc := NewMockUserProvider(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "old@example.com", "Old", "").
			Return(&models.UserDB{ID: 3}, false, nil)

		handler := NewUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/api?resource=users",
			bytes.NewBufferString(`{"email":"old@example.com","name":"Old"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		var resp UserExistsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "User already exists", resp.Message)
	})
}

func TestUsersHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewUsersHandler(NewMockUserProvider(ctrl))
	req := httptest.NewRequest(http.MethodDelete, "/api?resource=users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
