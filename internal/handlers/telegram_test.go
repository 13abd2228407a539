package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vozduh-dev/invest-api/internal/models"
)

func TestTelegramSendHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("relays message", func(t *testing.T) {
		mockSvc := NewMockMessageRelay(ctrl)
		mockSvc.EXPECT().
			Relay(gomock.Any(), "12345", "Новый объект в каталоге", "HTML").
			Return(map[string]any{"ok": true}, nil)

		handler := NewTelegramSendHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/telegram/send",
			bytes.NewBufferString(`{"chat_id":"12345","message":"Новый объект в каталоге","parse_mode":"HTML"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp RelayResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("numeric chat_id is accepted", func(t *testing.T) {
		mockSvc := NewMockMessageRelay(ctrl)
		mockSvc.EXPECT().
			Relay(gomock.Any(), "12345", "привет", "").
			Return(map[string]any{"ok": true}, nil)

		handler := NewTelegramSendHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/telegram/send",
			bytes.NewBufferString(`{"chat_id":12345,"message":"привет"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := NewTelegramSendHandler(NewMockMessageRelay(ctrl))
		req := httptest.NewRequest(http.MethodPost, "/telegram/send",
			bytes.NewBufferString(`{"chat_id":"12345"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "chat_id and message are required", resp.Error)
	})

	t.Run("relay failure", func(t *testing.T) {
		mockSvc := NewMockMessageRelay(ctrl)
		mockSvc.EXPECT().
			Relay(gomock.Any(), "12345", "msg", "").
			Return(nil, errors.New("telegram API error: bad request"))

		handler := NewTelegramSendHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/telegram/send",
			bytes.NewBufferString(`{"chat_id":"12345","message":"msg"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		handler := NewTelegramSendHandler(NewMockMessageRelay(ctrl))
		req := httptest.NewRequest(http.MethodGet, "/telegram/send", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestTelegramWebhookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("acknowledges update", func(t *testing.T) {
		mockSvc := NewMockUpdateHandler(ctrl)
		mockSvc.EXPECT().
			HandleUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update models.TelegramUpdate) error {
				assert.NotNil(t, update.Message)
				assert.Equal(t, "/start", update.Message.Text)
				assert.Equal(t, int64(777), update.Message.Chat.ID)
				return nil
			})

		handler := NewTelegramWebhookHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/telegram/webhook",
			bytes.NewBufferString(`{"message":{"chat":{"id":777},"text":"/start"}}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]bool
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp["ok"])
	})

	t.Run("update without message is acknowledged", func(t *testing.T) {
		mockSvc := NewMockUpdateHandler(ctrl)
		mockSvc.EXPECT().
			HandleUpdate(gomock.Any(), models.TelegramUpdate{}).
			Return(nil)

		handler := NewTelegramWebhookHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/telegram/webhook",
			bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "abc", stringValue("abc"))
	assert.Equal(t, "42", stringValue(json.Number("42")))
	assert.Equal(t, "42", stringValue(float64(42)))
	assert.Equal(t, "", stringValue(nil))
	assert.Equal(t, "", stringValue(true))
}
