package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetsFacade_FetchSheetCSV(t *testing.T) {
	const csvBody = `"Объект","Цена"
"Лофт","12 500 000"
`

	var gotPath, gotSheet, gotFormat string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSheet = r.URL.Query().Get("sheet")
		gotFormat = r.URL.Query().Get("tqx")
		w.Write([]byte(csvBody))
	}))
	defer server.Close()

	facade := NewSheetsFacade("sheet-id-1", server.URL)

	body, err := facade.FetchSheetCSV(context.Background(), "Мария Иванова")
	assert.NoError(t, err)
	assert.Equal(t, csvBody, body)

	assert.Equal(t, "/spreadsheets/d/sheet-id-1/gviz/tq", gotPath)
	// The tab name survives query escaping.
	assert.Equal(t, "Мария Иванова", gotSheet)
	assert.Equal(t, "out:csv", gotFormat)
}

func TestSheetsFacade_FetchSheetCSV_MissingTab(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	facade := NewSheetsFacade("sheet-id-1", server.URL)

	body, err := facade.FetchSheetCSV(context.Background(), "Неизвестный")
	assert.Empty(t, body)
	assert.ErrorContains(t, err, "sheet export error: status 404")
}
