package facades

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vozduh-dev/invest-api/internal/logger"
)

// SheetsFacade fetches per-broker CSV exports from a public Google
// spreadsheet.
type SheetsFacade struct {
	client  *resty.Client
	sheetID string
}

// NewSheetsFacade creates a facade for the given spreadsheet id. An empty
// baseURL defaults to the public docs host.
func NewSheetsFacade(sheetID, baseURL string) *SheetsFacade {
	if baseURL == "" {
		baseURL = "https://docs.google.com"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	client.AddRetryCondition(retryCondition)

	return &SheetsFacade{client: client, sheetID: sheetID}
}

// FetchSheetCSV downloads the CSV export of a single sheet tab by name.
func (f *SheetsFacade) FetchSheetCSV(ctx context.Context, sheetName string) (string, error) {
	path := fmt.Sprintf("/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		f.sheetID, url.QueryEscape(sheetName))

	resp, err := f.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		logger.Log.Errorw("sheet fetch failed", "sheet", sheetName, "error", err)
		return "", err
	}

	if resp.IsError() {
		err := fmt.Errorf("sheet export error: status %d", resp.StatusCode())
		logger.Log.Errorw("sheet fetch rejected", "sheet", sheetName, "status", resp.StatusCode())
		return "", err
	}

	return resp.String(), nil
}
