package services

import (
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// Error variables
var (
	ErrAuthRequired  = errors.New("authentication required")
	ErrAdminRequired = errors.New("admin access required")
	ErrNoBrokers     = errors.New("no brokers found")
)

// Rows above this index are sheet headers, not listings.
const sheetHeaderRows = 3

const importStockImage = "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop"

// BrokerLister enumerates brokers and resolves the acting user.
type BrokerLister interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	ListBrokers(ctx context.Context) ([]models.UserShort, error)
}

// ImportObjectWriter replaces a broker's objects during a sheet sync.
type ImportObjectWriter interface {
	Insert(ctx context.Context, obj models.ObjectDB) (*models.ObjectDB, error)
	DeleteByBroker(ctx context.Context, brokerID int64) (int64, error)
}

// SheetFetcher downloads a sheet tab as CSV text.
type SheetFetcher interface {
	FetchSheetCSV(ctx context.Context, sheetName string) (string, error)
}

// ImporterService syncs broker listings from a shared spreadsheet into
// storage. The sync is a destructive full replace: each broker's objects are
// deleted before the sheet rows are reinserted.
type ImporterService struct {
	users   BrokerLister
	objects ImportObjectWriter
	sheets  SheetFetcher
}

// NewImporterService creates a new ImporterService instance.
func NewImporterService(users BrokerLister, objects ImportObjectWriter, sheets SheetFetcher) *ImporterService {
	return &ImporterService{users: users, objects: objects, sheets: sheets}
}

// ImportAll runs the sync for every broker. Only admins may trigger it.
// Per-broker fetch and mapping failures are reported in the summary without
// aborting the run.
func (svc *ImporterService) ImportAll(ctx context.Context, actorID *int64) (*models.ImportReport, error) {
	if actorID == nil {
		return nil, ErrAuthRequired
	}

	actor, err := svc.users.GetByID(ctx, *actorID)
	if err != nil {
		logger.Log.Errorw("failed to resolve import actor", "actor_id", *actorID, "err", err)
		return nil, err
	}
	if actor == nil || !actor.IsAdmin {
		return nil, ErrAdminRequired
	}

	brokers, err := svc.users.ListBrokers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list brokers", "err", err)
		return nil, err
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	report := &models.ImportReport{
		Message: "Import completed",
		Brokers: make([]models.BrokerImportResult, 0, len(brokers)),
	}

	for _, broker := range brokers {
		result := svc.importBroker(ctx, broker)
		report.TotalDeleted += result.Deleted
		report.TotalImported += result.Imported
		report.Brokers = append(report.Brokers, result)
	}

	return report, nil
}

// importBroker syncs one broker's sheet tab (named after the broker).
func (svc *ImporterService) importBroker(ctx context.Context, broker models.UserShort) models.BrokerImportResult {
	csvText, err := svc.sheets.FetchSheetCSV(ctx, broker.Name)
	if err != nil {
		return models.BrokerImportResult{Broker: broker.Name, Status: "error", Message: err.Error()}
	}

	rows, err := parseSheetCSV(csvText)
	if err != nil {
		return models.BrokerImportResult{Broker: broker.Name, Status: "error", Message: err.Error()}
	}
	if len(rows) < 2 {
		return models.BrokerImportResult{Broker: broker.Name, Status: "skipped", Message: "No data or sheet not found"}
	}

	deleted, err := svc.objects.DeleteByBroker(ctx, broker.ID)
	if err != nil {
		return models.BrokerImportResult{Broker: broker.Name, Status: "error", Message: err.Error()}
	}

	imported := 0
	for i := sheetHeaderRows; i < len(rows); i++ {
		obj := mapSheetRow(rows[i], broker.ID)
		if obj == nil {
			continue
		}
		if _, err := svc.objects.Insert(ctx, *obj); err != nil {
			logger.Log.Errorw("failed to import object", "broker", broker.Name, "row", i, "err", err)
			continue
		}
		imported++
	}

	return models.BrokerImportResult{
		Broker:   broker.Name,
		Status:   "success",
		Deleted:  int(deleted),
		Imported: imported,
	}
}

// parseSheetCSV reads the whole CSV export, tolerating ragged rows.
func parseSheetCSV(text string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		empty := true
		for _, col := range record {
			if strings.TrimSpace(col) != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, record)
		}
	}
	return rows, nil
}

// mapSheetRow converts a sheet row into an object, or nil when the row is a
// header or carries no title. Sheet-only columns with no counterpart in the
// object model are dropped.
func mapSheetRow(row []string, brokerID int64) *models.ObjectDB {
	title := sheetCol(row, 0)
	if title == "" || title == "Объект / фокус внимания" {
		return nil
	}

	return &models.ObjectDB{
		BrokerID:     &brokerID,
		Title:        title,
		City:         "Москва",
		Address:      "",
		PropertyType: "flats",
		Area:         0,
		Price:        parseSheetNumber(sheetCol(row, 4)),
		YieldPercent: parseSheetNumber(sheetCol(row, 8)),
		PaybackYears: 0,
		Description:  "Описание будет добавлено брокером",
		Images:       pq.StringArray{importStockImage},
		Videos:       pq.StringArray{},
		Documents:    pq.StringArray{},
		Status:       models.ObjectStatusAvailable,
	}
}

func sheetCol(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseSheetNumber extracts a numeric value from free-form sheet text.
// Placeholders like "?" and "н/д" and anything unparseable map to 0.
func parseSheetNumber(value string) float64 {
	if value == "" || value == "?" || value == "н/д" {
		return 0
	}

	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			b.WriteRune('.')
		case r == ',':
			b.WriteRune('.')
		}
	}

	result, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return result
}
