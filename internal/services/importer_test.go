package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vozduh-dev/invest-api/internal/models"
)

const brokerSheetCSV = `"Объекты брокера","","","","","","","",""
"Обновлено: август 2026","","","","","","","",""
"Объект / фокус внимания","Локация","Метро","Срок","Цена","Ремонт","Мебель","Документы","Доходность"
"Лофт на Чистых прудах","ЦАО","Чистые пруды","2024","12 500 000","да","да","да","8,5%"
"Студия у метро","САО","Войковская","2025","6 200 000","нет","нет","да","?"
"","","","","","","","",""
`

func TestImporterService_ImportAll_Access(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("requires an identity", func(t *testing.T) {
		svc := NewImporterService(NewMockBrokerLister(ctrl), NewMockImportObjectWriter(ctrl), NewMockSheetFetcher(ctrl))

		_, err := svc.ImportAll(context.Background(), nil)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("requires an admin", func(t *testing.T) {
		mockUsers := NewMockBrokerLister(ctrl)
		svc := NewImporterService(mockUsers, NewMockImportObjectWriter(ctrl), NewMockSheetFetcher(ctrl))

		actorID := int64(2)
		mockUsers.EXPECT().
			GetByID(gomock.Any(), actorID).
			Return(&models.UserDB{ID: 2, Role: "broker"}, nil)

		_, err := svc.ImportAll(context.Background(), &actorID)
		assert.ErrorIs(t, err, ErrAdminRequired)
	})

	t.Run("unknown actor is rejected", func(t *testing.T) {
		mockUsers := NewMockBrokerLister(ctrl)
		svc := NewImporterService(mockUsers, NewMockImportObjectWriter(ctrl), NewMockSheetFetcher(ctrl))

		actorID := int64(1000)
		mockUsers.EXPECT().
			GetByID(gomock.Any(), actorID).
			Return(nil, nil)

		_, err := svc.ImportAll(context.Background(), &actorID)
		assert.ErrorIs(t, err, ErrAdminRequired)
	})

	t.Run("no brokers", func(t *testing.T) {
		mockUsers := NewMockBrokerLister(ctrl)
		svc := NewImporterService(mockUsers, NewMockImportObjectWriter(ctrl), NewMockSheetFetcher(ctrl))

		actorID := int64(1)
		mockUsers.EXPECT().
			GetByID(gomock.Any(), actorID).
			Return(&models.UserDB{ID: 1, IsAdmin: true}, nil)
		mockUsers.EXPECT().
			ListBrokers(gomock.Any()).
			Return([]models.UserShort{}, nil)

		_, err := svc.ImportAll(context.Background(), &actorID)
		assert.ErrorIs(t, err, ErrNoBrokers)
	})
}

func TestImporterService_ImportAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := int64(1)

	t.Run("replaces broker objects from the sheet", func(t *testing.T) {
		mockUsers := NewMockBrokerLister(ctrl)
		mockObjects := NewMockImportObjectWriter(ctrl)
		mockSheets := NewMockSheetFetcher(ctrl)
		svc := NewImporterService(mockUsers, mockObjects, mockSheets)

		mockUsers.EXPECT().
			GetByID(gomock.Any(), actorID).
			Return(&models.UserDB{ID: 1, IsAdmin: true}, nil)
		mockUsers.EXPECT().
			ListBrokers(gomock.Any()).
			Return([]models.UserShort{{ID: 2, Name: "Иван"}}, nil)
		mockSheets.EXPECT().
			FetchSheetCSV(gomock.Any(), "Иван").
			Return(brokerSheetCSV, nil)
		mockObjects.EXPECT().
			DeleteByBroker(gomock.Any(), int64(2)).
			Return(int64(3), nil)
		mockObjects.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, obj models.ObjectDB) (*models.ObjectDB, error) {
				assert.Equal(t, int64(2), *obj.BrokerID)
				assert.Equal(t, "Москва", obj.City)
				assert.Equal(t, "flats", obj.PropertyType)
				assert.Equal(t, "available", obj.Status)
				return &obj, nil
			}).
			Times(2)

		report, err := svc.ImportAll(context.Background(), &actorID)
		assert.NoError(t, err)
		assert.Equal(t, "Import completed", report.Message)
		assert.Equal(t, 3, report.TotalDeleted)
		assert.Equal(t, 2, report.TotalImported)
		assert.Len(t, report.Brokers, 1)
		assert.Equal(t, "success", report.Brokers[0].Status)
	})

	t.Run("fetch failure is reported without aborting the run", func(t *testing.T) {
		mockUsers := NewMockBrokerLister(ctrl)
		mockObjects := NewMockImportObjectWriter(ctrl)
		mockSheets := NewMockSheetFetcher(ctrl)
		svc := NewImporterService(mockUsers, mockObjects, mockSheets)

		mockUsers.EXPECT().
			GetByID(gomock.Any(), actorID).
			Return(&models.UserDB{ID: 1, IsAdmin: true}, nil)
		mockUsers.EXPECT().
			ListBrokers(gomock.Any()).
			Return([]models.UserShort{{ID: 2, Name: "Иван"}, {ID: 3, Name: "Мария"}}, nil)
		mockSheets.EXPECT().
			FetchSheetCSV(gomock.Any(), "Иван").
			Return("", errors.New("sheet export error: status 404"))
		mockSheets.EXPECT().
			FetchSheetCSV(gomock.Any(), "Мария").
			Return(brokerSheetCSV, nil)
		mockObjects.EXPECT().
			DeleteByBroker(gomock.Any(), int64(3)).
			Return(int64(0), nil)
		mockObjects.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&models.ObjectDB{}, nil).
			Times(2)

		report, err := svc.ImportAll(context.Background(), &actorID)
		assert.NoError(t, err)
		assert.Len(t, report.Brokers, 2)
		assert.Equal(t, "error", report.Brokers[0].Status)
		assert.Equal(t, "success", report.Brokers[1].Status)
	})

	t.Run("short sheet is skipped", func(t *testing.T) {
		mockUsers := NewMockBrokerLister(ctrl)
		mockSheets := NewMockSheetFetcher(ctrl)
		svc := NewImporterService(mockUsers, NewMockImportObjectWriter(ctrl), mockSheets)

		mockUsers.EXPECT().
			GetByID(gomock.Any(), actorID).
			Return(&models.UserDB{ID: 1, IsAdmin: true}, nil)
		mockUsers.EXPECT().
			ListBrokers(gomock.Any()).
			Return([]models.UserShort{{ID: 2, Name: "Иван"}}, nil)
		mockSheets.EXPECT().
			FetchSheetCSV(gomock.Any(), "Иван").
			Return(`"only one row"`, nil)

		report, err := svc.ImportAll(context.Background(), &actorID)
		assert.NoError(t, err)
		assert.Equal(t, "skipped", report.Brokers[0].Status)
		assert.Equal(t, "No data or sheet not found", report.Brokers[0].Message)
	})
}

func TestParseSheetCSV(t *testing.T) {
	rows, err := parseSheetCSV(brokerSheetCSV)
	assert.NoError(t, err)
	// Empty rows are dropped, ragged rows are tolerated.
	assert.Len(t, rows, 5)
	assert.Equal(t, "Лофт на Чистых прудах", rows[3][0])
}

func TestMapSheetRow(t *testing.T) {
	t.Run("maps a listing row", func(t *testing.T) {
		row := []string{"Лофт", "ЦАО", "Чистые пруды", "2024", "12 500 000", "да", "да", "да", "8,5%"}
		obj := mapSheetRow(row, 2)

		assert.NotNil(t, obj)
		assert.Equal(t, "Лофт", obj.Title)
		assert.Equal(t, 12500000.0, obj.Price)
		assert.Equal(t, 8.5, obj.YieldPercent)
		assert.Len(t, obj.Images, 1)
		assert.True(t, strings.HasPrefix(obj.Images[0], "https://"))
	})

	t.Run("skips the header row", func(t *testing.T) {
		assert.Nil(t, mapSheetRow([]string{"Объект / фокус внимания", "Локация"}, 2))
	})

	t.Run("skips rows without a title", func(t *testing.T) {
		assert.Nil(t, mapSheetRow([]string{"", "ЦАО"}, 2))
		assert.Nil(t, mapSheetRow([]string{}, 2))
	})
}

func TestParseSheetNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "12 500 000", want: 12500000},
		{raw: "8,5%", want: 8.5},
		{raw: "6.2", want: 6.2},
		{raw: "?", want: 0},
		{raw: "н/д", want: 0},
		{raw: "", want: 0},
		{raw: "нет данных", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSheetNumber(tt.raw))
		})
	}
}
