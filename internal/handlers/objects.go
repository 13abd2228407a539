package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lib/pq"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/services"
)

// ObjectProvider defines the interface that the objects service must implement.
type ObjectProvider interface {
	Get(ctx context.Context, id int64) (*models.ObjectDB, error)
	List(ctx context.Context, filter models.ObjectFilter) ([]models.ObjectDB, error)
	Create(ctx context.Context, obj models.ObjectDB) (*models.ObjectDB, error)
	Update(ctx context.Context, id int64, actorID *int64, upd models.ObjectUpdate) (*models.ObjectDB, error)
}

// CreateObjectRequest represents the JSON body for object creation
// swagger:model CreateObjectRequest
type CreateObjectRequest struct {
	BrokerID     *int64   `json:"broker_id"`
	Title        string   `json:"title"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	PropertyType string   `json:"property_type"`
	Area         float64  `json:"area"`
	Price        float64  `json:"price"`
	YieldPercent float64  `json:"yield_percent"`
	PaybackYears float64  `json:"payback_years"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Videos       []string `json:"videos"`
	Documents    []string `json:"documents"`
	Status       string   `json:"status"`
}

// UpdateObjectRequest represents the JSON body for a partial object update.
// Only the whitelisted fields are applied; absent fields stay untouched.
// swagger:model UpdateObjectRequest
type UpdateObjectRequest struct {
	ID           *int64    `json:"id"`
	Status       *string   `json:"status"`
	Price        *float64  `json:"price"`
	YieldPercent *float64  `json:"yield_percent"`
	Description  *string   `json:"description"`
	Images       *[]string `json:"images"`
	Videos       *[]string `json:"videos"`
	Documents    *[]string `json:"documents"`
}

// NewObjectsHandler returns the HTTP handler for the objects resource.
// @Summary Objects resource
// @Description GET one object by id or a filtered list (city/property_type/status exact, min/max price and yield inclusive), POST a new object, PUT a whitelisted partial update with an ownership check on the caller-asserted identity.
// @Tags objects
// @Accept json
// @Produce json
// @Param id query int false "Object id"
// @Param city query string false "Exact city match"
// @Param property_type query string false "Exact property type match"
// @Param status query string false "Exact status match"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param min_yield query number false "Inclusive lower yield bound"
// @Param max_yield query number false "Inclusive upper yield bound"
// @Success 200 {array} models.ObjectDB
// @Failure 404 {object} handlers.ErrorResponse "Object not found"
// @Router /api [get]
func NewObjectsHandler(svc ObjectProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getObjects(svc, w, r)
		case http.MethodPost:
			createObject(svc, w, r)
		case http.MethodPut:
			updateObject(svc, w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func getObjects(svc ObjectProvider, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if rawID := query.Get("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid object id")
			return
		}
		obj, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrObjectNotFound) {
				writeError(w, http.StatusNotFound, "Object not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, obj)
		return
	}

	objects, err := svc.List(r.Context(), objectFilterFromQuery(r))
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, objects)
}

// objectFilterFromQuery translates query parameters into the conjunctive
// filter set. Absent parameters are no-ops; unparseable bounds are ignored.
func objectFilterFromQuery(r *http.Request) models.ObjectFilter {
	query := r.URL.Query()
	var filter models.ObjectFilter

	if city := query.Get("city"); city != "" {
		filter.City = &city
	}
	if propertyType := query.Get("property_type"); propertyType != "" {
		filter.PropertyType = &propertyType
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	filter.MinPrice = floatQueryParam(query.Get("min_price"))
	filter.MaxPrice = floatQueryParam(query.Get("max_price"))
	filter.MinYield = floatQueryParam(query.Get("min_yield"))
	filter.MaxYield = floatQueryParam(query.Get("max_yield"))

	return filter
}

func floatQueryParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func createObject(svc ObjectProvider, w http.ResponseWriter, r *http.Request) {
	var req CreateObjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Truthiness check carried over from the source system: zero numeric
	// values are rejected as missing.
	if req.Title == "" || req.City == "" || req.Address == "" || req.PropertyType == "" ||
		req.Area == 0 || req.Price == 0 || req.YieldPercent == 0 || req.PaybackYears == 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	status := req.Status
	if status == "" {
		status = models.ObjectStatusAvailable
	}

	obj := models.ObjectDB{
		BrokerID:     req.BrokerID,
		Title:        req.Title,
		City:         req.City,
		Address:      req.Address,
		PropertyType: req.PropertyType,
		Area:         req.Area,
		Price:        req.Price,
		YieldPercent: req.YieldPercent,
		PaybackYears: req.PaybackYears,
		Description:  req.Description,
		Images:       stringArray(req.Images),
		Videos:       stringArray(req.Videos),
		Documents:    stringArray(req.Documents),
		Status:       status,
	}

	created, err := svc.Create(r.Context(), obj)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func updateObject(svc ObjectProvider, w http.ResponseWriter, r *http.Request) {
	var req UpdateObjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Object ID is required")
		return
	}
	if req.ID == nil {
		writeError(w, http.StatusBadRequest, "Object ID is required")
		return
	}

	upd := models.ObjectUpdate{
		Status:       req.Status,
		Price:        req.Price,
		YieldPercent: req.YieldPercent,
		Description:  req.Description,
		Images:       arrayField(req.Images),
		Videos:       arrayField(req.Videos),
		Documents:    arrayField(req.Documents),
	}
	if upd.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	updated, err := svc.Update(r.Context(), *req.ID, actorIDFromRequest(r), upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccessDenied):
			writeError(w, http.StatusForbidden, "Access denied: only object owner or admin can edit")
		case errors.Is(err, services.ErrObjectNotFound):
			writeError(w, http.StatusNotFound, "Object not found")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func arrayField(values *[]string) *pq.StringArray {
	if values == nil {
		return nil
	}
	arr := pq.StringArray(*values)
	return &arr
}
