package parcels_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"curior/internal/entities"
	"curior/pkg/logger"
	"curior/pkg/tabular"
)

const defaultPageSize = 5

type parcelRow struct {
	ID               string    `json:"id"`
	TrackingID       string    `json:"tracking_id"`
	Receiver         string    `json:"receiver"`
	Address          string    `json:"address"`
	Postcode         string    `json:"postcode"`
	WithinZone       bool      `json:"within_zone"`
	Status           string    `json:"status"`
	AssignedDriverID *string   `json:"assigned_driver_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type listResponse struct {
	Items      []parcelRow `json:"items"`
	TotalCount int         `json:"total_count"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
}

// parcelFields configures the list-view engine for the parcels table.
var parcelFields = tabular.Fields[entities.Parcel]{
	Search: []func(entities.Parcel) string{
		func(p entities.Parcel) string { return p.TrackingID },
		func(p entities.Parcel) string { return p.Receiver },
	},
	Filter: map[string]func(entities.Parcel) string{
		"status": func(p entities.Parcel) string { return p.Status.String() },
	},
	Sort: map[string]func(a, b entities.Parcel) int{
		"tracking_id": func(a, b entities.Parcel) int { return strings.Compare(a.TrackingID, b.TrackingID) },
		"receiver":    func(a, b entities.Parcel) int { return strings.Compare(a.Receiver, b.Receiver) },
		"status":      func(a, b entities.Parcel) int { return strings.Compare(a.Status.String(), b.Status.String()) },
		"created_at":  func(a, b entities.Parcel) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcels, err := h.service.ListParcels(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	query := queryFromRequest(r)
	result := tabular.Paginate(parcels, query, parcelFields)

	rows := make([]parcelRow, len(result.Rows))
	for i, p := range result.Rows {
		rows[i] = parcelRow{
			ID:               p.ID,
			TrackingID:       p.TrackingID,
			Receiver:         p.Receiver,
			Address:          p.Address,
			Postcode:         p.Postcode,
			WithinZone:       p.WithinZone,
			Status:           p.Status.String(),
			AssignedDriverID: p.AssignedDriverID,
			CreatedAt:        p.CreatedAt,
		}
	}

	response := listResponse{
		Items:      rows,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
		Page:       query.Page,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func queryFromRequest(r *http.Request) tabular.Query {
	values := r.URL.Query()

	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(values.Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}

	direction := tabular.Asc
	if values.Get("sort_dir") == string(tabular.Desc) {
		direction = tabular.Desc
	}

	return tabular.Query{
		Search: values.Get("search"),
		Filters: map[string]string{
			"status": values.Get("status"),
		},
		Sort: tabular.Sort{
			Key:       values.Get("sort_by"),
			Direction: direction,
		},
		Page:     page,
		PageSize: pageSize,
	}
}
