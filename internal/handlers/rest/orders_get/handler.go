package orders_get

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

type orderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type orderRow struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []orderItem `json:"items"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type listResponse struct {
	Items      []orderRow `json:"items"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
	Page       int        `json:"page"`
}

var orderFields = tabular.Fields[entities.Order]{
	Search: []func(entities.Order) string{
		func(o entities.Order) string { return o.OrderID },
		func(o entities.Order) string { return o.CustomerName },
	},
	Filter: map[string]func(entities.Order) string{
		"status": func(o entities.Order) string { return o.Status.String() },
	},
	Sort: map[string]func(a, b entities.Order) int{
		"order_id":      func(a, b entities.Order) int { return strings.Compare(a.OrderID, b.OrderID) },
		"customer_name": func(a, b entities.Order) int { return strings.Compare(a.CustomerName, b.CustomerName) },
		"status":        func(a, b entities.Order) int { return strings.Compare(a.Status.String(), b.Status.String()) },
		"created_at":    func(a, b entities.Order) int { return a.CreatedAt.Compare(b.CreatedAt) },
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
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	query := queryFromRequest(r)
	result := tabular.Paginate(orders, query, orderFields)

	rows := make([]orderRow, len(result.Rows))
	for i, o := range result.Rows {
		items := make([]orderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = orderItem{
				Name:     item.Name,
				Quantity: item.Quantity,
			}
		}
		rows[i] = orderRow{
			ID:              o.ID,
			OrderID:         o.OrderID,
			CustomerName:    o.CustomerName,
			ShippingAddress: o.ShippingAddress,
			Items:           items,
			Status:          o.Status.String(),
			CreatedAt:       o.CreatedAt,
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
