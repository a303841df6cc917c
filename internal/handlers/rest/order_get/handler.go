package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"curior/internal/entities"
	"curior/internal/service/order"
	"curior/pkg/logger"
)

type orderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []orderItem `json:"items"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
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
	id := mux.Vars(r)["id"]

	found, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := orderResponse{
		ID:              found.ID,
		OrderID:         found.OrderID,
		CustomerName:    found.CustomerName,
		ShippingAddress: found.ShippingAddress,
		Items:           itemsFromDomain(found.Items),
		Status:          found.Status.String(),
		CreatedAt:       found.CreatedAt,
		UpdatedAt:       found.UpdatedAt,
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

func itemsFromDomain(items []entities.OrderItem) []orderItem {
	converted := make([]orderItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, orderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return converted
}
