package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"curior/internal/entities"
	"curior/internal/pkg/middlewares/session"
	"curior/internal/service/order"
	"curior/pkg/logger"
)

type orderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type orderCreate struct {
	OrderID         string      `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []orderItem `json:"items"`
}

type orderResponse struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []orderItem `json:"items"`
	Status          string      `json:"status"`
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
	s, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var orderCreateDTO orderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, len(orderCreateDTO.Items))
	for i, item := range orderCreateDTO.Items {
		items[i] = entities.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		}
	}

	orderModify := entities.OrderModify{
		OrderID:         &orderCreateDTO.OrderID,
		CustomerName:    &orderCreateDTO.CustomerName,
		ShippingAddress: &orderCreateDTO.ShippingAddress,
		Items:           items,
	}

	created, err := h.service.CreateOrder(r.Context(), orderModify, s.Role)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidItems):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	responseItems := make([]orderItem, len(created.Items))
	for i, item := range created.Items {
		responseItems[i] = orderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		}
	}

	response := orderResponse{
		ID:              created.ID,
		OrderID:         created.OrderID,
		CustomerName:    created.CustomerName,
		ShippingAddress: created.ShippingAddress,
		Items:           responseItems,
		Status:          created.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
