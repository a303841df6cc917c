package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"curior/internal/entities"
	"curior/internal/pkg/middlewares/session"
	"curior/internal/service/order"
	"curior/pkg/logger"
)

type statusUpdate struct {
	Status string `json:"status"`
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type rejection struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
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

	id := mux.Vars(r)["id"]

	var statusUpdateDTO statusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := entities.OrderStatusType(statusUpdateDTO.Status)
	updated, err := h.service.UpdateStatus(r.Context(), id, target, s.Role)
	if err != nil {
		h.writeRejection(w, err)
		return
	}

	response := statusResponse{
		ID:     updated.ID,
		Status: updated.Status.String(),
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

func (h *Handler) writeRejection(w http.ResponseWriter, err error) {
	var reason string
	switch {
	case errors.Is(err, order.ErrMissingRequiredFields),
		errors.Is(err, order.ErrInvalidStatus):
		w.WriteHeader(http.StatusBadRequest)
		return
	case errors.Is(err, order.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, order.ErrUnauthorized):
		w.WriteHeader(http.StatusForbidden)
		return
	case errors.Is(err, order.ErrTerminalState):
		reason = "terminal_state"
	case errors.Is(err, order.ErrInvalidTransition):
		reason = "invalid_transition"
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	encodeErr := json.NewEncoder(w).Encode(rejection{
		Error:  err.Error(),
		Reason: reason,
	})
	if encodeErr != nil {
		h.log.With(
			logger.NewField("error", encodeErr),
		).Error("encode JSON response")
	}
}
