package parcel_assign_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"curior/internal/pkg/middlewares/session"
	"curior/internal/service/parcel"
	"curior/pkg/logger"
)

type assignRequest struct {
	DriverID string `json:"driver_id"`
}

type assignResponse struct {
	ID               string  `json:"id"`
	Status           string  `json:"status"`
	AssignedDriverID *string `json:"assigned_driver_id"`
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

	var assignDTO assignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.AssignDriver(r.Context(), id, assignDTO.DriverID, s.Role)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrInvalidState):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			encodeErr := json.NewEncoder(w).Encode(rejection{
				Error:  err.Error(),
				Reason: "invalid_state",
			})
			if encodeErr != nil {
				h.log.With(
					logger.NewField("error", encodeErr),
				).Error("encode JSON response")
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := assignResponse{
		ID:               updated.ID,
		Status:           updated.Status.String(),
		AssignedDriverID: updated.AssignedDriverID,
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
