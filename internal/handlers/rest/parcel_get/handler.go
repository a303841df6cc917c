package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"curior/internal/service/parcel"
	"curior/pkg/logger"
)

type parcelResponse struct {
	ID               string    `json:"id"`
	TrackingID       string    `json:"tracking_id"`
	Receiver         string    `json:"receiver"`
	Address          string    `json:"address"`
	Postcode         string    `json:"postcode"`
	WithinZone       bool      `json:"within_zone"`
	Status           string    `json:"status"`
	AssignedDriverID *string   `json:"assigned_driver_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
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

	found, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := parcelResponse{
		ID:               found.ID,
		TrackingID:       found.TrackingID,
		Receiver:         found.Receiver,
		Address:          found.Address,
		Postcode:         found.Postcode,
		WithinZone:       found.WithinZone,
		Status:           found.Status.String(),
		AssignedDriverID: found.AssignedDriverID,
		CreatedAt:        found.CreatedAt,
		UpdatedAt:        found.UpdatedAt,
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
