package parcel_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"curior/internal/entities"
	"curior/internal/pkg/middlewares/session"
	"curior/internal/service/parcel"
	"curior/pkg/logger"
)

type parcelUpdate struct {
	Receiver *string `json:"receiver,omitempty"`
	Address  *string `json:"address,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
}

type parcelResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"tracking_id"`
	Receiver   string `json:"receiver"`
	Address    string `json:"address"`
	Postcode   string `json:"postcode"`
	WithinZone bool   `json:"within_zone"`
	Status     string `json:"status"`
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

	var parcelUpdateDTO parcelUpdate
	err := json.NewDecoder(r.Body).Decode(&parcelUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModify := entities.ParcelModify{
		ID:       &id,
		Receiver: parcelUpdateDTO.Receiver,
		Address:  parcelUpdateDTO.Address,
		Postcode: parcelUpdateDTO.Postcode,
	}

	updated, err := h.service.UpdateParcel(r.Context(), parcelModify, s.Role)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := parcelResponse{
		ID:         updated.ID,
		TrackingID: updated.TrackingID,
		Receiver:   updated.Receiver,
		Address:    updated.Address,
		Postcode:   updated.Postcode,
		WithinZone: updated.WithinZone,
		Status:     updated.Status.String(),
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
