package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"curior/internal/entities"
	"curior/internal/pkg/middlewares/session"
	"curior/internal/service/parcel"
	"curior/pkg/logger"
)

type parcelCreate struct {
	TrackingID string `json:"tracking_id"`
	Receiver   string `json:"receiver"`
	Address    string `json:"address"`
	Postcode   string `json:"postcode"`
}

type parcelResponse struct {
	ID               string  `json:"id"`
	TrackingID       string  `json:"tracking_id"`
	Receiver         string  `json:"receiver"`
	Address          string  `json:"address"`
	Postcode         string  `json:"postcode"`
	WithinZone       bool    `json:"within_zone"`
	Status           string  `json:"status"`
	AssignedDriverID *string `json:"assigned_driver_id,omitempty"`
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

	var parcelCreateDTO parcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModify := entities.ParcelModify{
		TrackingID: &parcelCreateDTO.TrackingID,
		Receiver:   &parcelCreateDTO.Receiver,
		Address:    &parcelCreateDTO.Address,
		Postcode:   &parcelCreateDTO.Postcode,
	}

	created, err := h.service.CreateParcel(r.Context(), parcelModify, s.Role)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := parcelResponse{
		ID:               created.ID,
		TrackingID:       created.TrackingID,
		Receiver:         created.Receiver,
		Address:          created.Address,
		Postcode:         created.Postcode,
		WithinZone:       created.WithinZone,
		Status:           created.Status.String(),
		AssignedDriverID: created.AssignedDriverID,
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
