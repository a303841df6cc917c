package parcels_assigned_get

import (
	"encoding/json"
	"net/http"
	"time"

	"curior/internal/entities"
	"curior/internal/pkg/middlewares/session"
	"curior/pkg/logger"
)

type parcelRow struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"tracking_id"`
	Receiver   string    `json:"receiver"`
	Address    string    `json:"address"`
	Postcode   string    `json:"postcode"`
	WithinZone bool      `json:"within_zone"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
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

// Drivers see only their own parcels; the driver id comes from the
// session, never from the query string.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if s.Role != entities.RoleDriver {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	parcels, err := h.service.ListAssignedParcels(r.Context(), s.UserID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rows := make([]parcelRow, len(parcels))
	for i, p := range parcels {
		rows[i] = parcelRow{
			ID:         p.ID,
			TrackingID: p.TrackingID,
			Receiver:   p.Receiver,
			Address:    p.Address,
			Postcode:   p.Postcode,
			WithinZone: p.WithinZone,
			Status:     p.Status.String(),
			CreatedAt:  p.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(rows)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
