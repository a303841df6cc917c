package status_report_get

import (
	"encoding/json"
	"net/http"

	"curior/pkg/logger"
)

type statusReport struct {
	Counts map[string]int64 `json:"counts"`
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
	counts, err := h.service.StatusCounts(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := statusReport{
		Counts: make(map[string]int64, len(counts)),
	}
	for status, count := range counts {
		response.Counts[status.String()] = count
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
