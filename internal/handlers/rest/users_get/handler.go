package users_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"curior/internal/entities"
	"curior/internal/pkg/middlewares/session"
	"curior/internal/service/user"
	"curior/pkg/logger"
	"curior/pkg/tabular"
)

const defaultPageSize = 5

type userRow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type listResponse struct {
	Items      []userRow `json:"items"`
	TotalCount int       `json:"total_count"`
	TotalPages int       `json:"total_pages"`
	Page       int       `json:"page"`
}

var userFields = tabular.Fields[entities.User]{
	Search: []func(entities.User) string{
		func(u entities.User) string { return u.Name },
		func(u entities.User) string { return u.Email },
	},
	Filter: map[string]func(entities.User) string{
		"role": func(u entities.User) string { return u.Role.String() },
	},
	Sort: map[string]func(a, b entities.User) int{
		"name":       func(a, b entities.User) int { return strings.Compare(a.Name, b.Name) },
		"email":      func(a, b entities.User) int { return strings.Compare(a.Email, b.Email) },
		"role":       func(a, b entities.User) int { return strings.Compare(a.Role.String(), b.Role.String()) },
		"created_at": func(a, b entities.User) int { return a.CreatedAt.Compare(b.CreatedAt) },
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
	s, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	users, err := h.service.ListUsers(r.Context(), s.Role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	query := queryFromRequest(r)
	result := tabular.Paginate(users, query, userFields)

	rows := make([]userRow, len(result.Rows))
	for i, u := range result.Rows {
		rows[i] = userRow{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role.String(),
			CreatedAt: u.CreatedAt,
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
			"role": values.Get("role"),
		},
		Sort: tabular.Sort{
			Key:       values.Get("sort_by"),
			Direction: direction,
		},
		Page:     page,
		PageSize: pageSize,
	}
}
