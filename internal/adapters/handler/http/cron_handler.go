package http

import (
	"errors"
	"net/http"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type CronHandler struct {
	service ports.RoundService
}

func NewCronHandler(service ports.RoundService) *CronHandler {
	return &CronHandler{
		service: service,
	}
}

// GenerateDaily godoc
// @Summary      Generates today's rounds
// @Description  Idempotent; calling again on a generated day reports the existing rounds.
// @Tags         cron
// @Produce      json
// @Success      200
// @Failure      401
// @Failure      500
// @Router       /cron/daily [get]
// @Security     BearerAuth
func (h *CronHandler) GenerateDaily(w http.ResponseWriter, r *http.Request) {
	date := today()
	result, err := h.service.GenerateDaily(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCandidates) {
			respondError(w, http.StatusInternalServerError, "not enough eligible items")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to generate rounds")
		return
	}

	message := "rounds generated"
	if !result.Created {
		message = "rounds already exist for today"
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"date":    date,
		"rounds":  len(result.Rounds),
	})
}
