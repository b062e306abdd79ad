package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type ResultsHandler struct {
	service       ports.ResultService
	secureCookies bool
}

func NewResultsHandler(service ports.ResultService, secureCookies bool) *ResultsHandler {
	return &ResultsHandler{
		service:       service,
		secureCookies: secureCookies,
	}
}

type submitResultRequest struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Submit godoc
// @Summary      Submits the session's daily score
// @Description  First submission wins; replays return the stored score unchanged.
// @Tags         results
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /daily/results [post]
func (h *ResultsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	sessionID := ensureSession(w, r, h.secureCookies)

	outcome, err := h.service.Submit(r.Context(), sessionID, date, req.Score)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScore) {
			respondError(w, http.StatusBadRequest, "score out of range")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to save result")
		return
	}
	if outcome.AlreadyPlayed {
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "result already recorded",
			"score":   outcome.Score,
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"score":   outcome.Score,
	})
}

// Average godoc
// @Summary      Returns today's average score
// @Tags         results
// @Produce      json
// @Success      200  {object}  ports.DailyAverage
// @Router       /daily/results [get]
func (h *ResultsHandler) Average(w http.ResponseWriter, r *http.Request) {
	date, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	avg, err := h.service.Average(r.Context(), date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load daily average")
		return
	}
	respondJSON(w, http.StatusOK, avg)
}

// SessionBreakdown godoc
// @Summary      Returns the session's per-round breakdown for today
// @Description  Each round with both items, their popularity, the crowd favorite and the session's pick.
// @Tags         results
// @Produce      json
// @Success      200  {object}  ports.SessionResults
// @Failure      404
// @Router       /scrandle/results [get]
func (h *ResultsHandler) SessionBreakdown(w http.ResponseWriter, r *http.Request) {
	date, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	sessionID := currentSession(r)
	if sessionID == "" {
		respondError(w, http.StatusNotFound, "no session")
		return
	}

	results, err := h.service.Compute(r.Context(), sessionID, date)
	if err != nil {
		if errors.Is(err, domain.ErrRoundNotFound) {
			respondError(w, http.StatusNotFound, "no rounds for today")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to compute results")
		return
	}
	respondJSON(w, http.StatusOK, results)
}
