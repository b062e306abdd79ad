package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

const (
	dailyVoteRateLimit  = 2
	dailyVoteRateWindow = 5 * time.Second
)

type DailyHandler struct {
	roundService ports.RoundService
	voteService  ports.VoteService
	limiter      ports.RateLimiter
}

func NewDailyHandler(roundService ports.RoundService, voteService ports.VoteService, limiter ports.RateLimiter) *DailyHandler {
	return &DailyHandler{
		roundService: roundService,
		voteService:  voteService,
		limiter:      limiter,
	}
}

// GetDaily godoc
// @Summary      Returns today's board
// @Description  The ten matchups for the current UTC day, with both items of each pair.
// @Tags         daily
// @Produce      json
// @Param        date  query  string  false  "day (YYYY-MM-DD), defaults to today"
// @Success      200  {object}  ports.DailyBoard
// @Failure      400
// @Failure      404
// @Router       /daily [get]
func (h *DailyHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	date, err := requestDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	board, err := h.roundService.GetDaily(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrRoundNotFound) {
			respondError(w, http.StatusNotFound, "no rounds for today")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load daily rounds")
		return
	}
	respondJSON(w, http.StatusOK, board)
}

type dailyVoteRequest struct {
	RoundNumber  int   `json:"roundNumber"`
	ChosenItemID int64 `json:"chosenItemId"`
	ItemAID      int64 `json:"itemAId"`
	ItemBID      int64 `json:"itemBId"`
}

// Vote godoc
// @Summary      Judges a stateless vote
// @Description  Tells whether the chosen item is the crowd favorite of the pair. Records nothing.
// @Tags         daily
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.VoteOutcome
// @Failure      400
// @Failure      404
// @Failure      429
// @Router       /daily/vote [post]
func (h *DailyHandler) Vote(w http.ResponseWriter, r *http.Request) {
	res := h.limiter.Check(r.Context(), "daily-vote:"+clientIP(r), dailyVoteRateLimit, dailyVoteRateWindow)
	if !res.Allowed {
		respondError(w, http.StatusTooManyRequests, "too many votes, slow down")
		return
	}

	var req dailyVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChosenItemID == 0 || req.ItemAID == 0 || req.ItemBID == 0 {
		respondError(w, http.StatusBadRequest, "missing vote fields")
		return
	}

	outcome, err := h.voteService.Judge(r.Context(), ports.JudgeVoteInput{
		RoundNumber:   req.RoundNumber,
		ChosenScranID: req.ChosenItemID,
		ScranAID:      req.ItemAID,
		ScranBID:      req.ItemBID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrScranNotFound) {
			respondError(w, http.StatusNotFound, "unknown item")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to judge vote")
		return
	}
	respondJSON(w, http.StatusOK, voteResponse{Success: true, VoteOutcome: outcome})
}
