package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type VoteHandler struct {
	service       ports.VoteService
	secureCookies bool
}

func NewVoteHandler(service ports.VoteService, secureCookies bool) *VoteHandler {
	return &VoteHandler{
		service:       service,
		secureCookies: secureCookies,
	}
}

type scrandleVoteRequest struct {
	DailyRoundID int64 `json:"dailyRoundId"`
	ChosenItemID int64 `json:"chosenItemId"`
}

type voteResponse struct {
	Success bool `json:"success"`
	*ports.VoteOutcome
}

// Vote godoc
// @Summary      Records a vote on a daily round
// @Description  One vote per session per round. The chosen item's like counter is bumped.
// @Tags         scrandle
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.VoteOutcome
// @Failure      400
// @Failure      404
// @Failure      409
// @Router       /scrandle/vote [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req scrandleVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DailyRoundID == 0 || req.ChosenItemID == 0 {
		respondError(w, http.StatusBadRequest, "missing vote fields")
		return
	}

	sessionID := ensureSession(w, r, h.secureCookies)

	outcome, err := h.service.Record(r.Context(), ports.RecordVoteInput{
		SessionID:     sessionID,
		DailyRoundID:  req.DailyRoundID,
		ChosenScranID: req.ChosenItemID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoundNotFound) {
			respondError(w, http.StatusNotFound, "round not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidRound) {
			respondError(w, http.StatusBadRequest, "item does not belong to round")
			return
		}
		if errors.Is(err, domain.ErrDuplicateVote) {
			respondError(w, http.StatusConflict, "already voted on this round")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to record vote")
		return
	}
	respondJSON(w, http.StatusOK, voteResponse{Success: true, VoteOutcome: outcome})
}
