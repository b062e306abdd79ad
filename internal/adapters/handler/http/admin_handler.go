package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type AdminHandler struct {
	service  ports.ScranService
	verifier ports.CredentialVerifier
}

func NewAdminHandler(service ports.ScranService, verifier ports.CredentialVerifier) *AdminHandler {
	return &AdminHandler{
		service:  service,
		verifier: verifier,
	}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary      Checks the admin password
// @Description  Successful login means the client may send the password as a bearer token on admin routes.
// @Tags         admin
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.verifier.Verify(req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid password")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListItems godoc
// @Summary      Lists items for moderation
// @Tags         admin
// @Produce      json
// @Param        page   query  int     false  "page number"
// @Param        limit  query  int     false  "page size"
// @Param        sort   query  string  false  "sort field"
// @Param        order  query  string  false  "asc or desc"
// @Success      200  {object}  ports.ScranPage
// @Failure      401
// @Router       /admin/items [get]
// @Security     BearerAuth
func (h *AdminHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	pageResult, err := h.service.List(r.Context(), ports.ListScransInput{
		Page:  page,
		Limit: limit,
		Sort:  q.Get("sort"),
		Order: q.Get("order"),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	respondJSON(w, http.StatusOK, pageResult)
}

// ApproveItem godoc
// @Summary      Approves an item for daily rotation
// @Tags         admin
// @Success      200
// @Failure      401
// @Failure      404
// @Router       /admin/items/{id}/approve [post]
// @Security     BearerAuth
func (h *AdminHandler) ApproveItem(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, h.service.Approve)
}

// BanItem godoc
// @Summary      Removes an item from daily rotation
// @Tags         admin
// @Success      200
// @Failure      401
// @Failure      404
// @Router       /admin/items/{id}/ban [post]
// @Security     BearerAuth
func (h *AdminHandler) BanItem(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, h.service.Ban)
}

func (h *AdminHandler) setApproval(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id int64) error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := apply(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrScranNotFound) {
			respondError(w, http.StatusNotFound, "item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
