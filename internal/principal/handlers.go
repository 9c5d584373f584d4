package principal

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/RadRun/RR-Backend/internal/apperr"
	"github.com/RadRun/RR-Backend/internal/httpx"
	"github.com/RadRun/RR-Backend/internal/passhash"
)

type Handler struct {
	Store Store
}

type createRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type updateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type listResponse struct {
	Data []Principal `json:"data"`
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", apperr.ErrValidation)
	}
	return id, nil
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := passhash.Hash(req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	p, err := h.Store.Create(r.Context(), CreateParams{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	p, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	var req updateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	p, err := h.Store.Update(r.Context(), id, UpdateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	p, err := h.Store.Delete(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Store.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if ps == nil {
		ps = []Principal{}
	}

	httpx.JSON(w, http.StatusOK, listResponse{Data: ps})
}
