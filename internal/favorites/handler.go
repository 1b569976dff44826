package favorites

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/floracart/floracart/internal/catalog/products"
	"github.com/floracart/floracart/internal/platform/httpx"
)

const clientCookie = "floracart_client"

type Handler struct {
	logger   *slog.Logger
	store    Store
	products *products.Service
	secure   bool
}

func NewHandler(logger *slog.Logger, store Store, productSvc *products.Service, secure bool) *Handler {
	return &Handler{logger: logger, store: store, products: productSvc, secure: secure}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Get("/{id}", h.Check)
	r.Delete("/{id}", h.Remove)
}

// clientID resolves the anonymous client identity, minting a cookie on
// first contact. Favorites are scoped to this identity, never merged
// across clients.
func (h *Handler) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.store.List(r.Context(), h.clientID(w, r))
	if err != nil {
		h.logger.Error("list favorites failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if snaps == nil {
		snaps = []Snapshot{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"favorites": snaps})
}

type addRequest struct {
	ProductID int64 `json:"product_id"`
}

// Add captures the product's current state as a snapshot and stores it.
// Adding a product that is already favorited is a no-op.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid JSON body", httpx.ErrValidation))
		return
	}

	product, err := h.products.Get(r.Context(), req.ProductID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if err := h.store.Add(r.Context(), h.clientID(w, r), SnapshotOf(product)); err != nil {
		h.logger.Error("add favorite failed", "error", err, "product", req.ProductID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"favorite": true})
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid product ID", httpx.ErrValidation))
		return
	}

	fav, err := h.store.IsFavorite(r.Context(), h.clientID(w, r), id)
	if err != nil {
		h.logger.Error("check favorite failed", "error", err, "product", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"favorite": fav})
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid product ID", httpx.ErrValidation))
		return
	}

	if err := h.store.Remove(r.Context(), h.clientID(w, r), id); err != nil {
		h.logger.Error("remove favorite failed", "error", err, "product", id)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
