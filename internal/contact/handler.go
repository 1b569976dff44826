package contact

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/floracart/floracart/internal/catalog/products"
	"github.com/floracart/floracart/internal/platform/httpx"
)

type Handler struct {
	logger   *slog.Logger
	products *products.Service
	number   string
	shopName string
}

func NewHandler(logger *slog.Logger, productSvc *products.Service, number, shopName string) *Handler {
	return &Handler{logger: logger, products: productSvc, number: number, shopName: shopName}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/whatsapp", h.WhatsApp)
}

// WhatsApp returns the deep link the client opens in a new browsing
// context. With a product query parameter the message names the product.
func (h *Handler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("Hello %s! I have a question about your flowers.", h.shopName)

	if raw := r.URL.Query().Get("product"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: invalid product ID", httpx.ErrValidation))
			return
		}
		product, err := h.products.Get(r.Context(), id)
		if err != nil {
			h.logger.Error("resolve product for contact failed", "error", err, "id", id)
			httpx.RespondError(w, err)
			return
		}
		message = fmt.Sprintf("Hello %s! I would like to order %q.", h.shopName, product.Name)
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"url": Link(h.number, message)})
}
