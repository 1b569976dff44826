package contact

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/floracart/floracart/internal/catalog/products"
	"github.com/floracart/floracart/internal/platform/httpx"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		message string
		want    string
	}{
		{
			name:   "formatted number reduced to digits",
			number: "+33 6 12 34 56 78",
			want:   "https://wa.me/33612345678",
		},
		{
			name:    "message is query escaped",
			number:  "33612345678",
			message: "Hello Flora & Co!",
			want:    "https://wa.me/33612345678?text=Hello+Flora+%26+Co%21",
		},
		{
			name:   "empty message omits the query",
			number: "(336) 123-456-78",
			want:   "https://wa.me/33612345678",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Link(tc.number, tc.message))
		})
	}
}

type stubRepo struct {
	product products.Product
}

func (s *stubRepo) Get(ctx context.Context, id int64) (products.Product, error) {
	if id != s.product.ID {
		return products.Product{}, httpx.ErrNotFound
	}
	return s.product, nil
}

func (s *stubRepo) List(ctx context.Context, req products.ListRequest) ([]products.Product, error) {
	return nil, nil
}

func (s *stubRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	return p, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, p products.Product) error { return nil }

func (s *stubRepo) Delete(ctx context.Context, id int64) error { return nil }

func newContactRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := &stubRepo{product: products.Product{ID: 5, Name: "Rose Bouquet", Images: []string{"https://cdn.example.com/rose.jpg"}}}
	svc := products.NewService(repo, products.DefaultPageSize, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	NewHandler(logger, svc, "+33 6 12 34 56 78", "Flora & Co").MountRoutes(r)
	return r
}

func fetchLink(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload struct {
		URL string `json:"url"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload.URL
}

func TestWhatsAppGenericInquiry(t *testing.T) {
	router := newContactRouter(t)

	rec, link := fetchLink(t, router, "/whatsapp")
	require.Equal(t, http.StatusOK, rec.Code)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "wa.me", u.Host)
	require.Equal(t, "/33612345678", u.Path)
	require.Contains(t, u.Query().Get("text"), "Flora & Co")
}

func TestWhatsAppProductInquiry(t *testing.T) {
	router := newContactRouter(t)

	rec, link := fetchLink(t, router, "/whatsapp?product=5")
	require.Equal(t, http.StatusOK, rec.Code)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Contains(t, u.Query().Get("text"), `"Rose Bouquet"`)
}

func TestWhatsAppUnknownProduct(t *testing.T) {
	router := newContactRouter(t)

	rec, _ := fetchLink(t, router, "/whatsapp?product=99")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWhatsAppMalformedProductID(t *testing.T) {
	router := newContactRouter(t)

	rec, _ := fetchLink(t, router, "/whatsapp?product=rose")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
