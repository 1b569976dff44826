package products

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/floracart/floracart/internal/platform/httpx"
)

// Cursor is an opaque pointer to the last row of a page. Listings order by
// (created_at DESC, id DESC), so the pair identifies a position that stays
// valid as new products are inserted ahead of it.
type Cursor struct {
	CreatedAt time.Time `json:"t"`
	ID        int64     `json:"id"`
}

// EncodeCursor serializes a cursor into its opaque wire form.
func EncodeCursor(c Cursor) string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses an opaque cursor. Malformed input is a validation
// error, not a transport failure.
func DecodeCursor(s string) (Cursor, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", httpx.ErrValidation)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", httpx.ErrValidation)
	}
	if c.ID <= 0 || c.CreatedAt.IsZero() {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", httpx.ErrValidation)
	}
	return c, nil
}
