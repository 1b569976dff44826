package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Bouquets", "bouquets"},
		{"spaces", "Wedding Flowers", "wedding-flowers"},
		{"diacritics", "Букеты", ""},
		{"latin diacritics", "Fleurs Séchées", "fleurs-sechees"},
		{"punctuation", "Roses & Tulips!", "roses-tulips"},
		{"collapsed separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  fresh cut  ", "fresh-cut"},
		{"numbers", "Top 10 Picks", "top-10-picks"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
