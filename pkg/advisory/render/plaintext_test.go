package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markdown untouched", "**Water** when < 20% moisture", "**Water** when < 20% moisture"},
		{"indented markdown untouched", "1. Irrigate:\n   - morning\n   - evening", "1. Irrigate:\n   - morning\n   - evening"},
		{"html flattened", "<h3>Irrigation</h3><p>Water <b>early</b>.</p><ul><li>Check drip lines</li><li>Mulch rows</li></ul>",
			"Irrigation\n\nWater early.\n\n- Check drip lines\n- Mulch rows"},
		{"empty paragraph", "<p>  </p>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
