package json_test

import (
	stdjson "encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/chop/json"
)

func benchInput(b *testing.B) string {
	b.Helper()
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range 500 {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item \"%d\"", "frac": %d.25, "ok": true, "ref": null, "tags": ["red", "blue"]}`,
			i, i, i)
	}
	sb.WriteByte(']')
	return sb.String()
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(b)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var val any
			if err := stdjson.Unmarshal([]byte(input), &val); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := json.ParseString(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
