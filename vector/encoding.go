package vector

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"
)

// EncodeEmbedding encodes a slice of float32 values into a BLOB representation
// suitable for binding as a SQLite argument. The encoding is a little-endian
// sequence of IEEE 754 float32 values without a length prefix; the length is
// derived from the BLOB size on decode. An empty vector encodes to an empty,
// non-nil BLOB so it is never bound as SQL NULL.
func EncodeEmbedding(vec []float32) ([]byte, error) {
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeEmbedding decodes a BLOB produced by EncodeEmbedding. An empty BLOB
// decodes to an empty, non-nil vector.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	vec := make([]float32, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}

// ParseText parses an array literal. Both JSON ("[0, 1.5]") and brace
// ("{0,1.5}") forms are accepted.
func ParseText(s string) ([]float32, error) {
	text := strings.TrimSpace(s)
	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		text = "[" + text[1:len(text)-1] + "]"
	}
	if !strings.HasPrefix(text, "[") {
		return nil, fmt.Errorf("vector: invalid array literal %q", s)
	}
	var vec []float32
	if err := json.Unmarshal([]byte(text), &vec); err != nil {
		return nil, fmt.Errorf("vector: invalid array literal %q: %w", s, err)
	}
	if vec == nil {
		vec = []float32{}
	}
	return vec, nil
}
