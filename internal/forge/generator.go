package forge

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Veraticus/darkforge/internal/common"
)

// Generator draws passwords from a cryptographically secure source.
// It holds no state between calls and is safe for concurrent use as long
// as its source is.
type Generator struct {
	source io.Reader
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithEntropySource replaces crypto/rand.Reader. Only tests should need this.
func WithEntropySource(r io.Reader) GeneratorOption {
	return func(g *Generator) {
		g.source = r
	}
}

// NewGenerator creates a generator backed by crypto/rand.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{source: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate draws a password with the default generator.
func Generate(sel Selection, length int) (string, error) {
	return defaultGenerator.Generate(sel, length)
}

// Generate returns length characters drawn independently from sel's pool.
//
// Each position takes a uint32 from the source reduced modulo the pool size.
// The pool never exceeds 88 characters, so the modulo bias is below 2^-25
// per draw and is accepted.
func (g *Generator) Generate(sel Selection, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: got %d", common.ErrInvalidLength, length)
	}

	pool := sel.Pool()

	buf := make([]byte, 4*length)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrEntropyUnavailable, err)
	}

	out := make([]byte, length)
	size := uint32(len(pool))
	for i := range out {
		v := binary.LittleEndian.Uint32(buf[i*4:])
		out[i] = pool[v%size]
	}

	return string(out), nil
}
