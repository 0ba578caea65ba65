// Package orderid genera identificadores de orden con formato "PS-<epochMillis>-<SUFIJO>".
//
// El sufijo son 9 caracteres de [0-9A-Z]. La unicidad es probabilística: dos órdenes del mismo
// milisegundo chocan con probabilidad 1/36^9 (~1e-14). No se verifica contra el almacén.
package orderid

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	Prefix     = "PS-"
	SuffixLen  = 9
	suffixChar = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator produce IDs a partir de un reloj y una fuente aleatoria inyectables.
// No es seguro para uso concurrente.
type Generator struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewGenerator usa time.Now y una fuente aleatoria sembrada por el runtime.
func NewGenerator() *Generator {
	return &Generator{now: time.Now, rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewGeneratorWith permite fijar reloj y fuente (tests).
func NewGeneratorWith(now func() time.Time, src rand.Source) *Generator {
	return &Generator{now: now, rand: rand.New(src)}
}

// Next devuelve un nuevo ID.
func (g *Generator) Next() string {
	var sb strings.Builder
	sb.Grow(len(Prefix) + 14 + SuffixLen)
	sb.WriteString(Prefix)
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	sb.WriteByte('-')
	for range SuffixLen {
		sb.WriteByte(suffixChar[g.rand.IntN(len(suffixChar))])
	}
	return sb.String()
}

// Valid comprueba la forma de un ID (no su existencia).
func Valid(id string) bool {
	rest, ok := strings.CutPrefix(id, Prefix)
	if !ok {
		return false
	}
	ts, suffix, ok := strings.Cut(rest, "-")
	if !ok || ts == "" || len(suffix) != SuffixLen {
		return false
	}
	if _, err := strconv.ParseInt(ts, 10, 64); err != nil {
		return false
	}
	for i := 0; i < len(suffix); i++ {
		if !strings.ContainsRune(suffixChar, rune(suffix[i])) {
			return false
		}
	}
	return true
}
