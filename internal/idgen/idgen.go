// Package idgen generates the short alphanumeric codes used as URL
// identifiers.
package idgen

import "math/rand/v2"

const (
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	codeLength = 6
)

// Generator produces 6-character codes drawn uniformly with
// replacement from the 62-character alphanumeric alphabet. The
// generator itself makes no uniqueness guarantee; callers must check
// new codes against existing ones and reroll on collision.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
