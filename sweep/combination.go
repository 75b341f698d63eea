package sweep

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the BLAKE2b digest length in bytes.
const fingerprintSize = 16

// Binding assigns one value to one parameter.
type Binding struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Combination is one point of a sweep: its position in the walk, its grid
// tuple, the parameter values at that tuple, and a stable identifier.
type Combination struct {
	Seq      int       `json:"seq"`
	Index    []int     `json:"index"`
	Bindings []Binding `json:"bindings"`
	ID       string    `json:"id"`
}

func newCombination(seq int, index []int, params []Parameter) Combination {
	bindings := make([]Binding, len(params))
	for i, p := range params {
		bindings[i] = Binding{Name: p.Name, Value: p.Values[index[i]]}
	}
	return Combination{
		Seq:      seq,
		Index:    index,
		Bindings: bindings,
		ID:       Fingerprint(bindings),
	}
}

// Value returns the value bound to name and whether it exists.
func (c Combination) Value(name string) (string, bool) {
	for _, b := range c.Bindings {
		if b.Name == name {
			return b.Value, true
		}
	}
	return "", false
}

// Map returns the bindings as a name → value map.
func (c Combination) Map() map[string]string {
	m := make(map[string]string, len(c.Bindings))
	for _, b := range c.Bindings {
		m[b.Name] = b.Value
	}
	return m
}

// String renders the bindings as space-separated name=value pairs.
func (c Combination) String() string {
	var sb strings.Builder
	for i, b := range c.Bindings {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.Name)
		sb.WriteByte('=')
		sb.WriteString(b.Value)
	}
	return sb.String()
}

// Fingerprint returns a hex-encoded BLAKE2b-128 digest of the bindings.
// The digest depends only on the names, values and their order, so the
// same combination gets the same ID in every run and may be used to name
// jobs or output directories.
func Fingerprint(bindings []Binding) string {
	h, _ := blake2b.New(fingerprintSize, nil) // only fails for bad size or key
	for _, b := range bindings {
		h.Write([]byte(b.Name))
		h.Write([]byte{'='})
		h.Write([]byte(b.Value))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
