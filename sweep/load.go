package sweep

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-gridindex/gridindex"
)

// document is the on-disk shape of a sweep file.
type document struct {
	Name        string                `yaml:"name"`
	Restriction gridindex.Restriction `yaml:"restriction"`
	Parameters  yaml.Node             `yaml:"parameters"`
}

// LoadFile reads a sweep definition from a YAML file. See [Load].
func LoadFile(path string) (*Sweep, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sweep: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a YAML sweep definition:
//
//	name: regression
//	restriction: diagonal
//	parameters:
//	  alpha: [0.1, 0.2]
//	  solver:
//	    method: [lbfgs, newton]
//	    tol: 1e-6
//
// Nested mappings become dot-notation names (solver.method) and axes keep
// document order. parameters may also be written as a list of
// {name, values} entries. Scalars keep their literal spelling.
func Load(r io.Reader) (*Sweep, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSweep)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSweep, err)
	}

	s := &Sweep{Name: doc.Name, Restriction: doc.Restriction}
	switch doc.Parameters.Kind {
	case yaml.MappingNode:
		if err := flattenNode("", &doc.Parameters, &s.Parameters); err != nil {
			return nil, err
		}
	case yaml.SequenceNode:
		if err := doc.Parameters.Decode(&s.Parameters); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSweep, err)
		}
	default:
		return nil, fmt.Errorf("%w: parameters must be a mapping or a list", ErrInvalidSweep)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func flattenNode(prefix string, n *yaml.Node, out *[]Parameter) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := joinName(prefix, n.Content[i].Value)
		v := resolveAlias(n.Content[i+1])
		switch v.Kind {
		case yaml.MappingNode:
			if err := flattenNode(name, v, out); err != nil {
				return err
			}
		case yaml.SequenceNode:
			values := make([]string, len(v.Content))
			for j, item := range v.Content {
				item = resolveAlias(item)
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("%w: parameter %q: line %d: values must be scalars", ErrInvalidSweep, name, item.Line)
				}
				values[j] = item.Value
			}
			if err := appendParameter(out, name, values); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if err := appendParameter(out, name, []string{v.Value}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: parameter %q: line %d: unsupported node", ErrInvalidSweep, name, v.Line)
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func appendParameter(out *[]Parameter, name string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: parameter %q has no values", ErrInvalidSweep, name)
	}
	*out = append(*out, Parameter{Name: name, Values: values})
	return nil
}

func joinName(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
