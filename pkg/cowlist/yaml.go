package cowlist

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes l as a YAML sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the values of l with those of a YAML sequence. Other
// lists that shared nodes with l are not affected.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("cannot decode %s into a list", node.ShortTag())
	}
	var values []T
	if err := node.Decode(&values); err != nil {
		return err
	}
	l.Release()
	for _, v := range values {
		l.Append(v)
	}
	return nil
}
