package option

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalJSON encodes Nothing as null and Some(v) as the encoding of v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null into Nothing and anything else into Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Nothing[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML encodes Nothing as null and Some(v) as v.
// Together with [Option.IsZero] the omitempty flag drops Nothing fields.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a null node into Nothing and any other node into
// Some.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = Nothing[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
