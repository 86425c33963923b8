package list

import "encoding/json"

// MarshalJSON encodes the list as a JSON array. The empty list encodes as
// [], never null.
func (l List[T]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON decodes a JSON array into a fresh list. null decodes to the
// empty list.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = List[T]{items: items}
	return nil
}
