package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// scalar is a GraphQL scalar kept in its textual form. It accepts JSON
// strings, numbers and null.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("scalar: expected string or number, got %s", data)
	}
	*s = scalar(n.String())
	return nil
}
