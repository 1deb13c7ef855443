package npm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedKeys decodes a JSON object into its keys in document order.
// Values are skipped; null decodes to an empty list.
type orderedKeys []string

func (k *orderedKeys) UnmarshalJSON(data []byte) error {
	*k = []string{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dependencies: expected object, got %v", tok)
	}

	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("dependencies: unexpected key %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
		// Duplicate keys collapse to the first position.
		if !seen[key] {
			seen[key] = true
			*k = append(*k, key)
		}
	}
	_, err = dec.Token()
	return err
}
