package repository

import (
	"encoding/json"
	"fmt"
)

// mergeData overlays the top-level fields of patch onto the stored JSON
// object. A non-object patch replaces the data.
func mergeData(stored string, patch any) (string, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	var patchFields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &patchFields); err != nil {
		return string(raw), nil
	}
	base := map[string]json.RawMessage{}
	if stored != "" {
		if err := json.Unmarshal([]byte(stored), &base); err != nil {
			return string(raw), nil
		}
	}
	for k, v := range patchFields {
		base[k] = v
	}
	out, err := json.Marshal(base)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
