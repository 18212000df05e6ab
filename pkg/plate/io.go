package plate

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalParams serializes a parameter set as pretty-printed JSON in
// base units. The output round-trips through UnmarshalParams
// field-for-field.
func MarshalParams(p Parameters) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// UnmarshalParams decodes a parameter document. The result is clamped:
// a hand-edited file cannot smuggle out-of-range geometry into the
// model.
func UnmarshalParams(data []byte) (Parameters, error) {
	var p Parameters
	if err := json.Unmarshal(data, &p); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameter file: %w", err)
	}
	return p.Clamped(), nil
}

// LoadFile reads a parameter document from disk.
func LoadFile(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to read parameters: %w", err)
	}
	return UnmarshalParams(data)
}

// SaveFile writes a parameter document to disk.
func SaveFile(path string, p Parameters) error {
	data, err := MarshalParams(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
