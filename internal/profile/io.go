package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Read loads a consultant record from a JSON file.
func Read(path string) (Consultant, error) {
	var consultant Consultant
	if strings.TrimSpace(path) == "" {
		return consultant, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return consultant, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return consultant, fmt.Errorf("profile %q is empty", path)
	}

	if err := json.Unmarshal(data, &consultant); err != nil {
		return consultant, fmt.Errorf("parse profile %q: %w", path, err)
	}
	return consultant, nil
}

// Write stores a consultant record as pretty JSON.
func Write(path string, consultant Consultant) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	data, err := json.MarshalIndent(consultant, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
