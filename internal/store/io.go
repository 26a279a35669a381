package store

import (
	"encoding/json"
	"errors"
	"os"

	"cryptem/internal/util/atomicfile"
)

const fileMode os.FileMode = 0o600

// readJSON reads path into out. found is false when the file does not
// exist, which is not an error.
func readJSON(path string, out any) (found bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return true, err
	}
	return true, nil
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return atomicfile.WriteBytes(path, append(b, '\n'), fileMode)
}

// ensureDir creates dir if needed, readable only by the owner.
func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o700)
}
