package layoutfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
)

// WriteJSON encodes l as indented JSON. The output can be read back with
// [ReadJSON].
func WriteJSON(l *Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes l as TOML. The output can be read back with [ReadTOML].
func WriteTOML(l *Layout, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write encodes l in the named format ("json" or "toml").
func Write(l *Layout, format string, w io.Writer) error {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json":
		return WriteJSON(l, w)
	case "toml":
		return WriteTOML(l, w)
	}
	return apperr.New(apperr.ErrCodeInvalidFormat, "cannot write layout as %q (want json or toml)", format)
}

// Export writes l to path, choosing the format by extension.
func Export(l *Layout, path string) error {
	if err := apperr.ValidateFilePath(path); err != nil {
		return err
	}
	ext := filepath.Ext(path)
	if err := Write(l, ext, io.Discard); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(l, ext, f)
}
