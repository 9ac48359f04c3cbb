package script

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
	"github.com/maxkimambo/batchcli/internal/logger"
)

// Format is the syntax of a script file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", batcherrors.NewScriptFormatError(path)
	}
}

// Load reads, parses and validates the script at path
func Load(fs afero.Fs, path string) (*Script, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, batcherrors.NewScriptNotFoundError(path, err)
	}

	logger.Op.WithFields(map[string]interface{}{
		"path":   path,
		"format": format,
		"bytes":  len(data),
	}).Debug("Script read")

	script, err := Parse(data, format)
	if err != nil {
		return nil, batcherrors.NewScriptParseError(path, err)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}

	return script, nil
}

// Parse decodes a script. Unknown keys are rejected. An empty document
// yields an empty script, which Validate refuses.
func Parse(data []byte, format Format) (*Script, error) {
	var script Script

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&script); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&script); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown script format %q", format)
	}

	return &script, nil
}
