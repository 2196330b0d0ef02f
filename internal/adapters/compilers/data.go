package compilers

import (
	"context"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Configuration names of the data compilers.
const (
	JSONCName = "jsonc"
	YAMLName  = "yaml"
	TOMLName  = "toml"
)

// JSONC strips comments and trailing commas from JSON with comments.
type JSONC struct{}

// NewJSONC creates a JSONC compiler.
func NewJSONC() *JSONC {
	return &JSONC{}
}

// Name returns the compiler name.
func (c *JSONC) Name() string {
	return JSONCName
}

// Fingerprint is empty; the compiler has no options.
func (c *JSONC) Fingerprint() string {
	return ""
}

// Compile converts source to plain JSON and rejects anything that is still not valid JSON.
func (c *JSONC) Compile(_ context.Context, source []byte, path string) (*domain.Artifact, error) {
	out := jsonc.ToJSON(source)
	if !json.Valid(out) {
		return nil, dataCompileError(JSONCName, path, compileError("invalid JSON after stripping comments"))
	}
	return domain.NewArtifact(out, domain.MimeJSON), nil
}

// YAML converts the first YAML document to JSON.
type YAML struct{}

// NewYAML creates a YAML compiler.
func NewYAML() *YAML {
	return &YAML{}
}

// Name returns the compiler name.
func (c *YAML) Name() string {
	return YAMLName
}

// Fingerprint is empty.
func (c *YAML) Fingerprint() string {
	return ""
}

// Compile converts source to JSON. Mappings with non-string keys cannot be represented and fail.
func (c *YAML) Compile(_ context.Context, source []byte, path string) (*domain.Artifact, error) {
	var v any
	if err := yaml.Unmarshal(source, &v); err != nil {
		return nil, dataCompileError(YAMLName, path, err)
	}
	return marshalJSON(YAMLName, path, v)
}

// TOML converts a TOML document to JSON.
type TOML struct{}

// NewTOML creates a TOML compiler.
func NewTOML() *TOML {
	return &TOML{}
}

// Name returns the compiler name.
func (c *TOML) Name() string {
	return TOMLName
}

// Fingerprint is empty.
func (c *TOML) Fingerprint() string {
	return ""
}

// Compile converts source to JSON.
func (c *TOML) Compile(_ context.Context, source []byte, path string) (*domain.Artifact, error) {
	v := make(map[string]any)
	if _, err := toml.Decode(string(source), &v); err != nil {
		return nil, dataCompileError(TOMLName, path, err)
	}
	return marshalJSON(TOMLName, path, v)
}

func marshalJSON(compiler, path string, v any) (*domain.Artifact, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, dataCompileError(compiler, path, err)
	}
	return domain.NewArtifact(out, domain.MimeJSON), nil
}

func dataCompileError(compiler, path string, err error) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "compiler", compiler)
	return zerr.With(err, "path", path)
}
