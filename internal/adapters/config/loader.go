// Package config provides the configuration loader for sourcehook.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
// FS is addressed with absolute paths stripped of their leading slash.
type Loader struct {
	Logger ports.Logger
	FS     fs.FS
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: hostFS()}
}

// NewLoaderWithFS creates a Loader that reads from fsys, which stands in for "/".
func NewLoaderWithFS(logger ports.Logger, fsys fs.FS) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds sourcehook.yaml in cwd or its nearest ancestor and resolves it.
// Without a configuration file, defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	configPath, err := l.findConfiguration(absCwd)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return l.resolve(absCwd, &Sourcehookfile{})
	}

	var file Sourcehookfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("unsupported configuration version " + file.Version + " in " + configPath)
	}

	cfg, err := l.resolve(filepath.Dir(configPath), &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		_, err := fs.Stat(l.FS, fsPath(candidate))
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) resolve(configDir string, file *Sourcehookfile) (*domain.Config, error) {
	root := resolvePath(configDir, file.Root, configDir)

	cfg := &domain.Config{
		Root:     root,
		CacheDir: resolvePath(root, file.CacheDir, filepath.Join(root, domain.DefaultCachePath())),
		ReadOnly: file.ReadOnly,
		Listen:   file.Listen,
		Bypass:   file.Bypass,
		Esbuild: domain.EsbuildOptions{
			Target:    file.Esbuild.Target,
			Sourcemap: file.Esbuild.Sourcemap,
		},
	}
	if cfg.Listen == "" {
		cfg.Listen = domain.DefaultListenAddr
	}
	if cfg.Bypass == nil {
		cfg.Bypass = domain.DefaultBypassSegments()
	}

	compilers, err := resolveCompilers(file.Compilers)
	if err != nil {
		return nil, err
	}
	cfg.Compilers = compilers

	return cfg, nil
}

// resolveCompilers validates compiler bindings. A nil result selects the built-in defaults.
func resolveCompilers(dtos map[string]*CompilerDTO) (map[string]domain.CompilerSpec, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	specs := make(map[string]domain.CompilerSpec, len(dtos))
	for mimeType, dto := range dtos {
		if dto == nil {
			return nil, zerr.With(domain.ErrInvalidCompilerSpec, "mime_type", mimeType)
		}

		spec := domain.CompilerSpec{Name: dto.Name, Command: dto.Command, Output: dto.Output}
		if spec.Name == "" && len(spec.Command) > 0 {
			spec.Name = "command"
		}

		switch {
		case spec.Name == "":
			err := zerr.With(domain.ErrInvalidCompilerSpec, "mime_type", mimeType)
			return nil, zerr.With(err, "reason", "missing compiler name")
		case spec.Name == "command" && len(spec.Command) == 0:
			err := zerr.With(domain.ErrInvalidCompilerSpec, "mime_type", mimeType)
			return nil, zerr.With(err, "reason", "command compiler without command")
		case spec.Name == "command" && spec.Output == "":
			err := zerr.With(domain.ErrInvalidCompilerSpec, "mime_type", mimeType)
			return nil, zerr.With(err, "reason", "command compiler without output type")
		}

		specs[mimeType] = spec
	}
	return specs, nil
}

// resolvePath resolves configured against base, returning fallback when it is empty.
func resolvePath(base, configured, fallback string) string {
	if configured == "" {
		return filepath.Clean(fallback)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Sourcehookfile) error {
	configFile, err := fs.ReadFile(l.FS, fsPath(configPath))
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
