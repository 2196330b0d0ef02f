package compilers

import (
	"maps"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultSpecs returns the compiler bindings used when the configuration declares none.
func DefaultSpecs() map[string]domain.CompilerSpec {
	return map[string]domain.CompilerSpec{
		domain.MimeTypeScript: {Name: EsbuildName},
		domain.MimeTSX:        {Name: EsbuildName},
		domain.MimeJSX:        {Name: EsbuildName},
		domain.MimeMarkdown:   {Name: MarkdownName},
		domain.MimeJSONC:      {Name: JSONCName},
		domain.MimeYAML:       {Name: YAMLName},
		domain.MimeTOML:       {Name: TOMLName},
	}
}

// Registry implements ports.CompilerConfig from the loaded configuration.
type Registry struct {
	specs   map[string]domain.CompilerSpec
	esbuild domain.EsbuildOptions
	logger  ports.Logger
}

// NewRegistry creates a Registry for cfg. Without configured compilers the defaults apply.
func NewRegistry(cfg *domain.Config, logger ports.Logger) *Registry {
	specs := cfg.Compilers
	if len(specs) == 0 {
		specs = DefaultSpecs()
	}
	return &Registry{
		specs:   maps.Clone(specs),
		esbuild: cfg.Esbuild,
		logger:  logger,
	}
}

// CreateCompilers builds one compiler per configured media type.
func (r *Registry) CreateCompilers() (map[string]ports.Compiler, error) {
	compilers := make(map[string]ports.Compiler, len(r.specs))
	for mimeType, spec := range r.specs {
		c, err := r.build(mimeType, spec)
		if err != nil {
			return nil, err
		}
		compilers[mimeType] = c
	}
	return compilers, nil
}

func (r *Registry) build(mimeType string, spec domain.CompilerSpec) (ports.Compiler, error) {
	switch spec.Name {
	case EsbuildName:
		return NewEsbuild(mimeType, r.esbuild)
	case MarkdownName:
		return NewMarkdown(), nil
	case JSONCName:
		return NewJSONC(), nil
	case YAMLName:
		return NewYAML(), nil
	case TOMLName:
		return NewTOML(), nil
	case CommandName:
		return NewCommand(spec.Command, spec.Output, r.logger)
	default:
		err := zerr.With(domain.ErrUnknownCompiler, "compiler", spec.Name)
		return nil, zerr.With(err, "mime_type", mimeType)
	}
}
