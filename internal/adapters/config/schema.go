package config

import "gopkg.in/yaml.v3"

// Sourcehookfile represents the structure of the sourcehook.yaml configuration file.
type Sourcehookfile struct {
	Version   string                  `yaml:"version"`
	Root      string                  `yaml:"root"`
	CacheDir  string                  `yaml:"cacheDir"`
	ReadOnly  bool                    `yaml:"readOnly"`
	Listen    string                  `yaml:"listen"`
	Bypass    []string                `yaml:"bypass"`
	Compilers map[string]*CompilerDTO `yaml:"compilers"`
	Esbuild   EsbuildDTO              `yaml:"esbuild"`
}

// CompilerDTO represents a compiler binding in the configuration.
// It is written either as a bare compiler name or as a mapping.
type CompilerDTO struct {
	Name    string   `yaml:"name"`
	Command []string `yaml:"command"`
	Output  string   `yaml:"output"`
}

// UnmarshalYAML accepts both `esbuild` and `{command: [...], output: ...}`.
func (c *CompilerDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&c.Name)
	}
	type plain CompilerDTO
	return value.Decode((*plain)(c))
}

// EsbuildDTO holds the esbuild section of the configuration.
type EsbuildDTO struct {
	Target    string `yaml:"target"`
	Sourcemap string `yaml:"sourcemap"`
}
