package domain

// CompilerSpec binds a media type to a compiler.
type CompilerSpec struct {
	// Name selects a registered compiler ("esbuild", "markdown", "command", ...).
	Name string
	// Command is the argv of an external compiler; used when Name is "command".
	Command []string
	// Output is the media type an external compiler produces.
	Output string
}

// EsbuildOptions tunes the TypeScript/JSX compiler.
type EsbuildOptions struct {
	Target    string
	Sourcemap string
}

// Config is the resolved sourcehook configuration.
type Config struct {
	// Root is the absolute application root.
	Root string
	// CacheDir is the absolute artifact cache directory.
	CacheDir string
	// ReadOnly selects the precompiled-only compilation context.
	ReadOnly bool
	// Listen is the address of the resource transport.
	Listen string
	// Bypass lists path segments whose trees are served verbatim.
	Bypass []string
	// Compilers maps a source media type to its compiler.
	Compilers map[string]CompilerSpec
	// Esbuild holds options for the esbuild compiler.
	Esbuild EsbuildOptions
}

// SocketPath returns the absolute handshake socket path for this configuration.
func (c *Config) SocketPath() string {
	return joinRoot(c.Root, DefaultSocketPath())
}

// RendererLogPath returns the absolute log path for a spawned renderer.
func (c *Config) RendererLogPath() string {
	return joinRoot(c.Root, DefaultRendererLogPath())
}
