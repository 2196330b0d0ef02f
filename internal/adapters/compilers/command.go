package compilers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandName is the configuration name of the external command compiler.
const CommandName = "command"

// SourcePathEnv tells an external compiler which file it is compiling.
const SourcePathEnv = "SOURCEHOOK_SOURCE_PATH"

// Command compiles by piping the source through an external program:
// source on stdin, compiled output on stdout. Stderr lines are logged at debug level.
type Command struct {
	argv   []string
	output string
	logger ports.Logger
}

// NewCommand creates a Command compiler that runs argv and labels its output with mime type output.
func NewCommand(argv []string, output string, logger ports.Logger) (*Command, error) {
	if len(argv) == 0 || output == "" {
		return nil, zerr.With(domain.ErrInvalidCompilerSpec, "compiler", CommandName)
	}
	return &Command{argv: argv, output: output, logger: logger}, nil
}

// Name returns the compiler name.
func (c *Command) Name() string {
	return CommandName
}

// Fingerprint covers the command line and the declared output type.
func (c *Command) Fingerprint() string {
	return fmt.Sprintf("output=%s argv=%q", c.output, c.argv)
}

// Compile runs the command in the source's directory.
func (c *Command) Compile(ctx context.Context, source []byte, path string) (*domain.Artifact, error) {
	name := c.argv[0]
	env := resolveEnvironment(os.Environ(), map[string]string{SourcePathEnv: path})

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, c.argv[1:]...) //nolint:gosec // user configured command
	cmd.Args[0] = name
	cmd.Dir = filepath.Dir(path)
	cmd.Env = env
	cmd.Stdin = bytes.NewReader(source)

	var stdout, stderr bytes.Buffer
	stderrLog := &logWriter{logger: c.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := cmd.Run()
	_ = stderrLog.Close()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		cause := err
		if diag := strings.TrimSpace(stderr.String()); diag != "" {
			cause = compileError(diag)
		}
		wrapped := zerr.With(zerr.Wrap(cause, domain.ErrCompileFailed.Error()), "compiler", CommandName)
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return nil, zerr.With(wrapped, "path", path)
	}

	return domain.NewArtifact(stdout.Bytes(), c.output), nil
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	if w.logger == nil {
		return
	}
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}

// allowListedEnvVars are the system environment variables an external compiler inherits.
var allowListedEnvVars = map[string]struct{}{
	"HOME": {},
	"TERM": {},
	"USER": {},
	"PATH": {},
	"LANG": {},
}

// resolveEnvironment filters sysEnv through the allow-list and applies overrides.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := filterSystemEnv(sysEnv)
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

func filterSystemEnv(sysEnv []string) map[string]string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	return envMap
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
