package handshake

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

// RendererCommand is the subcommand a spawned second process runs.
const RendererCommand = "renderer"

// Spawner starts the second process.
type Spawner struct {
	executablePath string
	logger         ports.Logger
}

// NewSpawner creates a spawner that re-executes the running binary.
func NewSpawner(logger ports.Logger) (*Spawner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return NewSpawnerFor(exe, logger), nil
}

// NewSpawnerFor creates a spawner that runs executablePath.
func NewSpawnerFor(executablePath string, logger ports.Logger) *Spawner {
	return &Spawner{executablePath: executablePath, logger: logger}
}

// Process is a running second process.
type Process struct {
	cmd  *exec.Cmd
	done chan error
}

// Wait blocks until the process exits and returns its exit error.
func (p *Process) Wait() error {
	return <-p.done
}

// Terminate asks the process to exit.
func (p *Process) Terminate() error {
	return p.cmd.Process.Signal(syscall.SIGTERM)
}

// Pid returns the process id.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Spawn starts `<binary> renderer args...` in its own session, rooted at cfg.Root.
// The handshake socket path travels in the environment; output goes to the renderer log.
func (s *Spawner) Spawn(cfg *domain.Config, args ...string) (*Process, error) {
	logPath := cfg.RendererLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRendererSpawnFailed.Error())
	}

	//nolint:gosec // G304: logPath is from root + domain constant, not user input
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open renderer log")
	}

	argv := append([]string{RendererCommand}, args...)
	//nolint:gosec // G204: executablePath is controlled, the subcommand is a fixed literal
	cmd := exec.Command(s.executablePath, argv...)
	cmd.Dir = cfg.Root
	cmd.Env = append(os.Environ(), domain.HandshakeSocketEnv+"="+cfg.SocketPath())
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRendererSpawnFailed.Error()), "executable", s.executablePath)
	}

	p := &Process{cmd: cmd, done: make(chan error, 1)}
	go func() {
		err := cmd.Wait()
		_ = logFile.Close()
		p.done <- err
	}()

	s.logger.Info("renderer started, logging to " + logPath)
	return p, nil
}
