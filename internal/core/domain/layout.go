package domain

import "path/filepath"

const (
	// HookDirName is the name of the internal workspace directory.
	HookDirName = ".sourcehook"

	// CacheDirName is the name of the compiled artifact cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "sourcehook.yaml"

	// SocketFileName is the name of the handshake Unix socket.
	SocketFileName = "handshake.sock"

	// RendererLogFile is the name of the log file a spawned renderer writes to.
	RendererLogFile = "renderer.log"

	// HandshakeSocketEnv carries the handshake socket path into the second process.
	HandshakeSocketEnv = "SOURCEHOOK_HANDSHAKE_SOCKET"

	// DefaultListenAddr is the loopback address the resource transport binds by default.
	DefaultListenAddr = "127.0.0.1:7717"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm restricts the handshake socket to the owner.
	SocketPerm = 0o600
)

// DefaultBypassSegments are the path segments whose trees are served verbatim.
// Archive-packed shell resources and dependency-manager trees are assumed to be prebuilt.
func DefaultBypassSegments() []string {
	return []string{"atom.asar", "node_modules"}
}

// DefaultCachePath returns the default artifact cache directory relative to the app root.
// It joins .sourcehook and cache.
func DefaultCachePath() string {
	return filepath.Join(HookDirName, CacheDirName)
}

// DefaultSocketPath returns the default handshake socket path relative to the app root.
func DefaultSocketPath() string {
	return filepath.Join(HookDirName, SocketFileName)
}

// DefaultRendererLogPath returns the log path for a spawned renderer relative to the app root.
func DefaultRendererLogPath() string {
	return filepath.Join(HookDirName, RendererLogFile)
}

func joinRoot(root, rel string) string {
	if root == "" {
		return rel
	}
	return filepath.Join(root, rel)
}
