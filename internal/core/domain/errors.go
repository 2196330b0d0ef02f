package domain

import "go.trai.ch/zerr"

var (
	// ErrCannotResolveRelative is returned when a request URL carries a host component,
	// which happens when a protocol-relative URL is resolved against the file scheme.
	ErrCannotResolveRelative = zerr.New("cannot resolve protocol-relative url")

	// ErrMalformedRequestURL is returned when a request URL cannot be parsed or decoded.
	ErrMalformedRequestURL = zerr.New("malformed request url")

	// ErrSourceNotFound is returned when a requested source file does not exist.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrSourceReadFailed is returned when a source file exists but cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrCompileFailed is returned when a compiler rejects its input.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrReadOnlyCacheMiss is returned in read-only mode when a file that needs
	// compilation has no precompiled cache entry.
	ErrReadOnlyCacheMiss = zerr.New("no precompiled artifact in read-only cache")

	// ErrUnknownCompiler is returned when the configuration names a compiler that is not registered.
	ErrUnknownCompiler = zerr.New("unknown compiler")

	// ErrInvalidCompilerSpec is returned when a compiler entry in the configuration is malformed.
	ErrInvalidCompilerSpec = zerr.New("invalid compiler specification")

	// ErrRootCacheDirUnpublished is returned by the handshake when the host process did not
	// publish its root cache directory. This is a fatal misconfiguration.
	ErrRootCacheDirUnpublished = zerr.New("root cache directory was not published by the host process")

	// ErrHandshakeSocketUnset is returned when the second process was started without a handshake socket.
	ErrHandshakeSocketUnset = zerr.New("handshake socket not set, was this process started by sourcehook serve?")

	// ErrHandshakeFailed is returned when the host configuration cannot be fetched.
	ErrHandshakeFailed = zerr.New("handshake with host process failed")

	// ErrHostAlreadyRunning is returned when another host process answers on the handshake socket.
	ErrHostAlreadyRunning = zerr.New("another host process is serving this application")

	// ErrHandshakeServeFailed is returned when the handshake server cannot start.
	ErrHandshakeServeFailed = zerr.New("failed to serve handshake")

	// ErrRendererSpawnFailed is returned when the second process cannot be started.
	ErrRendererSpawnFailed = zerr.New("failed to spawn renderer process")

	// ErrLoaderNotInstalled is returned when a load goes through the loader hook before
	// a compilation context was installed.
	ErrLoaderNotInstalled = zerr.New("loader hook has no compilation context installed")

	// ErrStoreCreateFailed is returned when the artifact cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create artifact cache directory")

	// ErrStoreReadFailed is returned when a cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreUnmarshalFailed is returned when a cache entry cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrStoreMarshalFailed is returned when a cache entry cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFailedToGetRoot is returned when the app root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of app root")

	// ErrPrecompileFailed is returned when one or more files fail to precompile.
	ErrPrecompileFailed = zerr.New("precompilation failed")

	// ErrCacheStale is returned when a precompiled artifact is missing or was built from
	// different source content.
	ErrCacheStale = zerr.New("precompiled artifact is missing or stale")

	// ErrInputNotFound is returned when a path pattern matches no files.
	ErrInputNotFound = zerr.New("no files match input pattern")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrDispatchPanicked is reported when dispatching a request panics.
	ErrDispatchPanicked = zerr.New("dispatch panicked")

	// ErrTransportServeFailed is returned when the HTTP transport stops unexpectedly.
	ErrTransportServeFailed = zerr.New("resource transport failed")
)
