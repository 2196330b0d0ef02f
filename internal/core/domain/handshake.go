package domain

// BootstrapMarker is the synthetic script URL injected into HTML documents.
// A request whose URL contains it is answered with the renderer setup script.
// The token is deliberately unlike any real file name.
const BootstrapMarker = "__sourcehook__bootstrap__4f1c9e2a__.js"

// RendererEntryPoint is the function the setup script calls in the second process.
const RendererEntryPoint = "window.sourcehook.initializeRendererProcess"

// HostConfig is the handshake message the host process publishes to a second process.
type HostConfig struct {
	// RootCacheDir is the artifact cache the host's compilation context uses.
	RootCacheDir string
	// ReadOnly is the host's operating mode.
	ReadOnly bool
}
