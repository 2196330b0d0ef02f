package ports

// LoaderHook routes further source loads in the process through a compilation context.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type LoaderHook interface {
	// Install makes host the context for every subsequent load.
	Install(host CompilerHost) error
}
