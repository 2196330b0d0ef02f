package ports

// Hasher computes content hashes of source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the hash of the file's content.
	HashFile(path string) (uint64, error)
	// HashBytes returns the hash of data.
	HashBytes(data []byte) uint64
}
