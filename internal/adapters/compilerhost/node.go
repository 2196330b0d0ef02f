package compilerhost

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcehook/internal/adapters/fs"     //nolint:depguard // Import hasher node ID
	"go.trai.ch/sourcehook/internal/adapters/logger" //nolint:depguard // Import logger node ID
	"go.trai.ch/sourcehook/internal/core/ports"
)

// NodeID is the unique identifier for the compiler host factory Graft node.
const NodeID graft.ID = "adapter.compiler_host_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log, WithHasher(hasher)), nil
		},
	})
}
