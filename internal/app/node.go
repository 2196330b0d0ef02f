package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcehook/internal/adapters/compilerhost" //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcehook/internal/adapters/config"       //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcehook/internal/adapters/fs"           //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcehook/internal/adapters/handshake"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcehook/internal/adapters/logger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcehook/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compilerhost.NodeID,
			handshake.NodeID,
			fs.ResolverNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*compilerhost.Factory](ctx)
	if err != nil {
		return nil, err
	}

	spawner, err := graft.Dep[*handshake.Spawner](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*fs.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, spawner, resolver, walker, hasher, log), nil
}
