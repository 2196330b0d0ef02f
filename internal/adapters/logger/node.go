package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcehook/internal/adapters/detector"
	"go.trai.ch/sourcehook/internal/core/ports"
)

// NodeID identifies the process-wide logger in the graft graph.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			// Lines logged before flags are parsed follow the environment; the
			// --log-format hook may switch the format afterwards.
			l := newLogger()
			l.SetJSON(detector.DetectLogFormat() == detector.FormatJSON)
			return l, nil
		},
	})
}
