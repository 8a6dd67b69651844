package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/deepmud/internal/player"
)

// ConnectionManager hands accepted connections to the player manager.
// Both listeners funnel through it so session handling stays
// transport-agnostic.
type ConnectionManager struct {
	pm *player.Manager
}

func NewConnectionManager(pm *player.Manager) *ConnectionManager {
	return &ConnectionManager{
		pm: pm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.pm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
