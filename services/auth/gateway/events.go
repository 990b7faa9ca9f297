package gateway

import (
	"context"

	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
)

// PublishAuthEvent sends an audit event to the configured topic. When no
// broker is configured the event is dropped silently; auditing is an
// observer of the auth flows, never a participant.
func (g *AuthGW) PublishAuthEvent(_ context.Context, event *models.AuthEvent) error {
	if g.producer == nil {
		logger.Debug("No event producer configured, dropping auth event",
			logger.String("event_type", event.Type))
		return nil
	}

	return g.producer.Publish(g.cfg.NSQ.AuditTopic, event)
}
