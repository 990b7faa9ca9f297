package gateway

import (
	tele "gopkg.in/telebot.v4"

	httppkg "github.com/nvent/inventory-backend/internal/pkg/http"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	nsqpkg "github.com/nvent/inventory-backend/internal/pkg/nsq"
)

// telegramSender is the slice of the bot API the gateway needs; satisfied
// by *tele.Bot and by test fakes.
type telegramSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// eventPublisher is the slice of the NSQ producer the gateway needs
type eventPublisher interface {
	Publish(topic string, message interface{}) error
}

// AuthGW implements outbound delivery: OTP mail through the provider HTTP
// API, OTP chat messages through the bot, audit events through NSQ.
type AuthGW struct {
	emailClient *httppkg.Client
	bot         telegramSender
	producer    eventPublisher
	cfg         *models.Config
}

// NewAuthGW creates a new auth gateway instance. The bot and producer may be
// nil when the corresponding transport is not configured; the affected
// operations then fail (telegram) or no-op (events). Nil pointers are kept
// out of the interface fields so the nil checks above stay meaningful.
func NewAuthGW(emailClient *httppkg.Client, bot *tele.Bot, producer *nsqpkg.Producer, cfg *models.Config) *AuthGW {
	g := &AuthGW{
		emailClient: emailClient,
		cfg:         cfg,
	}
	if bot != nil {
		g.bot = bot
	}
	if producer != nil {
		g.producer = producer
	}
	return g
}
