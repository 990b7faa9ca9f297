package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/services/auth"
)

// Per-update deadline for usecase calls made from bot handlers
const updateTimeout = 10 * time.Second

const (
	replyUsage    = "Send /start <code> with the code from the app to link your account."
	replyInternal = "Something went wrong, please try again."
)

// BotHandler drives the account-linking conversation: a deep-link /start
// carrying the one-time code, followed by a shared contact for phone
// verification.
type BotHandler struct {
	bot    *tele.Bot
	authUC auth.AuthUC
}

// NewBot connects to the Telegram Bot API. Created before the usecase so the
// same client can serve outbound OTP delivery through the gateway.
func NewBot(cfg models.TelegramConfig) (*tele.Bot, error) {
	return tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: time.Duration(cfg.PollTimeout) * time.Second},
	})
}

// NewBotHandler registers the conversation handlers on the bot. The bot does
// not poll until Start is called.
func NewBotHandler(bot *tele.Bot, authUC auth.AuthUC) *BotHandler {
	h := &BotHandler{bot: bot, authUC: authUC}
	h.registerHandlers()
	return h
}

// Start begins long-polling in a background goroutine
func (h *BotHandler) Start() {
	logger.Info("Starting Telegram bot long-poll loop",
		logger.String("username", h.bot.Me.Username))
	go h.bot.Start()
}

// Stop terminates the long-poll loop
func (h *BotHandler) Stop() {
	h.bot.Stop()
}

func (h *BotHandler) registerHandlers() {
	h.bot.Handle("/start", h.onLinkCommand)
	h.bot.Handle("/link", h.onLinkCommand)
	h.bot.Handle(tele.OnContact, h.onContact)
}

// onLinkCommand redeems the one-time code carried in the command payload
func (h *BotHandler) onLinkCommand(c tele.Context) error {
	code := strings.TrimSpace(c.Message().Payload)
	if code == "" {
		return c.Send(replyUsage)
	}

	chatID := strconv.FormatInt(c.Chat().ID, 10)
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	outcome, err := h.authUC.RedeemLinkCode(ctx, chatID, code)
	if err != nil {
		logger.Error("Failed to redeem link code",
			logger.String("chat_id", chatID), logger.Err(err))
		return c.Send(replyInternal)
	}

	if outcome == models.LinkOutcomeAwaitContact {
		return h.promptContact(c)
	}
	return c.Send(ReplyForOutcome(outcome))
}

// promptContact asks for the user's phone number through a one-time
// reply keyboard with a contact-request button
func (h *BotHandler) promptContact(c tele.Context) error {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(menu.Contact("Share my phone number")))
	return c.Send("Almost there! Share your phone number so we can verify it matches your account.", menu)
}

// onContact verifies the shared phone number against the pending link
func (h *BotHandler) onContact(c tele.Context) error {
	contact := c.Message().Contact
	if contact == nil {
		return c.Send(replyUsage)
	}

	chatID := strconv.FormatInt(c.Chat().ID, 10)
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	outcome, err := h.authUC.VerifyLinkContact(ctx, chatID, contact.PhoneNumber)
	if err != nil {
		logger.Error("Failed to verify link contact",
			logger.String("chat_id", chatID), logger.Err(err))
		return c.Send(replyInternal)
	}

	if outcome == models.LinkOutcomeVerified {
		return c.Send(ReplyForOutcome(outcome), &tele.ReplyMarkup{RemoveKeyboard: true})
	}
	return c.Send(ReplyForOutcome(outcome))
}

// ReplyForOutcome maps a linking outcome to the message shown in chat
func ReplyForOutcome(outcome models.LinkOutcome) string {
	switch outcome {
	case models.LinkOutcomeInvalidCode:
		return "That code is invalid or has expired. Generate a new one in the app."
	case models.LinkOutcomeConflict:
		return "This Telegram account is already linked to a different user."
	case models.LinkOutcomeAlreadyLinked:
		return "Your account is already linked to this Telegram account."
	case models.LinkOutcomeVerified:
		return "Your Telegram account has been linked successfully."
	case models.LinkOutcomeNoPending:
		return "There is no linking in progress. Send /start <code> first."
	case models.LinkOutcomeMismatch:
		return "That phone number does not match the one on your account."
	default:
		return replyInternal
	}
}
