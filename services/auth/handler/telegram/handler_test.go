package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

func TestReplyForOutcome(t *testing.T) {
	tests := []struct {
		outcome models.LinkOutcome
		want    string
	}{
		{models.LinkOutcomeInvalidCode, "That code is invalid or has expired. Generate a new one in the app."},
		{models.LinkOutcomeConflict, "This Telegram account is already linked to a different user."},
		{models.LinkOutcomeAlreadyLinked, "Your account is already linked to this Telegram account."},
		{models.LinkOutcomeVerified, "Your Telegram account has been linked successfully."},
		{models.LinkOutcomeNoPending, "There is no linking in progress. Send /start <code> first."},
		{models.LinkOutcomeMismatch, "That phone number does not match the one on your account."},
		{models.LinkOutcome("unknown"), replyInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplyForOutcome(tt.outcome), "outcome %q", tt.outcome)
	}
}
