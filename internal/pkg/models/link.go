package models

// LinkOutcome describes the result of one bot-side step of the account
// linking handshake. The telegram handler maps outcomes to chat replies;
// the usecase never composes user-facing text.
type LinkOutcome string

const (
	// LinkOutcomeInvalidCode means the redeemed code was unknown or expired
	LinkOutcomeInvalidCode LinkOutcome = "invalid_code"
	// LinkOutcomeConflict means the chat is already bound to another account
	LinkOutcomeConflict LinkOutcome = "conflict"
	// LinkOutcomeAlreadyLinked means the same user/chat pair re-linked (idempotent success)
	LinkOutcomeAlreadyLinked LinkOutcome = "already_linked"
	// LinkOutcomeAwaitContact means the code resolved and a contact share is now required
	LinkOutcomeAwaitContact LinkOutcome = "await_contact"
	// LinkOutcomeVerified means the shared contact matched and the binding was persisted
	LinkOutcomeVerified LinkOutcome = "verified"
	// LinkOutcomeNoPending means a contact arrived with no pending verification for the chat
	LinkOutcomeNoPending LinkOutcome = "no_pending"
	// LinkOutcomeMismatch means the shared contact did not match the registered mobile
	LinkOutcomeMismatch LinkOutcome = "mismatch"
)
