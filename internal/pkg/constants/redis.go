package constants

// Redis key formats. The login flow and the telegram bot run as independent
// event sources; these keys are the only channel between them.
const (
	// KeyTempLogin maps a temp session handle to a username after password auth
	KeyTempLogin = "TEMP_LOGIN:%s" // Format: TEMP_LOGIN:{handle}
	// KeyOTP holds the live passcode for a user; re-issuing overwrites it
	KeyOTP = "OTP:%s" // Format: OTP:{username}
	// KeyOTPAttempt is the rolling resend counter; its own TTL is the cooldown
	KeyOTPAttempt = "OTP_ATTEMPT:%s" // Format: OTP_ATTEMPT:{username}
	// KeyLinkCode maps a one-time linking code to the username that minted it.
	// The code is the whole key, no prefix: the bot receives it verbatim in
	// the /start payload.
	KeyLinkCode = "%s" // Format: {code}
	// KeyPendingUser holds the username awaiting contact verification per chat
	KeyPendingUser = "pendingUser:%s" // Format: pendingUser:{chat_id}
	// KeyPendingCode holds the link code awaiting contact verification per chat
	KeyPendingCode = "pendingCode:%s" // Format: pendingCode:{chat_id}
	// KeyLinkResult holds the handshake outcome polled by the HTTP side
	KeyLinkResult = "linkResult:%s" // Format: linkResult:{code}
)
