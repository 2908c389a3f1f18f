package constants

// User-facing error messages.
const (
	// Auth
	ErrUnauthorized      = "unauthorized, please sign in"
	ErrInvalidToken      = "invalid session token"
	ErrAdminOnly         = "administrator access required"
	ErrPasswordIncorrect = "incorrect password"
	ErrUserNotFound      = "could not find user with this username"
	ErrEmailNotFound     = "no account is registered to this email"
	ErrUsernameExists    = "username is already taken"
	ErrEmailExists       = "this email is already registered"
	ErrIdentityRejected  = "identity provider rejected the credentials"

	// Parameters
	ErrInvalidParams   = "invalid or missing parameters"
	ErrInvalidCategory = "unknown campaign category"
	ErrInvalidID       = "invalid id"

	// Campaigns
	ErrCampaignNotFound = "campaign not found"
	ErrEventNotFound    = "event not found"
	ErrScoutNotFound    = "scout not found"
	ErrInvalidDateRange = "start date must not be after end date"

	// Characters
	ErrCharacterNotFound = "character not found"

	// System
	ErrInternalServer = "internal server error"
)

// User-facing success and informational messages.
const (
	SuccessLogin    = "signed in"
	SuccessRegister = "account created"
	SuccessCreate   = "created"
	SuccessUpdate   = "updated"
	SuccessDelete   = "deleted"
	SuccessGet      = "success"

	// Recommendation terminal display states, not errors.
	MsgNoFavorites          = "no recommendations available, add favorite characters to your profile"
	MsgNoUpcoming           = "there are no upcoming recommended campaigns available"
	MsgNoActiveCampaigns    = "no current or upcoming campaigns"
	MsgUsernameReminderSent = "a reminder mail has been sent if the address is registered"
)
