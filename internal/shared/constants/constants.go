package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderUserAgent     = "User-Agent"

	// Context keys
	ContextKeyAccountID = "account_id"
	ContextKeyEmail     = "account_email"
	ContextKeyRole      = "account_role"
	ContextKeyRequestID = "request_id"

	// Approval status
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"

	// Profile completion steps
	StepVerification = "verification"
	StepApproval     = "approval"
	StepProfile      = "profile"
	StepComplete     = "complete"

	// Database table names
	TableAccounts         = "accounts"
	TableAuthMethods      = "auth_methods"
	TableOTPCodes         = "otp_codes"
	TableOAuthStateTokens = "oauth_state_tokens"
	TableProjects         = "projects"
	TableInvestments      = "investments"
	TableRatings          = "ratings"
	TableWatchlistItems   = "watchlist_items"
	TableArticles         = "articles"
)
