package constant

import (
	"time"
)

const (
	RequestParamPage     = "page"
	RequestParamPageSize = "page_size"
	RequestParamCheckIn  = "check_in"
	RequestParamCheckOut = "check_out"
	RequestParamDateFrom = "data_inizio"
	RequestParamDateTo   = "data_fine"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage     = 1
	DefaultValuePageSize = 10
)

const (
	DateOnlyFormat = "2006-01-02"
	DateFormat     = time.RFC3339
)

const (
	DefaultAPITimeoutSeconds = 15
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelStoreScopeName    = "store"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

// The backend authenticates with DRF-style opaque tokens, not bearer JWTs.
const (
	AuthorizationTokenPrefix = "Token "
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
