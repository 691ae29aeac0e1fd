package constant

const (
	ContextKeyRequestID  = "requestid"
	ContextKeyTranslator = "T"

	RequestIDHeader = "X-Roadwatch-Request-ID"

	ReportRateLimitRedisHashKey = "roadwatch:ratelimit:report"
)
