package ark

import "time"

const (
	// DefaultBaseURL is the default Volcengine Ark API endpoint
	DefaultBaseURL = "https://ark.cn-beijing.volces.com/api/v3"

	// DefaultModel is the default model to use
	DefaultModel = "doubao-seed-1-6-250615"

	// DefaultTimeout bounds a single completion round trip
	DefaultTimeout = 60 * time.Second
)

// Chat message roles accepted by the completions endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
