package response

// Status values used in the standard envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DefaultErrorMessage is returned for unrecoverable failures so internals
// never leak to the client.
const DefaultErrorMessage = "内部服务器错误"

// Resp is the standard JSON response body for success/error envelopes.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
