package chat

import "errors"

var (
	ErrNoMessages       = errors.New("request has no messages")
	ErrNoUserMessage    = errors.New("request has no user message")
	ErrMissingParams    = errors.New("missing required parameters")
	ErrMessageNotFound  = errors.New("message not found")
	ErrMessageForbidden = errors.New("message belongs to another user")
	ErrCompletionFailed = errors.New("completion service call failed")
)
