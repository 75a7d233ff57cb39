package ark

import "context"

// IArk defines the interface for the Ark chat completion client
type IArk interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
