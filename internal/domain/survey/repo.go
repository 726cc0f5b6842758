package survey

import "context"

type ResponseRepository interface {
	Add(ctx context.Context, r *Response) error
	List(ctx context.Context) ([]*Response, error)
	ListBySession(ctx context.Context, sessionID string) ([]*Response, error)
}
