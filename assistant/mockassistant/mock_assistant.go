package mockassistant

import (
	"context"

	"github.com/Gstormsfh/citrus_league/assistant"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) Ask(ctx context.Context, req *assistant.Request) (*assistant.Reply, error) {
	args := c.Called(ctx, req)

	var r *assistant.Reply
	if args.Get(0) != nil {
		r = args.Get(0).(*assistant.Reply)
	}
	return r, args.Error(1)
}
