package mocknhl

import (
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadPlayers() ([]model.Player, error) {
	args := c.Called()

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}
