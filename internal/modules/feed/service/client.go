package service

import (
	"time"

	"github.com/gorilla/websocket"

	"emadiff/internal/modules/config"
)

// Client streams closed candles for a single instrument from the OKX
// public websocket.
type Client struct {
	cfg      *config.Config
	wsDialer *websocket.Dialer
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		wsDialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}
