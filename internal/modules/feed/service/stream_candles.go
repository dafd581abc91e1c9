package service

import (
	"context"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"emadiff/internal/models"
	"emadiff/pkg/logger"
)

// Stream — поток закрытых свечей одного инструмента. Reconnects with a
// one second pause until the context is cancelled.
func (c *Client) Stream(ctx context.Context) <-chan models.CandleTick {
	ch := make(chan models.CandleTick)

	go func() {
		defer close(ch)

		channel := "candle" + c.cfg.Feed.Timeframe // "1m" -> "candle1m"
		instID := c.cfg.Feed.InstID

		sub := map[string]any{
			"op": "subscribe",
			"args": []map[string]string{{
				"channel": channel,
				"instId":  instID,
			}},
		}

		for {
			logger.Info("[WS] connect %s %s", channel, instID)
			conn, _, err := c.wsDialer.Dial(c.cfg.Feed.URL, nil)
			if err != nil {
				logger.Error("[WS] dial error %s: %v", channel, err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
				continue
			}

			if err := conn.WriteJSON(sub); err != nil {
				logger.Error("[WS] subscribe error %s: %v", channel, err)
				_ = conn.Close()
				continue
			}

			// keepalive ping every 20s — OKX drops silent connections
			pingDone := make(chan struct{})
			go func() {
				t := time.NewTicker(20 * time.Second)
				defer t.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-pingDone:
						return
					case <-t.C:
						_ = conn.WriteJSON(map[string]string{"op": "ping"})
					}
				}
			}()

			for {
				_, msg, err := conn.ReadMessage()
				if err != nil {
					logger.Error("[WS] read error %s: %v", channel, err)
					_ = conn.Close()
					break
				}

				var frame struct {
					Arg struct {
						Channel string `json:"channel"`
						InstID  string `json:"instId"`
					} `json:"arg"`
					Data [][]string `json:"data"`
				}
				if err := sonic.Unmarshal(msg, &frame); err != nil {
					continue
				}
				if frame.Arg.Channel != channel || len(frame.Data) == 0 {
					continue
				}

				for _, row := range frame.Data {
					// expected row: [ts, o, h, l, c, vol, ..., confirm]
					if len(row) < 5 {
						continue
					}

					// confirm is always the last element
					if row[len(row)-1] != "1" {
						continue // only closed candles
					}

					tsMs, err := strconv.ParseInt(row[0], 10, 64)
					if err != nil {
						continue
					}
					closep, err := strconv.ParseFloat(row[4], 64)
					if err != nil || closep <= 0 {
						continue
					}

					tick := models.CandleTick{
						InstID:    frame.Arg.InstID,
						Timeframe: c.cfg.Feed.Timeframe,
						Close:     closep,
						Start:     time.UnixMilli(tsMs),
					}

					select {
					case ch <- tick:
					case <-ctx.Done():
						close(pingDone)
						_ = conn.Close()
						return
					}
				}
			}
			close(pingDone)

			select {
			case <-ctx.Done():
				return
			default:
				time.Sleep(time.Second)
			}
		}
	}()

	return ch
}
