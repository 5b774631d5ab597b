package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/cyptokoz-svg/polymarket-cli/internal/domain"
)

const (
	// writeWait is the time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// pongWait is the time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// pingPeriod sends pings to the peer at this interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// BookHandler is called for every event received on the market channel.
type BookHandler func(BookEvent)

// WSClient streams real-time order-book data from the Polymarket CLOB
// market WebSocket channel. It serves a single watch session: connect,
// subscribe, stream until the context ends.
type WSClient struct {
	wsURL string
	conn  *websocket.Conn
}

// NewWSClient creates a client for the given market-channel endpoint,
// e.g. "wss://ws-subscriptions-clob.polymarket.com/ws/market".
func NewWSClient(wsURL string) *WSClient {
	return &WSClient{wsURL: wsURL}
}

// Connect establishes the WebSocket connection.
func (w *WSClient) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 15 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, w.wsURL, nil)
	if err != nil {
		return fmt.Errorf("polymarket/ws: connect: %w", err)
	}
	w.conn = conn
	return nil
}

// Subscribe subscribes to market events for the given asset ids.
func (w *WSClient) Subscribe(assetIDs []string) error {
	if w.conn == nil {
		return fmt.Errorf("polymarket/ws: not connected")
	}
	cmd := WSCommand{Type: "market", AssetIDs: assetIDs}
	w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := w.conn.WriteJSON(cmd); err != nil {
		return fmt.Errorf("polymarket/ws: subscribe: %w", err)
	}
	return nil
}

// Stream reads events and hands each to handler until ctx is cancelled
// or the connection drops. A clean cancellation returns ctx.Err(); a
// dropped connection returns a wrapped domain.ErrWSDisconnect.
func (w *WSClient) Stream(ctx context.Context, handler BookHandler) error {
	if w.conn == nil {
		return fmt.Errorf("polymarket/ws: not connected")
	}

	w.conn.SetReadDeadline(time.Now().Add(pongWait))
	w.conn.SetPongHandler(func(string) error {
		w.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	g, ctx := errgroup.WithContext(ctx)

	// Read pump: one frame may carry a single event or a batch.
	g.Go(func() error {
		for {
			_, raw, err := w.conn.ReadMessage()
			if err != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
					return fmt.Errorf("polymarket/ws: %w: %v", domain.ErrWSDisconnect, err)
				}
			}
			for _, ev := range decodeBookEvents(raw) {
				handler(ev)
			}
		}
	})

	// Ping pump keeps the connection alive and tears it down on cancel,
	// which unblocks the read pump.
	g.Go(func() error {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				w.conn.Close()
				return ctx.Err()
			case <-ticker.C:
				w.conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return fmt.Errorf("polymarket/ws: ping: %w", err)
				}
			}
		}
	})

	return g.Wait()
}

// Close shuts down the connection.
func (w *WSClient) Close() error {
	if w.conn == nil {
		return nil
	}
	return w.conn.Close()
}

// decodeBookEvents parses a frame that may be either a single event
// object or an array of events. Frames that decode to neither are
// dropped; the feed mixes in acks this client does not care about.
func decodeBookEvents(raw []byte) []BookEvent {
	var batch []BookEvent
	if err := json.Unmarshal(raw, &batch); err == nil {
		return batch
	}
	var single BookEvent
	if err := json.Unmarshal(raw, &single); err == nil && single.EventType != "" {
		return []BookEvent{single}
	}
	return nil
}
