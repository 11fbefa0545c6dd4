package live

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"emonitor-backend/internal/db"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// MessageTypeSensorData tags reading broadcasts on the wire.
const MessageTypeSensorData = "sensorData"

// Message is the envelope written to viewer websockets.
type Message struct {
	Type string           `json:"type"`
	Data db.SensorReading `json:"data"`
}

// Client pumps one hub subscription onto a websocket connection. Viewers
// never send application messages; the read side exists only to notice
// disconnects and answer pings.
type Client struct {
	conn *websocket.Conn
	sub  *Subscription
}

func NewClient(conn *websocket.Conn, sub *Subscription) *Client {
	return &Client{conn: conn, sub: sub}
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.sub.Close()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		slog.Error("Failed to set read deadline", "error", err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("Unexpected websocket close", "error", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case reading, ok := <-c.sub.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// Subscription ended; tell the viewer we are done.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(Message{Type: MessageTypeSensorData, Data: reading}); err != nil {
				slog.Error("Failed to write reading to viewer", "error", err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
