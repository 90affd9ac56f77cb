package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// writeWithHeartbeat drains send into conn and writes a ping message whenever the connection was idle for interval.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastWrite := time.Now()
	pingPayload := mustMarshal(Message{Action: actionPing})

	write := func(data []byte) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}

		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return err
		}

		lastWrite = time.Now()

		return nil
	}

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}

			if err := write(msg); err != nil {
				return err
			}
		case <-ticker.C:
			if time.Since(lastWrite) < interval {
				continue
			}

			if err := write(pingPayload); err != nil {
				return err
			}
		}
	}
}
