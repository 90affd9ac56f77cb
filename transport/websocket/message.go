package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const (
	actionGameNew   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionError     = "error"
	actionPing      = "ping"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Cell   *int   `json:"cell,omitempty"`
	ChatID string `json:"chatId,omitempty"`
}

type ResponsePayload struct {
	Session string              `json:"session,omitempty"`
	Game    *entity.SessionView `json:"game,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return data
}

func encodeMessage(action string, payload ResponsePayload) []byte {
	return mustMarshal(Message{
		Action:  action,
		Payload: mustMarshal(payload),
	})
}
