package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	err := json.Unmarshal(msg.Payload, &payload)

	return payload, err
}

func (that *Server) handleNewGame(ctx context.Context, client *client, msg *Message) {
	log := that.logger.With("method", "handleNewGame", "sessionID", client.sessionID)

	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(client, msg.Action, "malformed payload")
		return
	}

	session, err := that.gameManager.StartGame(ctx, entity.SurfaceWebSocket, client.sessionID, payload.ChatID)
	if err != nil {
		log.Error("failed to start game", "error", err)
		that.sendError(client, msg.Action, "failed to start game")

		return
	}

	that.send(client, msg.Action, ResponsePayload{Session: client.sessionID, Game: session.View()})
}

func (that *Server) handleGameState(ctx context.Context, client *client, msg *Message) {
	session, err := that.gameManager.GetGame(ctx, entity.SurfaceWebSocket, client.sessionID)
	if err != nil {
		that.sendError(client, msg.Action, errorMessage(err))
		return
	}

	that.send(client, msg.Action, ResponsePayload{Session: client.sessionID, Game: session.View()})
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, msg *Message) {
	log := that.logger.With("method", "handleGameTurn", "sessionID", client.sessionID)

	payload, err := decodePayload(msg)
	if err != nil || payload.Cell == nil {
		that.sendError(client, msg.Action, "cell is required")
		return
	}

	session, err := that.gameManager.MakeTurn(ctx, entity.SurfaceWebSocket, client.sessionID, *payload.Cell)
	if err != nil {
		log.Info("turn rejected", "cell", *payload.Cell, "error", err)

		response := ResponsePayload{Session: client.sessionID, Error: errorMessage(err)}
		if session != nil {
			response.Game = session.View()
		}

		that.send(client, msg.Action, response)

		return
	}

	that.send(client, msg.Action, ResponsePayload{Session: client.sessionID, Game: session.View()})
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return "game not found"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game is finished"
	case errors.Is(err, apperror.ErrInvalidMove):
		return err.Error()
	default:
		return "internal error"
	}
}
