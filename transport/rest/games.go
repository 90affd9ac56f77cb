package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

func (that *Server) handleNewGame(ctx echo.Context) error {
	log := that.logger.With("method", "handleNewGame")

	var req newGameRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	session, err := that.gameManager.StartGame(ctx.Request().Context(), entity.SurfaceWeb, uuid.NewString(), string(req.ChatID))
	if err != nil {
		log.Error("failed to start game", "error", err)
		return respondError(ctx, errorStatus(err), "failed to start game")
	}

	return ctx.JSON(http.StatusCreated, session.View())
}

func (that *Server) handleGetGame(ctx echo.Context) error {
	session, err := that.gameManager.GetGame(ctx.Request().Context(), entity.SurfaceWeb, ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errorStatus(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, session.View())
}

func (that *Server) handleTurn(ctx echo.Context) error {
	log := that.logger.With("method", "handleTurn", "sessionID", ctx.Param("id"))

	var req turnRequest
	if err := ctx.Bind(&req); err != nil || req.Cell == nil {
		return respondError(ctx, http.StatusBadRequest, "cell is required")
	}

	session, err := that.gameManager.MakeTurn(ctx.Request().Context(), entity.SurfaceWeb, ctx.Param("id"), *req.Cell)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to make turn", "error", err)
			return respondError(ctx, status, "failed to make turn")
		}

		return respondError(ctx, status, err.Error())
	}

	return ctx.JSON(http.StatusOK, session.View())
}
