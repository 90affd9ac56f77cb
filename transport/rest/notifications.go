package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

// handleWin forwards a win reported by the browser page. Delivery is best-effort, so the answer is success either way.
func (that *Server) handleWin(ctx echo.Context) error {
	var req winRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	if !tictactoe.IsValidPromoCode(req.PromoCode) {
		return respondError(ctx, http.StatusBadRequest, "invalid promo code")
	}

	that.notificationService.NotifyWin(ctx.Request().Context(), string(req.ChatID), req.PromoCode)

	return ctx.JSON(http.StatusOK, successResponse{Success: true})
}

func (that *Server) handleLose(ctx echo.Context) error {
	var req loseRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	that.notificationService.NotifyLose(ctx.Request().Context(), string(req.ChatID))

	return ctx.JSON(http.StatusOK, successResponse{Success: true})
}
