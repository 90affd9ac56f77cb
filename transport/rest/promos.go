package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

// handlePromoCode lists every recorded issue of a promo code.
func (that *Server) handlePromoCode(ctx echo.Context) error {
	log := that.logger.With("method", "handlePromoCode")

	code := ctx.Param("code")
	if !tictactoe.IsValidPromoCode(code) {
		return respondError(ctx, http.StatusBadRequest, "invalid promo code")
	}

	promos, err := that.promoRepo.FindByCode(ctx.Request().Context(), code)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusNotFound {
			return respondError(ctx, status, "promo code not found")
		}

		log.Error("failed to find promo code", "error", err)

		return respondError(ctx, status, "failed to find promo code")
	}

	return ctx.JSON(http.StatusOK, promoCodeResponse{Code: code, Issues: promos})
}
