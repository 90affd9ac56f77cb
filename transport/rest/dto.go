package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

var errChatIDType = errors.New("chatId must be a string or a number")

// chatID accepts both "123" and 123, the page forwards whatever it got in the query string.
type chatID string

func (that *chatID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*that = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*that = chatID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return errChatIDType
	}

	*that = chatID(number.String())

	return nil
}

type winRequest struct {
	PromoCode string `json:"promoCode"`
	ChatID    chatID `json:"chatId"`
}

type loseRequest struct {
	ChatID chatID `json:"chatId"`
}

type newGameRequest struct {
	ChatID chatID `json:"chatId"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type promoCodeResponse struct {
	Code   string              `json:"code"`
	Issues []*entity.PromoCode `json:"issues"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, errorResponse{Error: message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound), errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
