package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type PingHandler interface {
	Ping(ctx echo.Context) error
	Test(ctx echo.Context) error
}

type pingHandler struct{}

func NewPingHandler() PingHandler {
	return &pingHandler{}
}

func (that *pingHandler) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// Test lets the bot operator check the api is reachable.
func (that *pingHandler) Test(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "test")
}
