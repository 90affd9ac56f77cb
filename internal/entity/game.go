package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

// Mark is the value occupying a board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"

	// PlayerMark is always played by the human, OpponentMark by the computer.
	PlayerMark   = PlayerX
	OpponentMark = PlayerO
)

const BoardSize = 9

// Board is the 3x3 grid in row-major order: row = index / 3, column = index % 3.
type Board [BoardSize]Mark

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusDraw       Status = "draw"
)

// Result is the terminal classification handed to renderers.
type Result string

const (
	ResultNone Result = ""
	ResultWin  Result = "win"
	ResultLose Result = "lose"
	ResultDraw Result = "draw"
)

// Surface names the delivery surface owning a session keyspace.
type Surface string

const (
	SurfaceTelegram  Surface = "telegram"
	SurfaceWeb       Surface = "web"
	SurfaceWebSocket Surface = "ws"
)

type Session struct {
	ID        string    `json:"id"`
	Surface   Surface   `json:"surface"`
	Address   string    `json:"address,omitempty"`
	Board     Board     `json:"board"`
	Status    Status    `json:"status"`
	GameOver  bool      `json:"game_over"`
	PromoCode string    `json:"promo_code,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(surface Surface, id, address string) *Session {
	return &Session{
		ID:        id,
		Surface:   surface,
		Address:   address,
		Status:    StatusInProgress,
		UpdatedAt: time.Now().UTC(),
	}
}

// Key identifies the session across all surfaces.
func (that *Session) Key() string {
	return SessionKey(that.Surface, that.ID)
}

func SessionKey(surface Surface, id string) string {
	return fmt.Sprintf("%s:%s", surface, id)
}

func (that *Session) IsFinished() bool {
	return that.GameOver
}

// Finish moves the session into a terminal status.
func (that *Session) Finish(status Status) {
	that.Status = status
	that.GameOver = true
}

func (that *Session) ConfirmInProgress() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}

func (that *Session) Result() Result {
	switch that.Status {
	case StatusWon:
		return ResultWin
	case StatusLost:
		return ResultLose
	case StatusDraw:
		return ResultDraw
	default:
		return ResultNone
	}
}

// SessionView is the client-facing projection of a session; the notification address stays server-side.
type SessionView struct {
	ID        string    `json:"id"`
	Board     [9]string `json:"board"`
	Status    Status    `json:"status"`
	Result    Result    `json:"result,omitempty"`
	GameOver  bool      `json:"game_over"`
	PromoCode string    `json:"promo_code,omitempty"`
}

func (that *Session) View() *SessionView {
	view := &SessionView{
		ID:        that.ID,
		Status:    that.Status,
		Result:    that.Result(),
		GameOver:  that.GameOver,
		PromoCode: that.PromoCode,
	}

	for i, cell := range that.Board {
		view.Board[i] = string(cell)
	}

	return view
}
