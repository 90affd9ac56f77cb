package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe-promo/mocks/rest"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

// firstCellRand makes the opponent skip blocking and take the first empty cell.
type firstCellRand struct{}

func (firstCellRand) Float64() float64 { return 0.99 }
func (firstCellRand) IntN(int) int     { return 0 }

type serverFixture struct {
	server        *Server
	notifications *mockedRest.MocknotificationService
	sessionRepo   *repository.MemorySessionRepository
	promoRepo     repository.PromoRepository
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	logger := suite.NewLogger()
	notifications := mockedRest.NewMocknotificationService(t)
	sessionRepo := repository.NewMemorySessionRepository(time.Hour)
	_, ledger := suite.NewSQLite(t)
	promoRepo := repository.NewPromoRepository(ledger.Connection)
	promo := service.NewPromoService(logger, tictactoe.NewSeededRand(1), promoRepo)
	manager := usecase.NewGameManager(logger, sessionRepo, service.NewBotService(firstCellRand{}), promo, notifications)

	return &serverFixture{
		server:        New(logger, manager, notifications, promoRepo),
		notifications: notifications,
		sessionRepo:   sessionRepo,
		promoRepo:     promoRepo,
	}
}

func (that *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	that.server.Handler().ServeHTTP(rec, req)

	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) entity.SessionView {
	t.Helper()

	var view entity.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	return view
}

func TestServer_Ping(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())

	rec = fixture.do(http.MethodGet, "/api/telegram/test", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Body.String())
}

func TestServer_Notifications(t *testing.T) {
	t.Run("Win with a numeric chat id", func(t *testing.T) {
		// Given: a notifier expecting the win
		fixture := newServerFixture(t)
		fixture.notifications.EXPECT().NotifyWin(mock.Anything, "123", "AB9J2").Return().Once()

		// When: the page reports a win
		rec := fixture.do(http.MethodPost, "/api/telegram/win", `{"promoCode":"AB9J2","chatId":123}`)

		// Then: success is returned
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("Win without chat id", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.notifications.EXPECT().NotifyWin(mock.Anything, "", "AB9J2").Return().Once()

		rec := fixture.do(http.MethodPost, "/api/telegram/win", `{"promoCode":"AB9J2"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Win with a malformed code", func(t *testing.T) {
		// Given: a code with a forbidden character
		fixture := newServerFixture(t)

		// When: the page reports it
		rec := fixture.do(http.MethodPost, "/api/telegram/win", `{"promoCode":"AB0J2","chatId":"123"}`)

		// Then: it is rejected before any delivery
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fixture.notifications.AssertNotCalled(t, "NotifyWin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lose", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.notifications.EXPECT().NotifyLose(mock.Anything, "-100500").Return().Once()

		rec := fixture.do(http.MethodPost, "/api/telegram/lose", `{"chatId":"-100500"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("Malformed body", func(t *testing.T) {
		fixture := newServerFixture(t)

		rec := fixture.do(http.MethodPost, "/api/telegram/lose", `{"chatId":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Games(t *testing.T) {
	t.Run("Full round trip", func(t *testing.T) {
		// Given: a new web game
		fixture := newServerFixture(t)

		rec := fixture.do(http.MethodPost, "/api/games", `{"chatId":"42"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeView(t, rec)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, entity.StatusInProgress, created.Status)

		stored, err := fixture.sessionRepo.GetByID(context.Background(), entity.SurfaceWeb, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "42", stored.Address)

		// When: the player takes the centre
		rec = fixture.do(http.MethodPost, "/api/games/"+created.ID+"/turns", `{"cell":4}`)

		// Then: both marks are on the board
		require.Equal(t, http.StatusOK, rec.Code)
		view := decodeView(t, rec)
		assert.Equal(t, "X", view.Board[4])
		assert.Equal(t, "O", view.Board[0])

		// And: the state can be read back
		rec = fixture.do(http.MethodGet, "/api/games/"+created.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, view, decodeView(t, rec))
	})

	t.Run("Game without body", func(t *testing.T) {
		fixture := newServerFixture(t)

		rec := fixture.do(http.MethodPost, "/api/games", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Unknown game", func(t *testing.T) {
		fixture := newServerFixture(t)

		rec := fixture.do(http.MethodGet, "/api/games/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = fixture.do(http.MethodPost, "/api/games/nope/turns", `{"cell":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid moves", func(t *testing.T) {
		fixture := newServerFixture(t)

		session := entity.NewSession(entity.SurfaceWeb, "s1", "")
		session.Board[4] = entity.OpponentMark
		require.NoError(t, fixture.sessionRepo.Save(context.Background(), session))

		tests := []struct {
			name string
			body string
		}{
			{"occupied", `{"cell":4}`},
			{"out of range", `{"cell":9}`},
			{"negative", `{"cell":-1}`},
			{"missing cell", `{}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := fixture.do(http.MethodPost, "/api/games/s1/turns", tt.body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("Win issues a promo code and finished game rejects moves", func(t *testing.T) {
		// Given: X X _ / O O _ / _ _ _ with a chat to notify
		fixture := newServerFixture(t)

		session := entity.NewSession(entity.SurfaceWeb, "s1", "42")
		session.Board = entity.Board{entity.PlayerX, entity.PlayerX, "", entity.PlayerO, entity.PlayerO}
		require.NoError(t, fixture.sessionRepo.Save(context.Background(), session))

		fixture.notifications.EXPECT().NotifyWin(mock.Anything, "42", mock.AnythingOfType("string")).Return().Once()

		// When: the player completes the row
		rec := fixture.do(http.MethodPost, "/api/games/s1/turns", `{"cell":2}`)

		// Then: the game is won with a valid code
		require.Equal(t, http.StatusOK, rec.Code)
		view := decodeView(t, rec)
		assert.Equal(t, entity.ResultWin, view.Result)
		assert.True(t, tictactoe.IsValidPromoCode(view.PromoCode))

		// And: another move conflicts
		rec = fixture.do(http.MethodPost, "/api/games/s1/turns", `{"cell":8}`)
		assert.Equal(t, http.StatusConflict, rec.Code)

		// And: the issued code can be looked up in the ledger
		rec = fixture.do(http.MethodGet, "/api/promo-codes/"+view.PromoCode, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var promo promoCodeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &promo))
		assert.Equal(t, view.PromoCode, promo.Code)
		require.Len(t, promo.Issues, 1)
		assert.Equal(t, entity.SurfaceWeb, promo.Issues[0].Surface)
		assert.Equal(t, "s1", promo.Issues[0].SessionID)
		assert.Equal(t, "42", promo.Issues[0].Address)
	})
}

func TestServer_PromoCodes(t *testing.T) {
	t.Run("Unknown code", func(t *testing.T) {
		fixture := newServerFixture(t)

		// When: a well-formed code that was never issued is looked up
		rec := fixture.do(http.MethodGet, "/api/promo-codes/ABCDE", "")

		// Then: it is not found
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Malformed code", func(t *testing.T) {
		fixture := newServerFixture(t)

		// When: a code outside the promo alphabet is looked up
		rec := fixture.do(http.MethodGet, "/api/promo-codes/ABC01", "")

		// Then: it is rejected without touching the ledger
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Ledger disabled", func(t *testing.T) {
		// Given: a server without promo storage
		fixture := newServerFixture(t)
		fixture.server.promoRepo = repository.NewNopPromoRepository()

		// When: a code is looked up
		rec := fixture.do(http.MethodGet, "/api/promo-codes/ABCDE", "")

		// Then: it is not found
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_CORS(t *testing.T) {
	fixture := newServerFixture(t)

	// Given: a preflight request from another origin
	req := httptest.NewRequest(http.MethodOptions, "/api/telegram/win", nil)
	req.Header.Set("Origin", "http://page.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	// When: it is served
	rec := httptest.NewRecorder()
	fixture.server.Handler().ServeHTTP(rec, req)

	// Then: the origin is allowed with credentials
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://page.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestServer_Start(t *testing.T) {
	fixture := newServerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- fixture.server.Start(ctx, "0")
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
