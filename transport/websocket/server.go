package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const (
	defaultPingInterval = 30 * time.Second
	maxMessageSize      = 4096
	sendBufferSize      = 16
	shutdownTimeout     = 5 * time.Second
)

type gameManager interface {
	StartGame(ctx context.Context, surface entity.Surface, sessionID, address string) (*entity.Session, error)
	GetGame(ctx context.Context, surface entity.Surface, sessionID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, surface entity.Surface, sessionID string, cell int) (*entity.Session, error)
	EndGame(ctx context.Context, surface entity.Surface, sessionID string) error
}

// client is one connection; it owns exactly one session.
type client struct {
	sessionID string
	send      chan []byte
}

type handlerFunc func(ctx context.Context, client *client, msg *Message)

type Server struct {
	logger      *slog.Logger
	gameManager gameManager

	upgrader     websocket.Upgrader
	pingInterval time.Duration
	handlers     map[string]handlerFunc

	connectionsMutex sync.Mutex
	connections      map[*websocket.Conn]struct{}
}

func New(logger *slog.Logger, gameManager gameManager) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		pingInterval: defaultPingInterval,
		handlers:     make(map[string]handlerFunc),

		connections: make(map[*websocket.Conn]struct{}),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameTurn] = server.handleGameTurn

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and closes every open connection once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		log.Info("shutting down WebSocket server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		that.closeConnections()

		if err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	sessionID := req.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	that.trackConnection(conn)
	defer that.untrackConnection(conn)

	log = log.With("sessionID", sessionID)
	log.Info("WebSocket connection established")

	conn.SetReadLimit(maxMessageSize)

	client := &client{
		sessionID: sessionID,
		send:      make(chan []byte, sendBufferSize),
	}

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)

		if writeErr := writeWithHeartbeat(conn, client.send, that.pingInterval); writeErr != nil {
			log.Debug("writer stopped", "error", writeErr)
			_ = conn.Close()
		}
	}()

	// the hijacked request context stays alive until this handler returns
	ctx := req.Context()

	that.handleMessages(ctx, conn, client)

	close(client.send)
	<-writerDone
	_ = conn.Close()

	that.handleDisconnect(context.WithoutCancel(ctx), client)

	log.Info("WebSocket connection closed")
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, client *client) {
	log := that.logger.With("method", "handleMessages", "sessionID", client.sessionID)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.sendError(client, actionError, "malformed message")

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(client, actionError, "unknown action")

			continue
		}

		handler(ctx, client, &message)
	}
}

// handleDisconnect removes a finished session; an unfinished one stays until its ttl so the page can resume.
func (that *Server) handleDisconnect(ctx context.Context, client *client) {
	log := that.logger.With("method", "handleDisconnect", "sessionID", client.sessionID)

	session, err := that.gameManager.GetGame(ctx, entity.SurfaceWebSocket, client.sessionID)
	if err != nil {
		return
	}

	if !session.IsFinished() {
		return
	}

	if err = that.gameManager.EndGame(ctx, entity.SurfaceWebSocket, client.sessionID); err != nil {
		log.Error("failed to end game", "error", err)
	}
}

// send never blocks the reader; a client that stopped draining its queue loses the message.
func (that *Server) send(client *client, action string, payload ResponsePayload) {
	select {
	case client.send <- encodeMessage(action, payload):
	default:
		that.logger.Warn("send queue is full, message dropped", "sessionID", client.sessionID, "action", action)
	}
}

func (that *Server) sendError(client *client, action, message string) {
	that.send(client, action, ResponsePayload{Error: message})
}

func (that *Server) trackConnection(conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	that.connections[conn] = struct{}{}
}

func (that *Server) untrackConnection(conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	delete(that.connections, conn)
}

func (that *Server) closeConnections() {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for conn := range that.connections {
		_ = conn.Close()
	}
}
