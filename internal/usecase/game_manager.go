package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

type GameManager interface {
	StartGame(ctx context.Context, surface entity.Surface, sessionID, address string) (*entity.Session, error)
	GetGame(ctx context.Context, surface entity.Surface, sessionID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, surface entity.Surface, sessionID string, cell int) (*entity.Session, error)
	EndGame(ctx context.Context, surface entity.Surface, sessionID string) error
}

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, surface entity.Surface, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, surface entity.Surface, id string) error
}

type botService interface {
	MakeTurn(board *entity.Board) (int, error)
}

type promoService interface {
	Issue(ctx context.Context, session *entity.Session) string
}

type notificationService interface {
	NotifyWin(ctx context.Context, address, promoCode string)
	NotifyLose(ctx context.Context, address string)
}

type gameManager struct {
	logger *slog.Logger
	locker keyLocker

	sessionRepo         sessionRepo
	botService          botService
	promoService        promoService
	notificationService notificationService
}

func NewGameManager(
	logger *slog.Logger,
	sessionRepo sessionRepo,
	botService botService,
	promoService promoService,
	notificationService notificationService,
) GameManager {
	return &gameManager{
		logger: logger,

		sessionRepo:         sessionRepo,
		botService:          botService,
		promoService:        promoService,
		notificationService: notificationService,
	}
}

// StartGame replaces whatever session is stored under the key with a fresh board.
func (that *gameManager) StartGame(ctx context.Context, surface entity.Surface, sessionID, address string) (*entity.Session, error) {
	log := that.logger.With("method", "StartGame", "surface", surface, "sessionID", sessionID)

	session := entity.NewSession(surface, sessionID, address)

	unlock := that.locker.lock(session.Key())
	defer unlock()

	if err := that.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("game started")

	return session, nil
}

func (that *gameManager) GetGame(ctx context.Context, surface entity.Surface, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, surface, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// MakeTurn plays the player's cell and the opponent's reply as one round.
// On a rejected move the stored session is left as it was.
// Notifications go out after the session lock is released.
func (that *gameManager) MakeTurn(ctx context.Context, surface entity.Surface, sessionID string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "surface", surface, "sessionID", sessionID, "cell", cell)

	session, err := that.playRound(ctx, log, surface, sessionID, cell)
	if err != nil {
		return session, err
	}

	switch session.Status {
	case entity.StatusWon:
		that.notificationService.NotifyWin(ctx, session.Address, session.PromoCode)
	case entity.StatusLost:
		that.notificationService.NotifyLose(ctx, session.Address)
	}

	log.Info("turn made", "status", session.Status)

	return session, nil
}

// playRound applies and persists one round under the session lock.
func (that *gameManager) playRound(ctx context.Context, log *slog.Logger, surface entity.Surface, sessionID string, cell int) (*entity.Session, error) {
	unlock := that.locker.lock(entity.SessionKey(surface, sessionID))
	defer unlock()

	session, err := that.sessionRepo.GetByID(ctx, surface, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = session.ConfirmInProgress(); err != nil {
		return session, err
	}

	if err = tictactoe.ApplyMove(&session.Board, cell, entity.PlayerMark); err != nil {
		return session, fmt.Errorf("failed to make turn: %w", err)
	}

	that.resolveRound(log, session)

	if session.Status == entity.StatusWon {
		session.PromoCode = that.promoService.Issue(ctx, session)
	}

	if err = that.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

func (that *gameManager) resolveRound(log *slog.Logger, session *entity.Session) {
	if tictactoe.CheckWinner(session.Board, entity.PlayerMark) {
		session.Finish(entity.StatusWon)
		return
	}

	if tictactoe.IsBoardFull(session.Board) {
		session.Finish(entity.StatusDraw)
		return
	}

	if _, err := that.botService.MakeTurn(&session.Board); err != nil {
		if !errors.Is(err, service.ErrNoAvailableMoves) {
			log.Error("opponent failed to move", "error", err)
		}
	}

	if tictactoe.CheckWinner(session.Board, entity.OpponentMark) {
		session.Finish(entity.StatusLost)
		return
	}

	if tictactoe.IsBoardFull(session.Board) {
		session.Finish(entity.StatusDraw)
	}
}

func (that *gameManager) EndGame(ctx context.Context, surface entity.Surface, sessionID string) error {
	log := that.logger.With("method", "EndGame", "surface", surface, "sessionID", sessionID)

	unlock := that.locker.lock(entity.SessionKey(surface, sessionID))
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, surface, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	log.Info("game ended")

	return nil
}
