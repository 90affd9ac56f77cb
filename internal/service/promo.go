package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

type PromoService interface {
	Issue(ctx context.Context, session *entity.Session) string
}

type promoRepo interface {
	Save(ctx context.Context, promo *entity.PromoCode) error
}

type promoService struct {
	logger    *slog.Logger
	rnd       tictactoe.Rand
	promoRepo promoRepo
}

func NewPromoService(logger *slog.Logger, rnd tictactoe.Rand, promoRepo promoRepo) PromoService {
	return &promoService{
		logger:    logger,
		rnd:       rnd,
		promoRepo: promoRepo,
	}
}

// Issue generates a code for the session and records it. A ledger failure is logged, the code still stands.
func (that *promoService) Issue(ctx context.Context, session *entity.Session) string {
	log := that.logger.With("method", "Issue", "surface", session.Surface, "sessionID", session.ID)

	promo := &entity.PromoCode{
		Code:      tictactoe.GeneratePromoCode(that.rnd),
		Surface:   session.Surface,
		SessionID: session.ID,
		Address:   session.Address,
		IssuedAt:  time.Now().UTC(),
	}

	if err := that.promoRepo.Save(ctx, promo); err != nil {
		log.Error("failed to record promo code", "error", err)
	}

	log.Info("promo code issued", "code", promo.Code)

	return promo.Code
}
