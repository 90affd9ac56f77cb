package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

var errLedgerDisabled = errors.New("promo ledger is disabled")

type PromoRepository interface {
	Save(ctx context.Context, promo *entity.PromoCode) error
	FindByCode(ctx context.Context, code string) ([]*entity.PromoCode, error)
}

type promoRepository struct {
	conn *sql.DB
}

// NewPromoRepository records issued promo codes in SQLite.
func NewPromoRepository(conn *sql.DB) PromoRepository {
	return &promoRepository{
		conn: conn,
	}
}

func (that *promoRepository) Save(ctx context.Context, promo *entity.PromoCode) error {
	query := `INSERT INTO promo_codes (code, surface, session_id, address, issued_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		promo.Code, string(promo.Surface), promo.SessionID, promo.Address, promo.IssuedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("can't save promo code: %w", err)
	}

	return nil
}

// FindByCode returns every issue of code, oldest first; codes are not unique.
func (that *promoRepository) FindByCode(ctx context.Context, code string) ([]*entity.PromoCode, error) {
	query := `SELECT code, surface, session_id, address, issued_at FROM promo_codes WHERE code = ? ORDER BY issued_at, rowid`

	rows, err := that.conn.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("can't find promo code: %w", err)
	}
	defer rows.Close()

	var promos []*entity.PromoCode
	for rows.Next() {
		var (
			promo    entity.PromoCode
			surface  string
			issuedAt int64
		)

		if err = rows.Scan(&promo.Code, &surface, &promo.SessionID, &promo.Address, &issuedAt); err != nil {
			return nil, fmt.Errorf("can't scan promo code: %w", err)
		}

		promo.Surface = entity.Surface(surface)
		promo.IssuedAt = time.UnixMilli(issuedAt).UTC()
		promos = append(promos, &promo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read promo codes: %w", err)
	}

	if len(promos) == 0 {
		return nil, apperror.ErrNotFound
	}

	return promos, nil
}

type nopPromoRepository struct{}

// NewNopPromoRepository is used when no ledger storage is configured.
func NewNopPromoRepository() PromoRepository {
	return nopPromoRepository{}
}

func (nopPromoRepository) Save(context.Context, *entity.PromoCode) error {
	return nil
}

func (nopPromoRepository) FindByCode(context.Context, string) ([]*entity.PromoCode, error) {
	return nil, errors.Join(apperror.ErrNotFound, errLedgerDisabled)
}
