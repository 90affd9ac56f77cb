package entity

import "time"

// PromoCode is a reward token issued to a player who won a game.
type PromoCode struct {
	Code      string    `json:"code"`
	Surface   Surface   `json:"surface"`
	SessionID string    `json:"session_id"`
	Address   string    `json:"address,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
}
