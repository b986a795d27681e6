package model

import (
	"time"
)

// JWTTokenBlacklist stores revoked JWT ids until they would have expired anyway
type JWTTokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null;type:varchar(64)" json:"token"` // jti
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Reason    string    `gorm:"type:varchar(100)" json:"reason"` // logout, security, manual_revoke
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for JWTTokenBlacklist
func (JWTTokenBlacklist) TableName() string {
	return "jwt_token_blacklist"
}
