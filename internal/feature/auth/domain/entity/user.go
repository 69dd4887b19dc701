// Package entity はauthフィーチャーのドメインモデルを定義します。
package entity

import "time"

// User はダッシュボードの登録ユーザーです。Passwordはbcryptハッシュのみを
// 保持し、平文は永続化しません。
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
