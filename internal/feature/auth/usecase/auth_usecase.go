// Package usecase はダッシュボードのサインアップとログインの
// ビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"stockr/internal/feature/auth/domain/entity"
)

// minPasswordLength はパスワードの最低文字数です。
const minPasswordLength = 8

// dummyHash はログイン時のタイミング攻撃緩和用ハッシュです。ユーザーが
// 存在しない場合もbcrypt比較を1回実行し、応答時間から登録有無を
// 推測できないようにします。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type UserRepository interface {
	// Create は新規ユーザーを保存します。メールアドレスが重複している
	// 場合はErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスでユーザーを1件取得します。
	// 見つからない場合はErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを1件取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator は署名済みトークンの発行を抽象化します。
// 実装はplatform/jwtにあります。
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase はサインアップとログインを実装します。
type authUsecase struct {
	users  UserRepository
	tokens JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens JWTGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Signup はパスワードをbcryptでハッシュ化して新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.Create(ctx, &entity.User{Email: email, Password: string(hashed)})
}

// Login はユーザーを認証し、成功時に署名済みJWTトークンを返します。
// ユーザー未検出とパスワード不一致は区別せず、どちらも
// ErrInvalidCredentialsを返します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// 未検出でも必ず1回bcrypt比較を実行する
	hash := dummyHash
	if findErr == nil {
		hash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if findErr != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
