package jwtmw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newProtectedRouter はAuthRequiredで保護されたルートを1本持つルーターを
// 組み立てます。ハンドラはコンテキストのユーザーIDをそのまま返します。
func newProtectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/quotes/AAPL", AuthRequired(), func(c *gin.Context) {
		id, _ := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

// signToken はテスト用のHS256署名済みトークンを作ります。
func signToken(t *testing.T, secret string, userID uint, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   float64(userID),
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
		"email": "owner@example.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// doRequest は保護ルートへのGETを実行します。authHeaderが空の場合は
// Authorizationヘッダを付けません。
func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quotes/AAPL", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

// TestAuthRequired_RejectsNonBearerHeaders はBearer形式でない
// Authorizationヘッダがすべて401になることを検証します。
func TestAuthRequired_RejectsNonBearerHeaders(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, testSigningSecret)
	r := newProtectedRouter()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"lowercase bearer", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.authHeader)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_RejectsBadTokens は改ざん・期限切れ・未署名トークンが
// すべて401になることを検証します。
func TestAuthRequired_RejectsBadTokens(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, testSigningSecret)
	r := newProtectedRouter()

	// noneアルゴリズム（未署名）のトークンはHMAC以外として拒否される
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", signToken(t, "some-other-secret", 1, time.Hour)},
		{"expired token", signToken(t, testSigningSecret, 1, -time.Hour)},
		{"unsigned token", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "Bearer "+tt.token)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_MissingSecret はJWT_SECRET未設定時に500になることを
// 検証します（サーバー設定不備であり認証失敗ではない）。
func TestAuthRequired_MissingSecret(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")
	r := newProtectedRouter()

	w := doRequest(r, "Bearer "+signToken(t, testSigningSecret, 1, time.Hour))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestAuthRequired_ValidTokenPassesUserID は有効なトークンでリクエストが
// 通過し、コンテキスト経由でユーザーIDがハンドラに渡ることを検証します。
func TestAuthRequired_ValidTokenPassesUserID(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, testSigningSecret)
	r := newProtectedRouter()

	w := doRequest(r, "Bearer "+signToken(t, testSigningSecret, 42, time.Hour))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var body map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["user_id"] != 42 {
		t.Errorf("expected user_id 42, got %v", body["user_id"])
	}
}
