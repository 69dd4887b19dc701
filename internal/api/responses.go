// Package api はHTTPトランスポート層で共有されるレスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通レスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は情報メッセージのみを返すレスポンスボディです。
// データが存在しない場合の警告表示などに使用します。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse は認証成功時にJWTトークンを返すレスポンスボディです。
type TokenResponse struct {
	Token string `json:"token"`
}
