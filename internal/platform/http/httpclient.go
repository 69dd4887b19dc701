// Package http provides the outbound HTTP client used by the market
// data clients.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はYahoo Finance呼び出し用のHTTPクライアントを作成します。
// http.DefaultClientは全体タイムアウトを持たないため使わず、接続系の
// 各タイムアウトを明示したTransportを組み立てます。timeoutはリクエスト
// 全体の上限で、プロバイダ設定から渡されます。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		// 複数銘柄の連続取得でコネクションを使い回す
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
