// Package tickers はカンマ区切りの銘柄入力文字列のパースを提供します。
package tickers

import "strings"

// ParseList はカンマ区切りの自由入力（例: "aapl, GOOGL, ,msft"）を
// 銘柄コードのリストに変換します。各要素は前後の空白を除去して大文字化し、
// 空の要素は破棄、重複は先勝ちで除去します。
func ParseList(input string) []string {
	parts := strings.Split(input, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToUpper(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
