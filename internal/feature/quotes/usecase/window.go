package usecase

import (
	"fmt"
	"strings"
)

// Window はダッシュボードで選択可能な表示期間です。
type Window string

const (
	Window1M  Window = "1m"
	Window6M  Window = "6m"
	Window1Y  Window = "1y"
	Window3Y  Window = "3y"
	Window5Y  Window = "5y"
	WindowAll Window = "all"
)

// windowDays は各表示期間を遡及日数にマップします。WindowAllは含まれません。
var windowDays = map[Window]int{
	Window1M: 30,
	Window6M: 180,
	Window1Y: 365,
	Window3Y: 3 * 365,
	Window5Y: 5 * 365,
}

// ParseWindow は期間ラベルをWindowに変換します。空文字列は全期間として扱います。
// 未知のラベルの場合はErrUnknownWindowを返します。
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	if w == "" || w == WindowAll {
		return WindowAll, nil
	}
	if _, ok := windowDays[w]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
	}
	return w, nil
}

// Days は遡及日数を返します。全期間の場合は ok=false を返します。
func (w Window) Days() (days int, ok bool) {
	days, ok = windowDays[w]
	return days, ok
}
