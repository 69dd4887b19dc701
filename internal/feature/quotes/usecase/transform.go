package usecase

import (
	"math"
	"sort"
	"time"

	"stockr/internal/feature/quotes/domain/entity"
)

// monthlyVolumeThresholdDays を超える期間の出来高は月次に集約します。
// 日次の棒グラフでは描画が潰れてしまうため、2年を境に切り替えます。
const monthlyVolumeThresholdDays = 730

// Normalize は生のOHLCV行を銘柄ごとの正規化済み時系列に変換します。
//
// 処理の流れ:
//  1. 銘柄ごとにグループ化し、日付昇順にソート
//  2. 同一(銘柄, 日付)の重複行は後勝ちで除去
//  3. 日次リターン（前営業日終値比の変化率%）を計算
//  4. リターンが定義できない各グループの先頭行を除去
//  5. 銘柄コード順にグループを連結
//
// 入力が空の場合はErrNoDataを返します。返される全観測の
// DailyReturnは定義済みであることが保証されます。
func Normalize(quotes []entity.Quote) ([]entity.Observation, error) {
	if len(quotes) == 0 {
		return nil, ErrNoData
	}

	// 銘柄ごとにグループ化（入力順を保持）
	groups := make(map[string][]entity.Quote)
	tickers := make([]string, 0)
	for _, q := range quotes {
		if _, ok := groups[q.Ticker]; !ok {
			tickers = append(tickers, q.Ticker)
		}
		groups[q.Ticker] = append(groups[q.Ticker], q)
	}
	sort.Strings(tickers)

	out := make([]entity.Observation, 0, len(quotes))
	for _, t := range tickers {
		g := groups[t]
		// 日付昇順に安定ソート。同一日付の行は入力の後の行が残るように
		// 安定ソート後に後勝ちで重複除去する。
		sort.SliceStable(g, func(i, j int) bool { return g[i].Date.Before(g[j].Date) })
		dedup := g[:0]
		for _, q := range g {
			if n := len(dedup); n > 0 && dedup[n-1].Date.Equal(q.Date) {
				dedup[n-1] = q
				continue
			}
			dedup = append(dedup, q)
		}

		// 先頭行はリターンが定義できないため出力に含めない
		for i := 1; i < len(dedup); i++ {
			prev := dedup[i-1].Close
			q := dedup[i]
			out = append(out, entity.Observation{
				Ticker:      q.Ticker,
				Date:        q.Date,
				Open:        q.Open,
				High:        q.High,
				Low:         q.Low,
				Close:       q.Close,
				Volume:      q.Volume,
				DailyReturn: (q.Close - prev) / prev * 100,
			})
		}
	}
	return out, nil
}

// FilterByWindow は観測列を1銘柄に絞り込み、指定された表示期間内
// （today - 日数 以降、下限は当日を含む）の観測のみを返します。
// WindowAllの場合は銘柄の全履歴を返します。該当する観測がない場合は
// 空のスライスを返します。これはエラーではありません。
func FilterByWindow(obs []entity.Observation, ticker string, w Window, today time.Time) []entity.Observation {
	var cutoff time.Time
	if days, ok := w.Days(); ok {
		cutoff = today.AddDate(0, 0, -days)
	}

	out := make([]entity.Observation, 0, len(obs))
	for _, o := range obs {
		if o.Ticker != ticker {
			continue
		}
		if !cutoff.IsZero() && o.Date.Before(cutoff) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// BuildVolumeSeries はチャート描画用の出来高系列を導出します。最古と最新の
// 観測日の差が2年を超える場合は月初でバケットした月次合計を、それ以外は
// 日次の出来高をそのまま返します。入力の観測列は変更しません。
func BuildVolumeSeries(obs []entity.Observation) entity.VolumeSeries {
	if len(obs) == 0 {
		return entity.VolumeSeries{Granularity: "daily", Points: []entity.VolumePoint{}}
	}

	first, last := obs[0].Date, obs[0].Date
	for _, o := range obs {
		if o.Date.Before(first) {
			first = o.Date
		}
		if o.Date.After(last) {
			last = o.Date
		}
	}

	span := int(last.Sub(first).Hours() / 24)
	if span <= monthlyVolumeThresholdDays {
		points := make([]entity.VolumePoint, 0, len(obs))
		for _, o := range obs {
			points = append(points, entity.VolumePoint{Date: o.Date, Volume: o.Volume})
		}
		return entity.VolumeSeries{Granularity: "daily", Points: points}
	}

	// 月初をキーとして合計
	sums := make(map[time.Time]int64)
	for _, o := range obs {
		m := time.Date(o.Date.Year(), o.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[m] += o.Volume
	}
	points := make([]entity.VolumePoint, 0, len(sums))
	for m, v := range sums {
		points = append(points, entity.VolumePoint{Date: m, Volume: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return entity.VolumeSeries{Granularity: "monthly", Points: points}
}

// Summarize は1銘柄分の観測列からKPIサマリーを計算します。
// 直近値は列の末尾（時系列の最新）から取ります。標準偏差は標本標準偏差で、
// 観測数が2未満の場合は0とします。入力が空の場合はErrNoDataを返します。
func Summarize(obs []entity.Observation) (entity.Summary, error) {
	if len(obs) == 0 {
		return entity.Summary{}, ErrNoData
	}

	var sum float64
	for _, o := range obs {
		sum += o.DailyReturn
	}
	mean := sum / float64(len(obs))

	var sd float64
	if len(obs) >= 2 {
		var ss float64
		for _, o := range obs {
			d := o.DailyReturn - mean
			ss += d * d
		}
		sd = math.Sqrt(ss / float64(len(obs)-1))
	}

	last := obs[len(obs)-1]
	return entity.Summary{
		Ticker:       last.Ticker,
		LastClose:    last.Close,
		LastHigh:     last.High,
		LastLow:      last.Low,
		LastReturn:   last.DailyReturn,
		MeanReturn:   mean,
		StdDevReturn: sd,
		Count:        len(obs),
	}, nil
}

// AvailableTickers はデータが実際に取得できた銘柄の一覧をソートして返します。
func AvailableTickers(obs []entity.Observation) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, o := range obs {
		if _, ok := seen[o.Ticker]; ok {
			continue
		}
		seen[o.Ticker] = struct{}{}
		out = append(out, o.Ticker)
	}
	sort.Strings(out)
	return out
}
