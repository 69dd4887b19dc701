package usecase

import (
	"encoding/csv"
	"io"
	"strconv"

	"stockr/internal/feature/quotes/domain/entity"
)

// csvDateLayout はCSVのDate列のフォーマットです。
const csvDateLayout = "2006-01-02"

// csvHeader はエクスポートCSVの列順です。ダッシュボードの取り込み側が
// この並びを前提にしているため変更しないこと。
var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume", "Ticker", "Daily_Return"}

// ExportCSV は正規化済みの観測値をヘッダ付きCSVとして書き出します。
// 数値は値を変えない最短表現（strconvの精度-1）で出力します。
func ExportCSV(w io.Writer, obs []entity.Observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range obs {
		record := []string{
			o.Date.Format(csvDateLayout),
			strconv.FormatFloat(o.Open, 'f', -1, 64),
			strconv.FormatFloat(o.High, 'f', -1, 64),
			strconv.FormatFloat(o.Low, 'f', -1, 64),
			strconv.FormatFloat(o.Close, 'f', -1, 64),
			strconv.FormatInt(o.Volume, 10),
			o.Ticker,
			strconv.FormatFloat(o.DailyReturn, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
