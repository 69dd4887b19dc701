package usecase_test

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"stockr/internal/feature/quotes/domain/entity"
	"stockr/internal/feature/quotes/usecase"
)

// TestExportCSV は正規化済みデータのCSV出力を検証します。4営業日分の
// 入力は先頭行が落ちるため3データ行になり、列順は固定です。
func TestExportCSV(t *testing.T) {
	t.Parallel()

	quotes := []entity.Quote{
		quote("AAPL", day(2023, 1, 2), 100, 1000),
		quote("AAPL", day(2023, 1, 3), 102, 1100),
		quote("AAPL", day(2023, 1, 4), 51, 1200),
		quote("AAPL", day(2023, 1, 5), 51, 1300),
	}
	obs, err := usecase.Normalize(quotes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := usecase.ExportCSV(&buf, obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to read back CSV: %v", err)
	}

	wantHeader := []string{"Date", "Open", "High", "Low", "Close", "Volume", "Ticker", "Daily_Return"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("unexpected header: %v", rows[0])
	}
	// 4営業日 → リターン計算で先頭行が落ちて3行
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 data rows, got %d rows", len(rows))
	}

	// 2日目: 100→102でリターンは+2%
	want := []string{"2023-01-03", "101", "104", "100", "102", "1100", "AAPL", "2"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("unexpected first data row:\n got %v\nwant %v", rows[1], want)
	}
	// 3日目: 102→51でリターンは-50%
	if rows[2][7] != "-50" {
		t.Errorf("expected Daily_Return -50, got %q", rows[2][7])
	}
	// 4日目: 変化なしでリターンは0
	if rows[3][7] != "0" {
		t.Errorf("expected Daily_Return 0, got %q", rows[3][7])
	}
}

// TestExportCSV_NoObservations は観測値なしでもヘッダ行だけは書かれることを検証します。
func TestExportCSV_NoObservations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := usecase.ExportCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to read back CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

// TestExportCSV_ObservationOrder は複数銘柄が銘柄コード順に連結されて
// 出力されることを検証します。
func TestExportCSV_ObservationOrder(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	quotes := append(
		fixedQuotes("MSFT", []float64{200, 202}, start),
		fixedQuotes("AAPL", []float64{100, 101}, start)...,
	)
	obs, err := usecase.Normalize(quotes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := usecase.ExportCSV(&buf, obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to read back CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 data rows, got %d rows", len(rows))
	}
	if rows[1][6] != "AAPL" || rows[2][6] != "MSFT" {
		t.Errorf("expected tickers sorted ascending, got %q then %q", rows[1][6], rows[2][6])
	}
}
