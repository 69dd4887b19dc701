package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stockr/internal/app/di"
	"stockr/internal/feature/quotes/domain/entity"
	quotesusecase "stockr/internal/feature/quotes/usecase"
	watchlistadapters "stockr/internal/feature/watchlist/adapters"
	"stockr/internal/platform/db"
	"stockr/internal/shared/ratelimiter"
	"stockr/internal/shared/tickers"
)

const dateLayout = "2006-01-02"

func main() {
	_ = godotenv.Load()

	output := flag.String("o", "stock_data.csv", "output CSV path")
	list := flag.String("tickers", "", "comma-separated tickers (default: watchlist)")
	flag.Parse()

	codes := tickers.ParseList(*list)
	if len(codes) == 0 {
		codes = watchlistCodes()
	}
	if len(codes) == 0 {
		fmt.Println("no tickers to export: pass -tickers or fill the watchlist")
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	start := promptDate(reader, "Start date (YYYY-MM-DD): ")
	end := promptDate(reader, "End date (YYYY-MM-DD): ")
	if end.Before(start) {
		fmt.Println("End date must not be before the start date.")
		os.Exit(1)
	}

	marketRepo := di.NewMarket()
	limiter := ratelimiter.NewRateLimiter(30, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// 対象期間の日足を銘柄ごとに取得する。失敗した銘柄はスキップ。
	var fetched []entity.Quote
	for _, code := range codes {
		limiter.WaitIfNeeded()

		// endの当日分を含めるため翌日0時を上限にする
		quotes, err := marketRepo.GetDailyHistoryBetween(ctx, code, start, end.AddDate(0, 0, 1))
		if err != nil {
			fmt.Printf("%s: fetch failed, skipping (%v)\n", code, err)
			continue
		}
		if len(quotes) == 0 {
			fmt.Printf("%s: no data in range, skipping\n", code)
			continue
		}
		fetched = append(fetched, quotes...)
	}

	obs, err := quotesusecase.Normalize(fetched)
	if err != nil {
		if errors.Is(err, quotesusecase.ErrNoData) {
			fmt.Println("Nothing fetched: no CSV written.")
			os.Exit(1)
		}
		log.Fatal(err)
	}

	if err := writeCSV(*output, obs); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(obs), *output)
}

// promptDate は日付の入力を求め、YYYY-MM-DD形式でなければ終了します。
func promptDate(reader *bufio.Reader, prompt string) time.Time {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Failed to read input.")
		os.Exit(1)
	}
	line = trimNewline(line)

	t, err := time.ParseInLocation(dateLayout, line, time.UTC)
	if err != nil {
		fmt.Printf("Invalid date %q: expected YYYY-MM-DD.\n", line)
		os.Exit(1)
	}
	return t
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// watchlistCodes はDBのウォッチリストからティッカーを読み込みます。
func watchlistCodes() []string {
	gormDB := db.OpenDB()
	repo := watchlistadapters.NewWatchlistRepository(gormDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	codes, err := repo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load watchlist:", err)
	}
	return codes
}

// writeCSV は正規化済みの観測値を1つのCSVファイルに書き出します。
func writeCSV(path string, obs []entity.Observation) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return quotesusecase.ExportCSV(f, obs)
}
