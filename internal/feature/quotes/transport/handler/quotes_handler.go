// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockr/internal/api"
	"stockr/internal/feature/quotes/domain/entity"
	"stockr/internal/feature/quotes/transport/http/dto"
	"stockr/internal/feature/quotes/usecase"
	"stockr/internal/shared/tickers"
)

const dateLayout = "2006-01-02"

// QuotesUsecase はダッシュボードの取得・変換ユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuotesUsecase interface {
	Observations(ctx context.Context, symbol string, w usecase.Window) ([]entity.Observation, error)
	Summary(ctx context.Context, symbol string, w usecase.Window) (entity.Summary, error)
	Volume(ctx context.Context, symbol string, w usecase.Window) (entity.VolumeSeries, error)
	Tickers(ctx context.Context, symbols []string) ([]string, error)
}

// QuotesHandler は株価時系列のHTTPリクエストを処理します。
type QuotesHandler struct {
	uc QuotesUsecase
}

// NewQuotesHandler は指定されたusecaseでQuotesHandlerの新しいインスタンスを生成します。
func NewQuotesHandler(uc QuotesUsecase) *QuotesHandler {
	return &QuotesHandler{uc: uc}
}

// respondError はユースケースのエラーをHTTPステータスにマップします。
//   - ErrUnknownWindow: 400（不正な期間ラベル）
//   - ErrNoData:        404（データなし。UI側は警告表示して継続する）
//   - その他:           502（プロバイダ通信失敗。リトライは行わない）
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnknownWindow):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNoData):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "no data found for the given tickers"})
	default:
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	}
}

// GetObservations は1銘柄の正規化済み時系列をJSONで返します。
//
// エンドポイント例:
// GET /quotes/:ticker?window=1y
func (h *QuotesHandler) GetObservations(c *gin.Context) {
	w, err := usecase.ParseWindow(c.DefaultQuery("window", "all"))
	if err != nil {
		respondError(c, err)
		return
	}

	obs, err := h.uc.Observations(c.Request.Context(), c.Param("ticker"), w)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ObservationResponse, 0, len(obs))
	for _, o := range obs {
		out = append(out, dto.ObservationResponse{
			Date:        o.Date.UTC().Format(dateLayout),
			Ticker:      o.Ticker,
			Open:        o.Open,
			High:        o.High,
			Low:         o.Low,
			Close:       o.Close,
			Volume:      o.Volume,
			DailyReturn: o.DailyReturn,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetSummary は1銘柄・1表示期間分のKPIサマリーをJSONで返します。
//
// エンドポイント例:
// GET /quotes/:ticker/summary?window=6m
func (h *QuotesHandler) GetSummary(c *gin.Context) {
	w, err := usecase.ParseWindow(c.DefaultQuery("window", "all"))
	if err != nil {
		respondError(c, err)
		return
	}

	s, err := h.uc.Summary(c.Request.Context(), c.Param("ticker"), w)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Ticker:       s.Ticker,
		LastClose:    s.LastClose,
		LastHigh:     s.LastHigh,
		LastLow:      s.LastLow,
		LastReturn:   s.LastReturn,
		MeanReturn:   s.MeanReturn,
		StdDevReturn: s.StdDevReturn,
		Count:        s.Count,
	})
}

// GetVolume は1銘柄・1表示期間分の出来高系列をJSONで返します。
// 期間が2年を超える場合は月次集約された系列になります。
//
// エンドポイント例:
// GET /quotes/:ticker/volume?window=5y
func (h *QuotesHandler) GetVolume(c *gin.Context) {
	w, err := usecase.ParseWindow(c.DefaultQuery("window", "all"))
	if err != nil {
		respondError(c, err)
		return
	}

	vs, err := h.uc.Volume(c.Request.Context(), c.Param("ticker"), w)
	if err != nil {
		respondError(c, err)
		return
	}

	points := make([]dto.VolumePointResponse, 0, len(vs.Points))
	for _, p := range vs.Points {
		points = append(points, dto.VolumePointResponse{
			Date:   p.Date.UTC().Format(dateLayout),
			Volume: p.Volume,
		})
	}
	c.JSON(http.StatusOK, dto.VolumeSeriesResponse{Granularity: vs.Granularity, Points: points})
}

// ListTickers は要求された銘柄のうちデータが取得できたものの一覧を返します。
// ドロップダウンの選択肢を埋めるためのエンドポイントです。
//
// エンドポイント例:
// GET /tickers?symbols=AAPL,GOOGL,MSFT
func (h *QuotesHandler) ListTickers(c *gin.Context) {
	symbols := tickers.ParseList(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbols query parameter is required"})
		return
	}

	out, err := h.uc.Tickers(c.Request.Context(), symbols)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// StoredQuotesUsecase はローカルストア読み取りユースケースのインターフェースです。
type StoredQuotesUsecase interface {
	GetStored(ctx context.Context, ticker string, outputsize int) ([]entity.Quote, error)
}

// StoredQuotesHandler はingest済みスナップショットのHTTPリクエストを処理します。
type StoredQuotesHandler struct {
	uc StoredQuotesUsecase
}

// NewStoredQuotesHandler は指定されたusecaseでStoredQuotesHandlerの新しいインスタンスを生成します。
func NewStoredQuotesHandler(uc StoredQuotesUsecase) *StoredQuotesHandler {
	return &StoredQuotesHandler{uc: uc}
}

// GetStoredQuotes はローカルストアの日足をJSONで返します。
//
// エンドポイント例:
// GET /history/:ticker?outputsize=200
func (h *StoredQuotesHandler) GetStoredQuotes(c *gin.Context) {
	outputsize, _ := strconv.Atoi(c.DefaultQuery("outputsize", "200"))

	quotes, err := h.uc.GetStored(c.Request.Context(), c.Param("ticker"), outputsize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.StoredQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.StoredQuoteResponse{
			Date:   q.Date.UTC().Format(dateLayout),
			Open:   q.Open,
			High:   q.High,
			Low:    q.Low,
			Close:  q.Close,
			Volume: q.Volume,
		})
	}
	c.JSON(http.StatusOK, out)
}
