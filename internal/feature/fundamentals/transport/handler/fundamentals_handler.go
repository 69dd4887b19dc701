// Package handler はfundamentalsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockr/internal/api"
	"stockr/internal/feature/fundamentals/domain/entity"
	"stockr/internal/feature/fundamentals/transport/http/dto"
	"stockr/internal/feature/fundamentals/usecase"
)

const dateLayout = "2006-01-02"

// FundamentalsUsecase は企業情報ユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FundamentalsUsecase interface {
	GetStatement(ctx context.Context, ticker, kind string) (entity.Statement, error)
	GetKeyStats(ctx context.Context, ticker string) (entity.KeyStats, error)
	GetDividends(ctx context.Context, ticker string) ([]entity.Dividend, error)
	GetSplits(ctx context.Context, ticker string) ([]entity.Split, error)
	GetRecommendations(ctx context.Context, ticker string) ([]entity.RecommendationTrend, error)
}

// FundamentalsHandler は企業情報のHTTPリクエストを処理します。
type FundamentalsHandler struct {
	uc FundamentalsUsecase
}

// NewFundamentalsHandler は指定されたusecaseでFundamentalsHandlerの新しいインスタンスを生成します。
func NewFundamentalsHandler(uc FundamentalsUsecase) *FundamentalsHandler {
	return &FundamentalsHandler{uc: uc}
}

// respondError はユースケースのエラーをHTTPステータスにマップします。
// 欠損データは404（UI側は情報プレースホルダを表示して該当セクションのみ
// スキップする）、それ以外のプロバイダ通信失敗は502です。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnknownStatement):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrMissingData):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: err.Error()})
	default:
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	}
}

// GetStatement は財務諸表をJSONで返します。
//
// エンドポイント例:
// GET /fundamentals/:ticker/statements/income
func (h *FundamentalsHandler) GetStatement(c *gin.Context) {
	st, err := h.uc.GetStatement(c.Request.Context(), c.Param("ticker"), c.Param("kind"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatementResponse{
		Ticker:  st.Ticker,
		Kind:    st.Kind,
		Records: st.Records,
	})
}

// GetKeyStats は主要指標と企業プロフィールをJSONで返します。
//
// エンドポイント例:
// GET /fundamentals/:ticker/stats
func (h *FundamentalsHandler) GetKeyStats(c *gin.Context) {
	ks, err := h.uc.GetKeyStats(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.KeyStatsResponse{
		Ticker:     ks.Ticker,
		MarketCap:  ks.MarketCap,
		TrailingPE: ks.TrailingPE,
		ForwardPE:  ks.ForwardPE,
		Beta:       ks.Beta,
		Profile:    ks.Profile,
	})
}

// GetDividends は配当実績をJSONで返します。
//
// エンドポイント例:
// GET /fundamentals/:ticker/dividends
func (h *FundamentalsHandler) GetDividends(c *gin.Context) {
	ds, err := h.uc.GetDividends(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.DividendResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, dto.DividendResponse{
			Date:   d.Date.UTC().Format(dateLayout),
			Amount: d.Amount,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetSplits は株式分割の実績をJSONで返します。
//
// エンドポイント例:
// GET /fundamentals/:ticker/splits
func (h *FundamentalsHandler) GetSplits(c *gin.Context) {
	ss, err := h.uc.GetSplits(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.SplitResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, dto.SplitResponse{
			Date:  s.Date.UTC().Format(dateLayout),
			Ratio: s.Ratio,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetRecommendations はアナリスト推奨をJSONで返します。
//
// エンドポイント例:
// GET /fundamentals/:ticker/recommendations
func (h *FundamentalsHandler) GetRecommendations(c *gin.Context) {
	rs, err := h.uc.GetRecommendations(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.RecommendationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.RecommendationResponse{
			Period:     r.Period,
			StrongBuy:  r.StrongBuy,
			Buy:        r.Buy,
			Hold:       r.Hold,
			Sell:       r.Sell,
			StrongSell: r.StrongSell,
		})
	}
	c.JSON(http.StatusOK, out)
}
