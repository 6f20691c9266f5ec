// Package reportdelivery manages delivery layer of bank-wide reports.
package reportdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/teller-bank/internal/domain"
)

// Service provides service layer interface needed by report delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reportdelivery
type Service interface {
	Stats(ctx context.Context) domain.BankStats
	BankSummary(ctx context.Context) string
}

// Handler facilitates report delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns report handler.
func NewHandler(rs Service) *Handler {
	return &Handler{
		service: rs,
	}
}

type dataStats struct {
	Stats domain.BankStats `json:"stats"`
}
type responseStats struct {
	Data dataStats `json:"data,omitempty"`
}

// Stats handles http request to get bank-wide counts and balances.
func (h *Handler) Stats(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	stats := h.service.Stats(ctx)

	gctx.JSON(http.StatusOK, responseStats{Data: dataStats{Stats: stats}})
}

type dataSummary struct {
	Summary string `json:"summary"`
}
type responseSummary struct {
	Data dataSummary `json:"data,omitempty"`
}

// Summary handles http request to get the formatted bank summary report.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	summary := h.service.BankSummary(ctx)

	gctx.JSON(http.StatusOK, responseSummary{Data: dataSummary{Summary: summary}})
}
