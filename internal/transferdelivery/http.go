// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/teller-bank/internal/domain"
	"github.com/go-petr/teller-bank/pkg/errorspkg"
	"github.com/go-petr/teller-bank/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) (domain.TransferResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type request struct {
	FromAccountNumber string          `json:"from_account_number" binding:"required"`
	ToAccountNumber   string          `json:"to_account_number" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
}

type data struct {
	Transfer domain.TransferResult `json:"transfer"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to move money between two accounts.
// The debit and credit are applied together or not at all.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	result, err := h.service.Transfer(ctx, req.FromAccountNumber, req.ToAccountNumber, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		var (
			invalidTxn      *domain.InvalidTransactionError
			insufficient    *domain.InsufficientFundsError
			accountNotFound *domain.AccountNotFoundError
		)

		switch {
		case errors.As(err, &accountNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.As(err, &insufficient):
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
		case errors.As(err, &invalidTxn):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	res := response{
		Data: data{result},
	}

	gctx.JSON(http.StatusOK, res)
}
