// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateSavingsAccount(ctx context.Context, customerID string, initial decimal.Decimal) (domain.AccountInfo, error)
	CreateCheckingAccount(ctx context.Context, customerID string, initial decimal.Decimal, overdraftProtection bool) (domain.AccountInfo, error)
	GetAccount(ctx context.Context, number string) (domain.AccountInfo, error)
	ListAccounts(ctx context.Context) []domain.AccountInfo
	ListActiveAccounts(ctx context.Context) []domain.AccountInfo
	Balance(ctx context.Context, number string) (decimal.Decimal, error)
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Transaction, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Transaction, error)
	WriteCheck(ctx context.Context, number string, amount decimal.Decimal, payee string) (domain.Transaction, error)
	SetOverdraftProtection(ctx context.Context, number string, enabled bool) (domain.AccountInfo, error)
	TransactionHistory(ctx context.Context, number string) ([]domain.Transaction, error)
	RecentTransactions(ctx context.Context, number string, count int) ([]domain.Transaction, error)
	DeactivateAccount(ctx context.Context, number string) (domain.AccountInfo, error)
	ActivateAccount(ctx context.Context, number string) (domain.AccountInfo, error)
	ApplyMonthlyMaintenance(ctx context.Context, number string) (domain.AccountInfo, error)
	ApplyMonthlyMaintenanceToAll(ctx context.Context) int
	AccountSummary(ctx context.Context, number string) (string, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.AccountInfo `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type numberURI struct {
	Number string `uri:"number" binding:"required"`
}

type createRequest struct {
	CustomerID          string          `json:"customer_id" binding:"required"`
	Kind                string          `json:"kind" binding:"required,accountkind"`
	InitialBalance      decimal.Decimal `json:"initial_balance"`
	OverdraftProtection *bool           `json:"overdraft_protection"`
}

// Create handles http request to open a savings or checking account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var (
		account domain.AccountInfo
		err     error
	)

	switch domain.Kind(req.Kind) {
	case domain.Savings:
		account, err = h.service.CreateSavingsAccount(ctx, req.CustomerID, req.InitialBalance)
	case domain.Checking:
		// The overdraft flag defaults to on when omitted.
		protection := true
		if req.OverdraftProtection != nil {
			protection = *req.OverdraftProtection
		}

		account, err = h.service.CreateCheckingAccount(ctx, req.CustomerID, req.InitialBalance, protection)
	}

	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

// Get handles http request to get one account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	account, err := h.service.GetAccount(ctx, uri.Number)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type listRequest struct {
	Active bool `form:"active"`
}

type dataAccounts struct {
	Accounts []domain.AccountInfo `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list accounts, optionally active ones only.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var accounts []domain.AccountInfo
	if req.Active {
		accounts = h.service.ListActiveAccounts(ctx)
	} else {
		accounts = h.service.ListAccounts(ctx)
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

type dataBalance struct {
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}
type responseBalance struct {
	Data dataBalance `json:"data,omitempty"`
}

// GetBalance handles http request to get the account balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	balance, err := h.service.Balance(ctx, uri.Number)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseBalance{Data: dataBalance{Number: uri.Number, Balance: balance}})
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type dataTransaction struct {
	Transaction domain.Transaction `json:"transaction"`
}
type responseTransaction struct {
	Data dataTransaction `json:"data,omitempty"`
}

// Deposit handles http request to deposit money into an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	txn, err := h.service.Deposit(ctx, uri.Number, req.Amount)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransaction{Data: dataTransaction{txn}})
}

// Withdraw handles http request to withdraw money from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	txn, err := h.service.Withdraw(ctx, uri.Number, req.Amount)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransaction{Data: dataTransaction{txn}})
}

type writeCheckRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Payee  string          `json:"payee" binding:"required"`
}

// WriteCheck handles http request to write a check from a checking account.
func (h *Handler) WriteCheck(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var req writeCheckRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	txn, err := h.service.WriteCheck(ctx, uri.Number, req.Amount, req.Payee)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransaction{Data: dataTransaction{txn}})
}

type overdraftRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetOverdraftProtection handles http request to toggle overdraft protection.
func (h *Handler) SetOverdraftProtection(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var req overdraftRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	account, err := h.service.SetOverdraftProtection(ctx, uri.Number, *req.Enabled)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type transactionsRequest struct {
	Count int `form:"count" binding:"omitempty,min=1"`
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// ListTransactions handles http request to list account transactions. A count
// query returns only the most recent ones.
func (h *Handler) ListTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var req transactionsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var (
		transactions []domain.Transaction
		err          error
	)

	if req.Count > 0 {
		transactions, err = h.service.RecentTransactions(ctx, uri.Number, req.Count)
	} else {
		transactions, err = h.service.TransactionHistory(ctx, uri.Number)
	}

	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{transactions}})
}

// Deactivate handles http request to freeze an account.
func (h *Handler) Deactivate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	account, err := h.service.DeactivateAccount(ctx, uri.Number)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

// Activate handles http request to unfreeze an account.
func (h *Handler) Activate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	account, err := h.service.ActivateAccount(ctx, uri.Number)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

// Maintain handles http request to run monthly maintenance on one account.
func (h *Handler) Maintain(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	account, err := h.service.ApplyMonthlyMaintenance(ctx, uri.Number)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type dataMaintenance struct {
	Processed int `json:"processed"`
}
type responseMaintenance struct {
	Data dataMaintenance `json:"data,omitempty"`
}

// MaintainAll handles http request to run monthly maintenance on every
// active account.
func (h *Handler) MaintainAll(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	processed := h.service.ApplyMonthlyMaintenanceToAll(ctx)

	gctx.JSON(http.StatusOK, responseMaintenance{Data: dataMaintenance{Processed: processed}})
}

type dataSummary struct {
	Summary string `json:"summary"`
}
type responseSummary struct {
	Data dataSummary `json:"data,omitempty"`
}

// Summary handles http request to get the formatted account summary.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri numberURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	summary, err := h.service.AccountSummary(ctx, uri.Number)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseSummary{Data: dataSummary{Summary: summary}})
}

func handleBindError(gctx *gin.Context, l *zerolog.Logger, err error) {
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
}

func respondError(gctx *gin.Context, err error) {
	var (
		invalidAccount   *domain.InvalidAccountError
		invalidTxn       *domain.InvalidTransactionError
		insufficient     *domain.InsufficientFundsError
		accountNotFound  *domain.AccountNotFoundError
		customerNotFound *domain.CustomerNotFoundError
	)

	switch {
	case errors.As(err, &accountNotFound), errors.As(err, &customerNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.As(err, &insufficient):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	case errors.As(err, &invalidAccount), errors.As(err, &invalidTxn):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
