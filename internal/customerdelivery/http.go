// Package customerdelivery manages delivery layer of customers.
package customerdelivery

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/teller-bank/internal/domain"
	"github.com/go-petr/teller-bank/pkg/errorspkg"
	"github.com/go-petr/teller-bank/pkg/web"
)

// Service provides service layer interface needed by customer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	CreateCustomer(ctx context.Context, firstName, lastName, email string) (domain.CustomerInfo, error)
	GetCustomer(ctx context.Context, id string) (domain.CustomerInfo, error)
	ListCustomers(ctx context.Context) []domain.CustomerInfo
	ListActiveCustomers(ctx context.Context) []domain.CustomerInfo
	UpdateCustomer(ctx context.Context, id string, arg domain.UpdateCustomerParams) (domain.CustomerInfo, error)
	DeactivateCustomer(ctx context.Context, id string) (domain.CustomerInfo, error)
	ActivateCustomer(ctx context.Context, id string) (domain.CustomerInfo, error)
	CustomerSummary(ctx context.Context, id string) (string, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns customer handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

type data struct {
	Customer domain.CustomerInfo `json:"customer"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type idURI struct {
	ID string `uri:"id" binding:"required"`
}

type createRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
}

// Create handles http request to register a new customer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	customer, err := h.service.CreateCustomer(ctx, req.FirstName, req.LastName, req.Email)
	if err != nil {
		// A taken email surfaces as a validation error with a fixed suffix.
		var invalid *domain.InvalidAccountError
		if errors.As(err, &invalid) && strings.HasSuffix(invalid.Reason, "already exists") {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		respondError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

// Get handles http request to get one customer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	customer, err := h.service.GetCustomer(ctx, uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

type listRequest struct {
	Active bool `form:"active"`
}

type dataCustomers struct {
	Customers []domain.CustomerInfo `json:"customers"`
}
type responseCustomers struct {
	Data dataCustomers `json:"data,omitempty"`
}

// List handles http request to list customers, optionally active ones only.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var customers []domain.CustomerInfo
	if req.Active {
		customers = h.service.ListActiveCustomers(ctx)
	} else {
		customers = h.service.ListCustomers(ctx)
	}

	gctx.JSON(http.StatusOK, responseCustomers{Data: dataCustomers{customers}})
}

type updateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// Update handles http request to change customer contact details. Omitted
// fields keep their current values.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	arg := domain.UpdateCustomerParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	customer, err := h.service.UpdateCustomer(ctx, uri.ID, arg)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

// Deactivate handles http request to deactivate a customer and freeze all of
// their accounts.
func (h *Handler) Deactivate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	customer, err := h.service.DeactivateCustomer(ctx, uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

// Activate handles http request to reactivate a customer. Accounts frozen by
// an earlier deactivation stay frozen.
func (h *Handler) Activate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	customer, err := h.service.ActivateCustomer(ctx, uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

type dataSummary struct {
	Summary string `json:"summary"`
}
type responseSummary struct {
	Data dataSummary `json:"data,omitempty"`
}

// Summary handles http request to get the formatted customer summary.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, l, err)
		return
	}

	summary, err := h.service.CustomerSummary(ctx, uri.ID)
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
		customerNotFound *domain.CustomerNotFoundError
	)

	switch {
	case errors.As(err, &customerNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.As(err, &invalidAccount):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
