// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/teller-bank/internal/accountdelivery"
	"github.com/go-petr/teller-bank/internal/bankservice"
	"github.com/go-petr/teller-bank/internal/customerdelivery"
	"github.com/go-petr/teller-bank/internal/middleware"
	"github.com/go-petr/teller-bank/internal/reportdelivery"
	"github.com/go-petr/teller-bank/internal/transferdelivery"
	"github.com/go-petr/teller-bank/pkg/configpkg"
)

// Server holds the bank registry, handlers router and configuration.
type Server struct {
	Bank   *bankservice.Service
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	bank := bankservice.New(config.BankName, config.BankCode)

	customerHandler := customerdelivery.NewHandler(bank)
	accountHandler := accountdelivery.NewHandler(bank)
	transferHandler := transferdelivery.NewHandler(bank)
	reportHandler := reportdelivery.NewHandler(bank)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/customers", customerHandler.Create)
	engine.GET("/customers", customerHandler.List)
	engine.GET("/customers/:id", customerHandler.Get)
	engine.GET("/customers/:id/summary", customerHandler.Summary)
	engine.PATCH("/customers/:id", customerHandler.Update)
	engine.POST("/customers/:id/deactivate", customerHandler.Deactivate)
	engine.POST("/customers/:id/activate", customerHandler.Activate)

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:number", accountHandler.Get)
	engine.GET("/accounts/:number/balance", accountHandler.GetBalance)
	engine.GET("/accounts/:number/transactions", accountHandler.ListTransactions)
	engine.GET("/accounts/:number/summary", accountHandler.Summary)
	engine.POST("/accounts/:number/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:number/withdrawals", accountHandler.Withdraw)
	engine.POST("/accounts/:number/checks", accountHandler.WriteCheck)
	engine.POST("/accounts/:number/overdraft", accountHandler.SetOverdraftProtection)
	engine.POST("/accounts/:number/deactivate", accountHandler.Deactivate)
	engine.POST("/accounts/:number/activate", accountHandler.Activate)
	engine.POST("/accounts/:number/maintenance", accountHandler.Maintain)
	engine.POST("/maintenance", accountHandler.MaintainAll)

	engine.POST("/transfers", transferHandler.Create)

	engine.GET("/summary", reportHandler.Summary)
	engine.GET("/stats", reportHandler.Stats)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("accountkind", accountdelivery.ValidAccountKind)
		if err != nil {
			return nil, errors.New("cannot register account kind validator")
		}
	}

	server := &Server{
		Bank:   bank,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
