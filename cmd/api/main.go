package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/blezecon/skalebitz/internal/adapter/http"
	"github.com/blezecon/skalebitz/internal/adapter/middleware"
	"github.com/blezecon/skalebitz/internal/adapter/repository/mysql"
	"github.com/blezecon/skalebitz/internal/config"
	"github.com/blezecon/skalebitz/internal/infrastructure/cache"
	"github.com/blezecon/skalebitz/internal/infrastructure/db"
	"github.com/blezecon/skalebitz/internal/usecase/cashflow"
	dealuc "github.com/blezecon/skalebitz/internal/usecase/deal"
	"github.com/blezecon/skalebitz/internal/usecase/ledger"
	"github.com/blezecon/skalebitz/internal/usecase/stats"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	repos := mysql.NewRepos(gdb)
	// One capability probe per process: clustered deployments get the real
	// transaction, the rest get sequential writes with compensation.
	writer := mysql.DetectAtomicWriter(gdb)

	ledgerUC := ledger.NewUsecase(repos, writer)
	cashflowUC := cashflow.NewUsecase(repos.Deals, repos.Investments, repos.Transactions)
	dealUC := dealuc.NewUsecase(repos.Deals, repos.Investments, repos.Transactions)
	statsUC := stats.NewUsecase(repos.Deals, repos.Investments, repos.Transactions)

	h := httpadp.NewHandler()
	dealH := httpadp.NewDealHandler(dealUC)
	ledgerH := httpadp.NewLedgerHandler(ledgerUC)
	cashflowH := httpadp.NewCashflowHandler(cashflowUC)
	statsH := httpadp.NewStatsHandler(statsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := middleware.AuthRequired([]byte(cfg.JWTSecret))
	respCache := middleware.ResponseCache(rdb, time.Duration(cfg.CacheTTLSecs)*time.Second)

	// The marketplace headline is public; everything else requires a caller.
	e.GET("/api/stats/overview", statsH.GetOverview, respCache)

	api := e.Group("/api", auth)
	api.GET("/stats/investor-dashboard", statsH.GetInvestorDashboard)
	api.GET("/stats/investor/deals", statsH.ListInvestorDeals)
	api.GET("/deals", dealH.ListDeals, respCache)
	api.POST("/deals", dealH.CreateDeal)
	api.GET("/deals/:deal_id", dealH.GetDeal, respCache)
	api.GET("/deals/:deal_id/investments", dealH.ListDealInvestments)
	api.POST("/deals/:deal_id/invest", ledgerH.Invest)
	api.GET("/deals/:deal_id/cashflows", cashflowH.GetDealCashflows, respCache)
	api.GET("/deals/:deal_id/performance", cashflowH.GetDealPerformance, respCache)
	api.POST("/investments/:investment_id/repayments", ledgerH.RecordRepayment)
	api.GET("/users/me/logs", dealH.ListUserLogs)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
