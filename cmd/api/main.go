package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "aaraazi-backend/internal/adapter/http"
	idemp "aaraazi-backend/internal/adapter/middleware"
	"aaraazi-backend/internal/adapter/repository/mysql"
	"aaraazi-backend/internal/config"
	"aaraazi-backend/internal/infrastructure/cache"
	"aaraazi-backend/internal/infrastructure/db"
	distuc "aaraazi-backend/internal/usecase/distribution"
	invuc "aaraazi-backend/internal/usecase/investment"
	paymentuc "aaraazi-backend/internal/usecase/payment"
	planuc "aaraazi-backend/internal/usecase/plan"
	receiptuc "aaraazi-backend/internal/usecase/receipt"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	planRepo := mysql.NewPlanRepository(gdb)
	receiptRepo := mysql.NewReceiptRepository(gdb)
	invRepo := mysql.NewInvestmentRepository(gdb)
	distRepo := mysql.NewDistributionRepository(gdb)
	txRepo := mysql.NewTransactionRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	planUC := planuc.NewUsecase(planRepo)
	paymentUC := paymentuc.NewUsecase(planRepo, guow, cfg.StrictInvariants)
	receiptUC := receiptuc.NewUsecase(receiptRepo, guow)
	invUC := invuc.NewUsecase(invRepo, guow)
	distUC := distuc.NewUsecase(distRepo, invRepo, txRepo, guow, cfg.StrictInvariants)

	h := httpadp.NewHandler()
	planH := httpadp.NewPlanHandler(planUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	receiptH := httpadp.NewReceiptHandler(receiptUC)
	invH := httpadp.NewInvestmentHandler(invUC)
	distH := httpadp.NewDistributionHandler(distUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	// mutating money routes are guarded against duplicate submissions
	guarded := v1.Group("", idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	guarded.POST("/plans", planH.CreatePlan)
	v1.GET("/plans/:plan_id", planH.GetPlan)
	v1.GET("/plans/:plan_id/stats", paymentH.GetPlanStats)
	guarded.POST("/plans/:plan_id/payments", paymentH.RecordPayment)
	v1.POST("/plans/sweep-overdue", paymentH.SweepOverdue)

	guarded.POST("/receipts", receiptH.IssueReceipt)
	v1.GET("/receipts/:receipt_id", receiptH.GetReceipt)

	guarded.POST("/investments", invH.CreateInvestment)
	v1.GET("/properties/:property_id/investments", invH.ListInvestments)
	guarded.POST("/properties/:property_id/income", invH.RecordIncome)
	guarded.POST("/properties/:property_id/expenses", invH.RecordExpense)

	v1.POST("/properties/:property_id/distributions/preview", distH.PreviewDistribution)
	guarded.POST("/properties/:property_id/distributions", distH.ExecuteDistribution)
	v1.GET("/properties/:property_id/distributions", distH.ListDistributions)
	v1.GET("/distributions/:distribution_id", distH.GetDistribution)
	guarded.POST("/distributions/:distribution_id/pay", distH.MarkPaid)
	guarded.POST("/distributions/:distribution_id/cancel", distH.Cancel)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
