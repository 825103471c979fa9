package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "solvency-backend/internal/adapter/http"
	"solvency-backend/internal/adapter/middleware"
	"solvency-backend/internal/adapter/repository/mysql"
	"solvency-backend/internal/compliance"
	"solvency-backend/internal/config"
	"solvency-backend/internal/infrastructure/cache"
	"solvency-backend/internal/infrastructure/db"
	"solvency-backend/internal/notify"
	auditUC "solvency-backend/internal/usecase/audit"
	decisionUC "solvency-backend/internal/usecase/decision"
	notificationUC "solvency-backend/internal/usecase/notification"
	submissionUC "solvency-backend/internal/usecase/submission"
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

	subRepo := mysql.NewSubmissionRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	dispatcher := notify.NewDispatcher(cfg.NotifyBuffer,
		notify.NewStoreSink(notifRepo, cfg.NotifyRecipient),
		notify.NewRedisSink(rdb, cfg.NotifyChannel),
	)
	defer dispatcher.Close()

	eval := compliance.NewEvaluator(cfg.CapitalThresholdCents())

	subUC := submissionUC.NewUsecase(subRepo, uow, eval, dispatcher)
	decUC := decisionUC.NewUsecase(uow, dispatcher)
	audUC := auditUC.NewUsecase(auditRepo)
	notUC := notificationUC.NewUsecase(notifRepo)

	h := httpadp.NewHandler()
	sh := httpadp.NewSubmissionHandler(subUC)
	dh := httpadp.NewDecisionHandler(decUC)
	ah := httpadp.NewAuditHandler(audUC)
	nh := httpadp.NewNotificationHandler(notUC, cfg.NotifyRecipient)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/submissions", sh.Create, idem)
	e.GET("/submissions", sh.List)
	e.GET("/submissions/:id", sh.Get)
	e.GET("/submissions/:id/verify", sh.Verify)
	e.POST("/submissions/:id/approve", dh.Approve, idem)
	e.POST("/submissions/:id/reject", dh.Reject, idem)
	e.GET("/audit/events", ah.List)
	e.GET("/notifications", nh.List)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
