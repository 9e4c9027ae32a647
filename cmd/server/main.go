package main

//	@title			Trackboard API
//	@version		1.0
//	@description	Project tracking dashboard API.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT obtained from /auth/login (e.g., "Bearer eyJ...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/trackboard/trackboard/internal/bootstrap"
	"github.com/trackboard/trackboard/internal/config"
	"github.com/trackboard/trackboard/internal/modules/handler"
	"github.com/trackboard/trackboard/internal/modules/service"
	"github.com/trackboard/trackboard/internal/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	_ = do.MustInvoke[*gorm.DB](inj)

	// seed the default user on an empty installation
	users := do.MustInvoke[service.UserService](inj)
	if err := users.EnsureDefault(context.Background()); err != nil {
		log.Sugar().Fatalw("failed to ensure default user", "err", err)
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Users:            users,
		AuthHandler:      do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:   do.MustInvoke[*handler.ProjectHandler](inj),
		ActivityHandler:  do.MustInvoke[*handler.ActivityHandler](inj),
		IndicatorHandler: do.MustInvoke[*handler.IndicatorHandler](inj),
		ReportHandler:    do.MustInvoke[*handler.ReportHandler](inj),
		UserHandler:      do.MustInvoke[*handler.UserHandler](inj),
		DashboardHandler: do.MustInvoke[*handler.DashboardHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
