package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"participant-registration/config"
	"participant-registration/internal/global/database"
	"participant-registration/internal/global/logger"
	"participant-registration/internal/global/middleware"
	internalOtel "participant-registration/internal/global/otel"
	"participant-registration/internal/global/redis"
	"participant-registration/internal/global/sentry"
	"participant-registration/internal/module"
	"participant-registration/tools"
	"participant-registration/web"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	database.Init()
	redis.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewEngine 组装中间件、模板和各模块路由
func NewEngine() *gin.Engine {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()
	tools.PanicOnErr(web.Load(r))

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}
	// ErrorPage 必须在 Recovery 之前注册
	r.Use(middleware.ErrorPage(logger.New("Error")))
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	return r
}

func Run() {
	defer func() {
		sentry.Flush(2 * time.Second)
		if err := internalOtel.Shutdown(context.Background()); err != nil {
			log.Error("Failed to shutdown TracerProvider", "error", err)
		}
	}()

	err := NewEngine().Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
