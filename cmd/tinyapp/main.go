package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mlevan/tinyapp/internal/config"
	"github.com/mlevan/tinyapp/internal/handler"
	"github.com/mlevan/tinyapp/internal/idgen"
	"github.com/mlevan/tinyapp/internal/session"
	"github.com/mlevan/tinyapp/internal/urlstore"
	"github.com/mlevan/tinyapp/internal/userstore"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	sugar.Infow("Starting TinyApp URL shortener")

	cfg, err := config.ParseFlags()
	if err != nil {
		sugar.Fatalw("Configuration error",
			"error", err.Error())
	}

	sugar.Infow(
		"Configuration loaded",
		"server_address", cfg.ServerAddress,
		"base_url", cfg.BaseURL,
		"session_cookie", cfg.SessionCookieName,
	)

	users := userstore.New(logger)
	urls := urlstore.New(idgen.New(), logger)
	sessions := session.NewManager(cfg.SessionCookieName, cfg.SessionSecret, logger)

	h := handler.New(users, urls, sessions, cfg.BaseURL, logger)
	r := h.SetupRouter()

	sugar.Infow(
		"Server starting",
		"address", cfg.ServerAddress,
	)

	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		sugar.Fatalw(err.Error(), "event", "start server")
	}
}
