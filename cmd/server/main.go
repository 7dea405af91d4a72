package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nexoradevlabs/site/internal/config"
	"github.com/nexoradevlabs/site/internal/handler"
	"github.com/nexoradevlabs/site/internal/island"
	"github.com/nexoradevlabs/site/internal/logging"
	"github.com/nexoradevlabs/site/internal/service"
	"github.com/nexoradevlabs/site/internal/view"
	"github.com/nexoradevlabs/site/pkg/github"
	"github.com/nexoradevlabs/site/pkg/mail"
)

func main() {
	logging.Setup("site")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	gh := github.NewClient(cfg.GitHub.Token, github.WithBaseURL(cfg.GitHub.APIURL))
	statsCache := service.NewStatsCache(service.NewStatsService(gh, cfg.GitHub.Org), cfg.GitHub.CacheTTL)

	// The relay still starts without credentials; submissions then fail with
	// a 500 and health reports the provider as not configured.
	sender := mail.NewMailgunSender(mail.MailgunConfig{
		Domain:  cfg.Mail.MailgunDomain,
		APIKey:  cfg.Mail.MailgunAPIKey,
		APIBase: cfg.Mail.MailgunAPIBase,
	}, slog.Default())
	if !cfg.Mail.IsConfigured() {
		slog.Warn("mail provider not configured, contact submissions will fail")
	}
	contactService := service.NewContactService(sender, mail.NewTemplates(), cfg.Mail.From, cfg.Mail.To)

	links := island.DefaultLinks()
	links.GitHubOrg = "https://github.com/" + cfg.GitHub.Org

	var limiter *handler.RateLimiter
	if cfg.ContactRatePerMinute > 0 {
		limiter = handler.NewRateLimiter(cfg.ContactRatePerMinute)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Health:          handler.New(statsCache, cfg.Mail.IsConfigured()),
		Pages:           handler.NewPageHandler(cfg.SiteURL, links),
		SEO:             handler.NewSEOHandler(cfg.SiteURL),
		Contact:         handler.NewContactHandler(contactService),
		Stats:           handler.NewStatsHandler(statsCache),
		Static:          view.Static(),
		FrontendOrigins: cfg.FrontendOrigins,
		ContactLimiter:  limiter,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "site_url", cfg.SiteURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
