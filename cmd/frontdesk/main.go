package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/config"
	"github.com/kristian0808/arcade-frontdesk/internal/httpserver"
	"github.com/kristian0808/arcade-frontdesk/internal/push"
	memberrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/member"
	noterepo "github.com/kristian0808/arcade-frontdesk/internal/repository/note"
	pcrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/pc"
	productrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/product"
	tabrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/tab"
	notessvc "github.com/kristian0808/arcade-frontdesk/internal/service/notes"
	productsvc "github.com/kristian0808/arcade-frontdesk/internal/service/product"
	rostersvc "github.com/kristian0808/arcade-frontdesk/internal/service/roster"
	"github.com/kristian0808/arcade-frontdesk/internal/service/tabsession"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[frontdesk] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	client := backend.New(cfg.BackendBaseURL, cfg.BackendToken, cfg.BackendTimeout, logger)

	tabRepo := tabrepo.NewHTTPAPI(client)
	productRepo := productrepo.NewHTTPAPI(client)
	memberRepo := memberrepo.NewHTTPAPI(client)
	pcRepo := pcrepo.NewHTTPAPI(client)
	noteRepo := noterepo.NewHTTPAPI(client)

	cache := newRedisClient(cfg.RedisAddr, logger)

	rosterService := rostersvc.New(memberRepo, pcRepo, cache, cfg.RosterCacheTTL, logger)
	productService := productsvc.New(productRepo)
	notesService := notessvc.New(noteRepo)
	sessionManager := tabsession.NewManager(tabRepo, logger)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cache != nil {
		listener := push.NewListener(cache, rosterService, sessionManager, logger)
		go func() {
			if err := listener.Run(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Printf("push listener stopped: %v", err)
			}
		}()
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Roster:         rosterService,
		Products:       productService,
		Notes:          notesService,
		Sessions:       sessionManager,
		Cache:          cache,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		logger.Printf("received shutdown signal")
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// newRedisClient connects to redis for the roster cache and push channel. A
// missing address or failed ping disables both; the service degrades to
// direct backend reads.
func newRedisClient(addr string, logger *log.Logger) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Printf("redis at %s not reachable, cache and push disabled: %v", addr, err)
		return nil
	}
	return client
}
