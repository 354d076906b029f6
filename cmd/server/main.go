package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/movie-booking-assistant/internal/catalog"
	"github.com/iliyamo/movie-booking-assistant/internal/config"
	"github.com/iliyamo/movie-booking-assistant/internal/dialogue"
	"github.com/iliyamo/movie-booking-assistant/internal/handler"
	"github.com/iliyamo/movie-booking-assistant/internal/interpret"
	"github.com/iliyamo/movie-booking-assistant/internal/middleware"
	"github.com/iliyamo/movie-booking-assistant/internal/queue"
	"github.com/iliyamo/movie-booking-assistant/internal/router"
	"github.com/iliyamo/movie-booking-assistant/internal/session"
	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

func main() {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// In-memory stores, seeded with the demo catalog.
	inv := store.SeedDemo(time.Now())
	ledger := store.NewLedger(inv)
	prefs := store.NewPreferenceStore()

	// Redis backs the rate limiter and the catalog cache.  Either
	// feature degrades to a no-op when the connection fails.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and catalog caching disabled")
	}

	// Catalog: external lookups only when an API key is configured,
	// always falling back to the seeded local inventory.
	var remote catalog.Client
	if cfg.OMDBAPIKey != "" {
		remote = catalog.NewCachedClient(
			catalog.NewOMDBClient(cfg.OMDBBaseURL, cfg.OMDBAPIKey),
			rdb,
			config.LoadCatalogCacheConfig(),
		)
	}
	cat := catalog.NewService(remote, inv)

	// Booking events go to RabbitMQ when configured.  The consumer is
	// opt-in; production runs it as its own process.
	var events dialogue.EventPublisher
	if cfg.AMQPURL != "" {
		events = queue.NewPublisher(cfg.AMQPURL)
		if cfg.ConsumerEnabled {
			go queue.StartConsumer(cfg.AMQPURL)
		}
	}

	engine := dialogue.New(inv, ledger, prefs, cat, interpret.Heuristic{}, events)
	sessions := session.NewRegistry(engine)
	go func() {
		for range time.Tick(time.Minute) {
			if n := sessions.ExpireIdle(cfg.SessionIdleTTL); n > 0 {
				log.Printf("expired %d idle sessions", n)
			}
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterRoutes(e)
	router.RegisterChat(e, handler.NewChatHandler(sessions), rateLimit)
	router.RegisterBrowse(e, handler.NewBrowseHandler(inv), handler.NewBookingHandler(ledger))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
