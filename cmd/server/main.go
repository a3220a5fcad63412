package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/config"
	"github.com/nyumba/nyumba-api/internal/database"
	"github.com/nyumba/nyumba-api/internal/handler"
	"github.com/nyumba/nyumba-api/internal/middleware"
	"github.com/nyumba/nyumba-api/internal/queue"
	"github.com/nyumba/nyumba-api/internal/repository"
	"github.com/nyumba/nyumba-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs rate limiting and the public response cache.  A nil
	// client disables both instead of failing startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	properties := repository.NewPropertyRepo(db)
	viewings := repository.NewViewingRepo(db)
	watchlist := repository.NewWatchlistRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	profileH := handler.NewProfileHandler(users)
	browseH := handler.NewBrowseHandler(properties)
	searchH := handler.NewSearchHandler(properties)
	propertyH := handler.NewPropertyHandler(properties)
	clientViewH := handler.NewClientViewingHandler(viewings, properties)
	ownerViewH := handler.NewOwnerViewingHandler(viewings, properties)
	watchH := handler.NewWatchlistHandler(watchlist)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, browseH, searchH, cache)
	router.RegisterClient(e, profileH, clientViewH, watchH, cfg.JWTSecret)
	router.RegisterOwner(e, propertyH, ownerViewH, cfg.JWTSecret)

	// The consumer appends confirmed viewings to the viewing log and
	// reconnects on broker failures; it never stops on its own.
	go func() {
		if err := queue.StartViewingConsumer(cfg.ViewingLogPath); err != nil {
			log.Printf("viewing consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
