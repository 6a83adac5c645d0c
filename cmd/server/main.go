package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell-blog/internal/config"
	"github.com/inkwell/inkwell-blog/internal/database"
	"github.com/inkwell/inkwell-blog/internal/handler"
	"github.com/inkwell/inkwell-blog/internal/queue"
	"github.com/inkwell/inkwell-blog/internal/repository"
	"github.com/inkwell/inkwell-blog/internal/router"
	queue_publisher "github.com/inkwell/inkwell-blog/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	// Background consumer feeding logs/activity.log from blog.published.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	blogs := repository.NewBlogRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	blogHandler := handler.NewBlogHandler(blogs, users)
	blogHandler.Publish = queue_publisher.PublishBlogPublished
	profileHandler := handler.NewProfileHandler(cfg, users, blogs)

	e := echo.New()
	router.Register(e, cfg, rdb, authHandler, blogHandler, profileHandler)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
