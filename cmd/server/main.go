package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/config"
	"github.com/languagebaba/site-api/internal/database"
	"github.com/languagebaba/site-api/internal/handler"
	"github.com/languagebaba/site-api/internal/queue"
	"github.com/languagebaba/site-api/internal/repository"
	"github.com/languagebaba/site-api/internal/router"
	"github.com/languagebaba/site-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is unreachable

	users := repository.NewUserRepo(db)
	perms := repository.NewPermissionRepo(db)
	devices := repository.NewDeviceRepo(db)
	activity := repository.NewActivityRepo(db)
	content := repository.NewContentRepo(db)
	benefits := repository.NewBenefitRepo(db)
	testimonials := repository.NewTestimonialRepo(db)
	faqs := repository.NewFAQRepo(db)
	pricing := repository.NewPricingRepo(db)
	blog := repository.NewBlogRepo(db)
	seo := repository.NewSEORepo(db)
	settings := repository.NewSettingRepo(db)
	analytics := repository.NewAnalyticsRepo(db)

	recorder := service.NewActivityRecorder(activity, cfg.AMQPURL)
	if cfg.AMQPURL != "" {
		go queue.StartActivityConsumer(cfg.AMQPURL, activity)
	}

	authH := handler.NewAuthHandler(cfg, users, perms, recorder)
	blogH := handler.NewBlogHandler(blog, recorder)
	testimonialH := handler.NewTestimonialHandler(testimonials, recorder)
	analyticsH := handler.NewAnalyticsHandler(analytics, recorder)

	admin := router.AdminHandlers{
		Users:        handler.NewUserHandler(cfg, users, perms, recorder),
		Devices:      handler.NewDeviceHandler(devices, recorder),
		Content:      handler.NewContentHandler(content, recorder),
		Benefits:     handler.NewBenefitHandler(benefits, recorder),
		Testimonials: testimonialH,
		FAQs:         handler.NewFAQHandler(faqs, recorder),
		Pricing:      handler.NewPricingHandler(pricing, recorder),
		Blog:         blogH,
		SEO:          handler.NewSEOHandler(seo, recorder),
		Settings:     handler.NewSettingHandler(settings, recorder),
		Analytics:    analyticsH,
		Dashboard:    handler.NewDashboardHandler(analytics, activity),
		Activity:     handler.NewActivityHandler(activity),
	}

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e, db)
	router.RegisterPublic(e, rdb, blogH, testimonialH, analyticsH)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterAdmin(e, cfg.JWTSecret, devices, recorder, perms, admin)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
