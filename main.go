package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"newsdesk/api"
	"newsdesk/archive"
	"newsdesk/config"
	"newsdesk/events"
	"newsdesk/news"
	"newsdesk/newsletter"
	"newsdesk/search"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// News aggregation: external API when a key is configured, demo fixtures
	// otherwise. RSS augmentation and content extraction are opt-in.
	client := news.NewClient(os.Getenv("NEWS_API_KEY"))
	if client == nil {
		log.Println("NEWS_API_KEY not set; serving demo fixtures")
	}
	var rss *news.RSSFetcher
	if config.EnvBool("NEWS_RSS") {
		rss = news.NewRSSFetcher()
	}
	newsSvc := news.NewService(client, rss, config.EnvBool("EXTRACT_CONTENT"))
	searchSvc := search.NewService(newsSvc)

	// Newsletter: sqlite store, rate limiter, optional provider/mailer/events.
	store, err := newsletter.OpenStore(config.GetEnvOrDefault("NEWSLETTER_DB", "newsletter.db"))
	if err != nil {
		log.Fatalf("failed to open newsletter store: %v", err)
	}
	defer store.Close()

	var limiter newsletter.Limiter
	redisLimiter, err := newsletter.NewRedisLimiterFromEnv()
	if err != nil {
		log.Printf("Warning: redis limiter unavailable: %v (using in-memory)", err)
	}
	if redisLimiter != nil {
		limiter = redisLimiter
		defer redisLimiter.Close()
	} else {
		limiter = newsletter.NewMemoryLimiter(config.RateLimitMax, config.RateLimitWindow)
	}

	provider := newsletter.SelectProvider()
	if provider != nil {
		log.Printf("Email provider: %s", provider.Name())
	} else {
		log.Println("No email provider configured; subscriptions stored locally only")
	}

	var publisher newsletter.EventPublisher
	producer, err := events.NewProducerFromEnv()
	if err != nil {
		log.Printf("Warning: Kafka producer unavailable: %v (events disabled)", err)
	}
	if producer != nil {
		publisher = producer
		defer producer.Close()
	}

	var mailer newsletter.Mailer
	if m := newsletter.NewResendMailerFromEnv(); m != nil {
		mailer = m
	}

	newsletterSvc := newsletter.NewService(store, limiter, provider, mailer, publisher)

	archiver := archive.NewArchiverFromEnv(context.Background())

	r := api.NewRouter(api.Deps{
		News:       newsSvc,
		Search:     searchSvc,
		Newsletter: newsletterSvc,
		Archiver:   archiver,
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/articles")
	log.Println("  GET  /api/articles/:id")
	log.Println("  GET  /api/articles/:id/related")
	log.Println("  GET  /api/search")
	log.Println("  GET  /api/suggestions")
	log.Println("  POST /api/newsletter")
	log.Println("  GET  /api/newsletter")
	log.Println("  POST /api/newsletter/campaigns")
	log.Println("  POST /api/refresh")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
