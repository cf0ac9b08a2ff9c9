package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foliocms/foliocms/handlers"
	"github.com/foliocms/foliocms/internal/aggregate"
	"github.com/foliocms/foliocms/internal/cdn"
	"github.com/foliocms/foliocms/internal/config"
	"github.com/foliocms/foliocms/internal/content/repository"
	"github.com/foliocms/foliocms/internal/content/service"
	"github.com/foliocms/foliocms/internal/database"
	"github.com/foliocms/foliocms/internal/gallery"
	"github.com/foliocms/foliocms/internal/oidc"
	"github.com/foliocms/foliocms/internal/sessions"
	"github.com/foliocms/foliocms/internal/storage"
	"github.com/foliocms/foliocms/internal/users"
	"github.com/foliocms/foliocms/pkg/logger"
	"github.com/foliocms/foliocms/pkg/metrics"
	"github.com/foliocms/foliocms/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: keycloak=%v mongo=%v redis=%v", cfg.Keycloak.URL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// shared runtime vars used by handlers/readiness
	var verifier middleware.Verifier
	var userSvc *users.Service
	var sessionsSvc *sessions.Service
	var contentSvc *service.Service

	ctx := context.Background()

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err == nil {
			// expose Redis client for blacklist checks (session wiring happens later)
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness — 200 only when the critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["content"] = contentSvc != nil
		if contentSvc == nil {
			ready = false
		}
		deps["sessions"] = sessionsSvc != nil
		deps["users"] = userSvc != nil

		// OIDC readiness: if Keycloak was configured we expect a verifier
		// (or ALLOW_INSECURE_TOKEN)
		if cfg.Keycloak.URL != "" && verifier == nil {
			deps["oidc"] = false
			ready = false
		} else {
			deps["oidc"] = true
		}

		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Keycloak OIDC verifier for the admin surface
	if cfg.Keycloak.URL != "" && cfg.Keycloak.ClientID != "" && cfg.Keycloak.Realm != "" {
		issuer := strings.TrimRight(cfg.Keycloak.URL, "/") + "/realms/" + cfg.Keycloak.Realm
		ver, err := oidc.NewVerifier(ctx, issuer, cfg.Keycloak.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = ver
		}
	} else if cfg.Keycloak.URL != "" && cfg.Keycloak.ClientID != "" {
		// Fallback: try URL as issuer (older deployments expose the realm path in URL)
		ver, err := oidc.NewVerifier(ctx, cfg.Keycloak.URL, cfg.Keycloak.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier (fallback): %v", err)
		} else {
			verifier = ver
		}
	}

	// Insecure verifier for integration tests: parse claims without signature
	// verification. Never set ALLOW_INSECURE_TOKEN in production.
	if verifier == nil && strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")), "true") {
		logger.Warn("enabling insecure OIDC verifier (integration mode)")
		verifier = oidc.NewInsecureVerifier()
	}

	// Prefer Redis-based sessions when available
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("Using Redis for session storage")
	}

	// MongoDB: portfolio content plus users (and sessions when Redis is absent)
	if cfg.MongoDB.URI != "" {
		// Retry/backoff to tolerate startup races against the database container
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)

			contentSvc = service.NewService(repository.NewMongoRepo(db))
			userSvc = users.NewService(users.NewMongoUserRepository(db.Collection("users")))
			if sessionsSvc == nil {
				sessionsSvc = sessions.NewService(sessions.NewMongoRepository(db.Collection("sessions")))
			}
		}
	}

	// Without a reachable document store the public surface still serves the
	// built-in fallback content from an empty in-memory repository.
	if contentSvc == nil {
		logger.Warnf("document store unavailable, serving from in-memory repository")
		contentSvc = service.NewService(repository.NewMemoryRepo())
	}

	store := aggregate.NewStore(contentSvc)
	store.FetchAll(ctx)

	// Blob storage for gallery and profile/project images
	var galleryStore gallery.BlobStore
	if mc := storage.LoadMinIOConfig(); mc.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(mc)
		if err != nil {
			logger.Warnf("failed to initialize MinIO storage: %v", err)
		} else {
			galleryStore = ms
		}
	}
	if galleryStore == nil {
		logger.Warnf("blob storage unavailable, gallery uploads are ephemeral")
		galleryStore = gallery.NewMemoryStore()
	}
	gallerySvc := gallery.NewService(galleryStore)

	// Legacy media CDN listing, optional
	var cdnSvc *cdn.Service
	if svc, err := cdn.NewService(cfg.Cloudinary); err != nil {
		logger.Infof("CDN listing disabled: %v", err)
	} else {
		cdnSvc = svc
	}

	if userSvc != nil && sessionsSvc != nil {
		h := handlers.NewAuthHandler(cfg, userSvc, sessionsSvc)
		h.Register(r.Group("/"))
	} else {
		logger.Warnf("auth handlers not registered because user/sessions services are unavailable")
	}

	contentHandler := handlers.NewContentHandler(contentSvc, store, gallerySvc, cdnSvc)
	contentHandler.Register(r, verifier)

	// authenticated identity endpoint for the admin UI
	me := r.Group("/api/v1")
	if verifier != nil {
		me.GET("/me", middleware.AuthMiddleware(verifier), func(c *gin.Context) {
			claims, _ := c.Get("claims")
			if userSvc != nil {
				if cm, ok := claims.(map[string]interface{}); ok {
					if u, err := userSvc.UpsertFromClaims(c.Request.Context(), cm); err == nil && u != nil {
						c.JSON(http.StatusOK, gin.H{"user": u})
						return
					}
				}
			}
			c.JSON(http.StatusOK, gin.H{"claims": claims})
		})
	} else {
		me.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "OIDC not configured"})
		})
	}

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting foliocms on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
