package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/snapfeed-app/snapfeed-backend/internal/credentials"
	"github.com/snapfeed-app/snapfeed-backend/internal/objectstore/s3"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository"
	mysqlRepo "github.com/snapfeed-app/snapfeed-backend/internal/repository/mysql"
	redisCache "github.com/snapfeed-app/snapfeed-backend/internal/repository/redis"

	"github.com/joho/godotenv"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest"
	"github.com/snapfeed-app/snapfeed-backend/internal/rest/middleware"
	"github.com/snapfeed-app/snapfeed-backend/internal/usecase/feed"
	"github.com/snapfeed-app/snapfeed-backend/internal/usecase/post"
	"github.com/snapfeed-app/snapfeed-backend/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultURLTTLMin   = 15
	defaultJWTTTLHours = 24
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on the environment")
	}
}

// requireEnv fails startup on missing configuration instead of failing the
// first request that needs it.
func requireEnv(names ...string) map[string]string {
	values := make(map[string]string, len(names))
	var missing []string
	for _, name := range names {
		v := os.Getenv(name)
		if v == "" {
			missing = append(missing, name)
			continue
		}
		values[name] = v
	}
	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v", missing)
	}
	return values
}

func main() {
	env := requireEnv(
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASS", "DATABASE_NAME",
		"JWT_SECRET", "AVATAR_BUCKET", "POST_BUCKET",
	)

	// prepare database
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
		env["DATABASE_USER"], env["DATABASE_PASS"],
		env["DATABASE_HOST"], env["DATABASE_PORT"], env["DATABASE_NAME"])
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare object store. Presigned URLs live slightly longer than the
	// cache entry so a cached URL is never already expired.
	urlTTLStr := os.Getenv("PRESIGNED_URL_TTL_MINUTES")
	urlTTL, err := strconv.Atoi(urlTTLStr)
	if err != nil {
		log.Println("failed to parse presigned URL TTL, using default")
		urlTTL = defaultURLTTLMin
	}
	store, err := s3.NewObjectStore(ctx, time.Duration(urlTTL)*time.Minute)
	if err != nil {
		log.Fatal("failed to configure object store:", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if err := rest.RegisterValidations(); err != nil {
		log.Fatal("failed to register custom validations:", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	credRepo := mysqlRepo.NewCredentialRepository(db)

	urlCache := redisCache.NewURLCache(client, time.Duration(urlTTL)*time.Minute*3/4)
	mediaRepo := repository.NewMediaRepository(store, urlCache)

	// Build service Layer
	jwtSecret := []byte(env["JWT_SECRET"])
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = defaultJWTTTLHours
	}
	credSvc := credentials.NewService(credRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	userSvc := user.NewService(userRepo, mediaRepo, env["AVATAR_BUCKET"])
	postSvc := post.NewService(postRepo, userRepo, mediaRepo, env["POST_BUCKET"])
	feedSvc := feed.NewService(postRepo, userRepo, mediaRepo, env["POST_BUCKET"])

	authHandler := rest.NewAuthHandler(credSvc, userSvc)
	userHandler := rest.NewUserHandler(userSvc)
	postHandler := rest.NewPostHandler(postSvc)
	feedHandler := rest.NewFeedHandler(feedSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.POST("/register", authHandler.Register)
	route.POST("/confirm-email", authHandler.ConfirmEmail)
	route.POST("/login", authHandler.Login)
	route.POST("/forgot-password", authHandler.ForgotPassword)
	route.POST("/confirm-password", authHandler.ConfirmPassword)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/users/me", userHandler.Me)
		authorized.PATCH("/users/me", userHandler.UpdateMe)
		authorized.GET("/users/search/:filter", userHandler.Search)
		authorized.GET("/users/:userId", userHandler.GetByID)
		authorized.PATCH("/users/:followId/follow", userHandler.ToggleFollow)

		authorized.POST("/posts", postHandler.Create)
		authorized.PATCH("/posts/:postId/like", postHandler.ToggleLike)
		authorized.POST("/posts/:postId/comments", postHandler.Comment)

		authorized.GET("/feed/users/:userId", feedHandler.GetByUser)
		authorized.GET("/feed/home", feedHandler.GetHome)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
