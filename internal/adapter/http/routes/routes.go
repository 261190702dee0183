package routes

import (
	"context"
	"io"
	"log"
	_ "mecanica_workorders/docs"
	"mecanica_workorders/internal/adapter/cache"
	"mecanica_workorders/internal/adapter/http/handlers"
	repository2 "mecanica_workorders/internal/adapter/persistence/repository"
	"mecanica_workorders/internal/infrastructure/database"
	"mecanica_workorders/internal/infrastructure/messaging"
	"mecanica_workorders/internal/infrastructure/metrics"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/internal/usecase/interfaces"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	ctx := context.Background()

	provider, err := metrics.SetupPrometheus(ctx)
	if err != nil {
		log.Fatalf("Failed to setup metrics: %v", err)
	}
	defer func() {
		if err := metrics.Shutdown(context.Background(), provider); err != nil {
			log.Printf("metrics shutdown failed: %v", err)
		}
	}()

	appMetrics, err := metrics.NewMetrics(provider)
	if err != nil {
		log.Printf("Failed to create metrics instruments: %v", err)
		return
	}

	setMiddlewares(appMetrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	closeRoutes := getRoutes(ctx, appMetrics)
	defer closeRoutes()

	port := getenvDefault("PORT", strconv.Itoa(PORT))
	if err := router.Run(":" + port); err != nil {
		log.Printf("Failed to startup the application: %v", err.Error())
	}
}

// getRoutes wires the work order stack and returns a function releasing its clients.
func getRoutes(ctx context.Context, appMetrics *metrics.Metrics) func() {
	ddb := database.ConnectDynamoDB(ctx)

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)

	var customers interfaces.ICustomerReader = repository2.NewCustomerDynamoReader(ddb)
	var vehicles interfaces.IVehicleReader = repository2.NewVehicleDynamoReader(ddb)

	closers := []io.Closer{}
	if readCache, rdb := newReadCache(ctx); readCache != nil {
		customers = cache.NewCachedCustomerReader(customers, readCache)
		vehicles = cache.NewCachedVehicleReader(vehicles, readCache)
		closers = append(closers, rdb)
	}

	sender := messaging.NewNotificationSenderFromEnv()
	if c, ok := sender.(io.Closer); ok {
		closers = append(closers, c)
	}

	notificationUseCase := usecase.NewWorkOrderNotificationUseCase(
		customers,
		vehicles,
		sender,
		appMetrics,
		getenvDuration("NOTIFICATION_TIMEOUT", usecase.DefaultNotificationTimeout),
	)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, notificationUseCase)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler)

	return func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("close failed: %v", err)
			}
		}
	}
}

// newReadCache connects to REDIS_ADDR. Caching is skipped when the address is unset or
// the server does not answer.
func newReadCache(ctx context.Context) (*cache.RedisCache, *redis.Client) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Printf("[workorder][cache] REDIS_ADDR not set, registry reads are not cached")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[workorder][cache] redis unavailable addr=%s err=%v", addr, err)
		_ = rdb.Close()
		return nil, nil
	}

	ttl := getenvDuration("READ_CACHE_TTL", cache.DefaultTTL)
	log.Printf("[workorder][cache] redis enabled addr=%s ttl=%s", addr, ttl)
	return cache.NewRedisCache(rdb, ttl), rdb
}

func setMiddlewares(appMetrics *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(appMetrics.GinMiddleware())
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
