package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/database/mongoclient"
	"github.com/bidhub/goapi/base/database/redisclient"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/base/metrics"
	bValidator "github.com/bidhub/goapi/base/validator"
	mmiddleware "github.com/bidhub/goapi/middleware"
	"github.com/bidhub/goapi/service/messaging"
	"github.com/bidhub/goapi/service/query"
	"github.com/bidhub/goapi/service/redis"
	account_delivery "github.com/bidhub/goapi/stores/account/delivery/http"
	account_repository "github.com/bidhub/goapi/stores/account/repository"
	account_usecase "github.com/bidhub/goapi/stores/account/usecase"
	auction_delivery "github.com/bidhub/goapi/stores/auction/delivery/http"
	auction_repository "github.com/bidhub/goapi/stores/auction/repository"
	auction_usecase "github.com/bidhub/goapi/stores/auction/usecase"
	auth_delivery "github.com/bidhub/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/bidhub/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/bidhub/goapi/stores/auth/usecase"
	hc_delivery "github.com/bidhub/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bidhub/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bidhub/goapi/stores/healthcheck/usecase"
	notification_delivery "github.com/bidhub/goapi/stores/notification/delivery/http"
	notification_repository "github.com/bidhub/goapi/stores/notification/repository"
	notification_usecase "github.com/bidhub/goapi/stores/notification/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())

	v := validator.New()
	if err := bValidator.RegisterCustomValidations(v); err != nil {
		log.Log().WithField("err", err).Panic("fail to register validations")
	}
	e.Validator = bValidator.NewCustomValidator(v)

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init amqp publisher
	context.Info("init amqp")
	amqpURI := viper.GetString("amqp.uri")
	amqpExchange := viper.GetString("amqp.exchange")
	publisher := messaging.MustNewAmqpPublisher(amqpURI, amqpExchange)
	defer publisher.Close()

	// repositories
	healthCheckRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.NewAccountRepo(q, redisCache)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	bidRepo := auction_repository.NewBidRepo(q)
	mediaRepo := auction_repository.NewMediaRepo(q)
	notificationRepo := notification_repository.NewNotificationRepo(q)

	// usecases
	healthCheckUC := hc_usecase.New(healthCheckRepo)
	accountUC := account_usecase.New(accountRepo)
	authUC := auth_usecase.New(viper.GetString("auth.jwtSecret"), accountUC)
	notificationUC := notification_usecase.New(&notification_usecase.NotificationUseCaseCfg{
		Repo:      notificationRepo,
		Publisher: publisher,
	})
	emitter := notification_usecase.NewEmitter(&notification_usecase.NotificationUseCaseCfg{
		Repo:      notificationRepo,
		Publisher: publisher,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo: auctionRepo,
		BidRepo:     bidRepo,
		MediaRepo:   mediaRepo,
		Emitter:     emitter,
		Query:       q,
	})

	authMiddleware := auth_middleware.New(authUC, accountUC)

	// deliveries
	hc_delivery.New(e, healthCheckUC)
	auth_delivery.New(e, authUC)
	account_delivery.New(e, accountUC)
	auction_delivery.New(e, auctionUC, authMiddleware)
	notification_delivery.New(e, notificationUC, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
