package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/database/mongoclient"
	"github.com/bidhub/goapi/base/log"
	"github.com/bidhub/goapi/base/sweeper"
	mmiddleware "github.com/bidhub/goapi/middleware"
	"github.com/bidhub/goapi/service/messaging"
	"github.com/bidhub/goapi/service/query"
	auction_repository "github.com/bidhub/goapi/stores/auction/repository"
	auction_usecase "github.com/bidhub/goapi/stores/auction/usecase"
	notification_repository "github.com/bidhub/goapi/stores/notification/repository"
	notification_usecase "github.com/bidhub/goapi/stores/notification/usecase"
)

func init() {
	pflag.String("config", "infra/configs/sweeper/config.yaml", "path to config file")
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
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	q := initMongo()

	publisher := messaging.MustNewAmqpPublisher(
		viper.GetString("amqp.uri"),
		viper.GetString("amqp.exchange"),
	)
	defer publisher.Close()

	auctionRepo := auction_repository.NewAuctionRepo(q)
	bidRepo := auction_repository.NewBidRepo(q)
	mediaRepo := auction_repository.NewMediaRepo(q)
	notificationRepo := notification_repository.NewNotificationRepo(q)

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

	errCh := make(chan error, 10)
	sw := sweeper.New(&sweeper.Cfg{
		Auction:  auctionUC,
		Interval: viper.GetDuration("sweeper.interval"),
		ErrorCh:  errCh,
	})
	sw.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case err := <-errCh:
		ctx.WithField("err", err).Error("sweeper error")
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("received signal")
	}

	go func() {
		for range errCh {
		}
	}()
	cancel()

	sw.Wait()
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
