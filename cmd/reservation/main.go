package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/cli"
	"github.com/sanosuguru/go-hotel-reservation/internal/config"
	"github.com/sanosuguru/go-hotel-reservation/internal/infrastructure/jsonfile"
	"github.com/sanosuguru/go-hotel-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "エラー: 設定ファイルを読み込めません:", err)
		return cli.ExitInternal
	}
	logger.Init(cfg.App.Env, cfg.App.LogLevel)
	defer func() { _ = logger.Sync() }()

	// Ctrl+C で実行中の操作を打ち切る
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.NewWithRegistry(reg)

	hotelRepo := jsonfile.NewHotelRepository(cfg.Storage.HotelsPath(), m)
	customerRepo := jsonfile.NewCustomerRepository(cfg.Storage.CustomersPath(), m)
	reservationRepo := jsonfile.NewReservationRepository(cfg.Storage.ReservationsPath(), m)

	var cache application.AvailabilityCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&cfg.Redis)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := redis.Ping(pingCtx, client)
		cancel()
		if err != nil {
			logger.Warn("Redisに接続できないためキャッシュなしで実行します", zap.Error(err))
		} else {
			cache = redis.NewRoomCache(client, cfg.Redis.CacheTTL)
			logger.Debug("空き室数キャッシュを有効化", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	hotelService := application.NewHotelService(hotelRepo, reservationRepo, cache, m)
	customerService := application.NewCustomerService(customerRepo, m)
	reservationService := application.NewReservationService(reservationRepo, customerService, hotelService, m)

	app := cli.NewApp(hotelService, customerService, reservationService, os.Stdout, os.Stderr)
	err = app.Run(ctx, args)
	code := cli.ExitCode(err)
	// 使い方の誤りは App が出力済み
	if err != nil && code != cli.ExitUsage {
		fmt.Fprintln(os.Stderr, "エラー:", err)
	}

	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path, reg); err != nil {
			logger.Warn("メトリクスの書き出しに失敗", zap.String("path", path), zap.Error(err))
		}
	}
	return code
}

// loadConfig は ENV_FILE が指定されていればそのファイルを、なければカレントの .env を読み込む
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load(), nil
}
