package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exchangethb/exchange-data-service/internal/adapters/dataservice"
	"github.com/exchangethb/exchange-data-service/internal/client"
	"github.com/exchangethb/exchange-data-service/internal/config"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/worker"
)

// Terminal pricing client: seeds the service's sample data, polls it on an
// interval and logs the derived cost breakdown for the configured amount.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := domain.SetDisplayLocation(cfg.Display.Timezone); err != nil {
		logger.Error("invalid display timezone", "timezone", cfg.Display.Timezone, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := dataservice.NewClient(
		cfg.Client.BaseURL,
		cfg.Client.AuthToken,
		dataservice.WithTimeout(cfg.Client.Timeout),
		dataservice.WithRetry(cfg.Client.MaxRetries, cfg.Client.RetryBackoff),
		dataservice.WithLogger(logger),
	)

	pricing := client.NewPricingClient(api, cfg.Client.Exchange, cfg.Client.Pair, logger)
	pricing.SetAmount(cfg.Client.Amount)

	logger.Info("initializing pricing client",
		"exchange", cfg.Client.Exchange,
		"pair", cfg.Client.Pair,
		"amount", cfg.Client.Amount,
	)
	pricing.Initialize(ctx)
	report(pricing, logger)

	scheduler := worker.NewScheduler(logger,
		worker.Task{
			Name:     "data_refresh",
			Interval: cfg.Client.RefreshInterval,
			Run: func(ctx context.Context) {
				pricing.Refresh(ctx)
				report(pricing, logger)
			},
		},
		worker.Task{
			Name:     "clock_tick",
			Interval: cfg.Client.ClockInterval,
			Run: func(ctx context.Context) {
				pricing.Tick(time.Now())
			},
		},
	)

	scheduler.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("received shutdown signal", "signal", sig)

	cancel()
	if err := scheduler.Stop(); err != nil {
		logger.Error("scheduler did not stop cleanly", "error", err)
	}
}

func report(pricing *client.PricingClient, logger *slog.Logger) {
	snapshot := pricing.Snapshot()
	costs := pricing.Costs()

	logger.Info("latest snapshot",
		"buy_price", snapshot.BuyPrice.String(),
		"sell_price", snapshot.SellPrice.String(),
		"spread", snapshot.Spread.String(),
		"trading_fee", snapshot.TradingFee.String(),
		"last_updated", snapshot.LastUpdated,
		"history_points", len(pricing.History()),
	)
	logger.Info("cost breakdown",
		"buy_subtotal", costs.Buy.Subtotal.String(),
		"buy_fee", costs.Buy.Fee.String(),
		"buy_total", costs.Buy.Total.String(),
		"buy_effective_price", costs.Buy.EffectivePrice,
		"sell_subtotal", costs.Sell.Subtotal.String(),
		"sell_fee", costs.Sell.Fee.String(),
		"sell_total", costs.Sell.Total.String(),
		"sell_effective_price", costs.Sell.EffectivePrice,
	)
}
