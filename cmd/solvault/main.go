package main

import (
	"context"
	"fmt"
	"os"

	"github.com/solvault/solvault/internal/auth"
	"github.com/solvault/solvault/internal/balance"
	"github.com/solvault/solvault/internal/config"
	"github.com/solvault/solvault/internal/handlers/cli"
	"github.com/solvault/solvault/internal/handlers/rest"
	"github.com/solvault/solvault/internal/history"
	"github.com/solvault/solvault/internal/infra/aggregator/jupiter"
	"github.com/solvault/solvault/internal/infra/ledger/solanarpc"
	"github.com/solvault/solvault/internal/infra/storage/postgres"
	"github.com/solvault/solvault/internal/infra/storage/redis"
	"github.com/solvault/solvault/internal/pkg/logger"
	"github.com/solvault/solvault/internal/pkg/telemetry"
	transporthttp "github.com/solvault/solvault/internal/pkg/transport/http"
	"github.com/solvault/solvault/internal/pkg/transport/jsonrpc"
	"github.com/solvault/solvault/internal/signing"
	"github.com/solvault/solvault/internal/submit"
	"github.com/solvault/solvault/internal/swap"
	"github.com/solvault/solvault/internal/token"
	"github.com/solvault/solvault/internal/transfer"
	"github.com/solvault/solvault/internal/walletops"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "init telemetry: %v\n", err)
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	wallets, err := postgres.NewClient(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal(ctx, "connecting to postgres", "error", err)
	}
	defer wallets.Close()

	sessions, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "connecting to redis", "error", err)
	}
	defer sessions.Close()

	registry := token.DefaultRegistry()

	rpcConn := jsonrpc.NewClient(cfg.SolanaRPCEndpoint)
	ledger := solanarpc.NewClient(rpcConn, registry)
	quotes := jupiter.NewClient(transporthttp.NewClient(), cfg.JupiterEndpoint)

	ops := walletops.New(
		registry,
		transfer.NewBuilder(ledger),
		swap.NewRelay(quotes),
		signing.New(wallets),
		submit.New(ledger, submit.WithExplorerBase(cfg.ExplorerBase)),
		balance.NewAggregator(ledger, registry),
		history.NewService(ledger),
	)

	srv := rest.NewServer(cfg.HTTPAddr, ops, auth.New(sessions))

	if err := cli.Run(ctx, srv); err != nil {
		logger.Fatal(ctx, "service terminated", "error", err)
	}
}
