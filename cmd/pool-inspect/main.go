package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/CropperFinance/cropper-instructions/pkg/config"
	"github.com/CropperFinance/cropper-instructions/pkg/sol"
	"github.com/CropperFinance/cropper-instructions/pkg/subscription"
	"github.com/CropperFinance/cropper-instructions/pkg/swap"
)

type PoolReport struct {
	PoolID       string `json:"poolId"`
	Initialized  bool   `json:"initialized"`
	Nonce        uint8  `json:"nonce"`
	TokenProgram string `json:"tokenProgram"`
	TokenA       string `json:"tokenAAccount"`
	TokenB       string `json:"tokenBAccount"`
	PoolMint     string `json:"poolMint"`
	TokenAMint   string `json:"tokenAMint"`
	TokenBMint   string `json:"tokenBMint"`
	ReserveA     string `json:"reserveA,omitempty"`
	ReserveB     string `json:"reserveB,omitempty"`
	Invariant    string `json:"invariant,omitempty"`
	Slot         uint64 `json:"slot,omitempty"`
}

var (
	poolArg      = flag.String("pool", "", "Pool state account address (required)")
	configPath   = flag.String("config", "config.yaml", "Path to YAML config file")
	rpcEndpoints = flag.String("rpc", "", "Comma-separated RPC endpoints overriding the config")
	withReserves = flag.Bool("reserves", true, "Fetch vault balances alongside the pool state")
	watch        = flag.Bool("watch", false, "Keep watching the pool over websocket and print every update")
	rateLimit    = flag.Int("ratelimit", 0, "RPC requests per second per endpoint (0 = config value)")
)

func main() {
	flag.Parse()

	log := logrus.WithField("component", "pool-inspect")

	if *poolArg == "" {
		fmt.Fprintln(os.Stderr, "Error: -pool is required")
		fmt.Fprintln(os.Stderr, "\nUsage:")
		flag.PrintDefaults()
		os.Exit(2)
	}

	poolID, err := solana.PublicKeyFromBase58(*poolArg)
	if err != nil {
		log.WithError(err).Fatal("invalid pool address")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if *rpcEndpoints != "" {
		cfg.RPC.Endpoints = splitEndpoints(*rpcEndpoints)
	}
	if *rateLimit > 0 {
		cfg.RPC.RequestsPerSecond = *rateLimit
	}

	rpcPool, err := sol.NewRPCPool(cfg.RPC.Endpoints, cfg.RPC.RequestsPerSecond)
	if err != nil {
		log.WithError(err).Fatal("create rpc pool")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := rpcPool.GetClient()
	pool, err := sol.FetchPool(ctx, client, poolID)
	if err != nil {
		log.WithError(err).Fatal("fetch pool")
	}

	printReport(ctx, client, poolID, pool, 0)

	if !*watch {
		return
	}

	watcher, err := subscription.NewPoolWatcher(ctx, cfg.RPC.WSEndpoint)
	if err != nil {
		log.WithError(err).Fatal("create pool watcher")
	}
	defer watcher.Close()

	err = watcher.WatchPool(poolID, func(id solana.PublicKey, updated swap.PoolAccount, slot uint64) {
		printReport(ctx, rpcPool.GetClient(), id, updated, slot)
	})
	if err != nil {
		log.WithError(err).Fatal("watch pool")
	}

	<-ctx.Done()
}

func printReport(ctx context.Context, client *sol.Client, poolID solana.PublicKey, pool swap.PoolAccount, slot uint64) {
	report := PoolReport{
		PoolID:       poolID.String(),
		Initialized:  pool.IsInitialized(),
		Nonce:        pool.Nonce(),
		TokenProgram: pool.TokenProgramID().String(),
		TokenA:       pool.TokenAAccount().String(),
		TokenB:       pool.TokenBAccount().String(),
		PoolMint:     pool.PoolMint().String(),
		TokenAMint:   pool.TokenAMint().String(),
		TokenBMint:   pool.TokenBMint().String(),
		Slot:         slot,
	}

	if *withReserves {
		fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		reserves, err := sol.FetchReserves(fetchCtx, client, pool)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("fetch reserves")
		} else {
			report.ReserveA = reserves.TokenA.String()
			report.ReserveB = reserves.TokenB.String()
			report.Invariant = reserves.Invariant().String()
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logrus.WithError(err).Fatal("marshal report")
	}
	fmt.Println(string(out))
}

func splitEndpoints(s string) []string {
	var endpoints []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			endpoints = append(endpoints, e)
		}
	}
	return endpoints
}
