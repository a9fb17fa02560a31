package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/chainview-labs/storage-value-api/api"
	"github.com/chainview-labs/storage-value-api/chain"
	"github.com/chainview-labs/storage-value-api/config"
)

// Version will be set at build time
var Version = "development"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	// create a new logger
	Logger := slog.New(tint.NewHandler(os.Stderr, nil))

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}),
	))

	Logger.Info("Starting storage-value-api ("+Version+")",
		"Go Version", runtime.Version(),
		"Operating System", runtime.GOOS,
		"Architecture", runtime.GOARCH)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	reader, err := chain.NewClient(chain.ClientOpts{
		Endpoint:        cfg.RPCURL,
		ContractAddress: common.HexToAddress(cfg.ContractAddress),
		ChainName:       cfg.ChainName,
		Logger:          Logger.With("component", "chain-reader"),
	})
	if err != nil {
		log.Fatalf("failed to create chain client: %v", err)
	}

	// start api server
	server := api.NewServer(api.ServerOpts{
		Logger: Logger.With("component", "api-server"),
		Reader: reader,
		Port:   cfg.APIPort,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.StartServer()
	}()

	// Handle OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either error or signal
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)
		fmt.Println("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}
}
