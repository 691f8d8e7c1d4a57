package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/tbetti/solana-carbon-wallet/internal/api/bootstrap"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

const networkProtocol = "tcp"

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger
	cfg := bootstrap.ConfigFromEnv()

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		defaultLogger.Error("failed to listen", "error", err.Error())
		return
	}

	app := bootstrap.NewAPIApp(cfg, defaultLogger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		defaultLogger.Error("api stopped with error", "error", err.Error())
	}
}
