package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/tomz197/gravityquest/internal/config"
	"github.com/tomz197/gravityquest/internal/web"
)

const (
	defaultPort = 3000
	defaultRoot = "public"
)

func main() {
	logger := config.NewLogger(os.Stderr, config.GetEnv("GQ_LOG_LEVEL", "info"), "web")

	host := config.GetEnv("WEB_HOST", "")
	port, err := config.GetEnvInt("PORT", defaultPort)
	if err != nil {
		logger.Fatal("invalid port", "err", err)
	}
	root := config.GetEnv("WEB_ROOT", defaultRoot)

	handler := web.NewHandler(web.Options{
		Root:    root,
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "localhost"),
		SSHPort: config.GetEnv("SSH_PORT", "2222"),
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	logger.Info("Gravity Quest web server listening", "addr", addr, "root", root)
	if err := web.Serve(ctx, addr, handler); err != nil {
		logger.Fatal("server error", "err", err)
	}
	logger.Info("web server stopped")
}
