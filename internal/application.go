package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService := service.NewBotService(logger)
	gameManager := usecase.NewGameManager(logger, botService, conf.Bot.Level())

	log.Info("Starting console", "bot_mode", conf.Bot.Mode)

	consoleServer := console.New(logger, gameManager, conf.Console.Prompt)
	if err := consoleServer.Start(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}
