// @title GestorLotes API
// @version 1.0
// @description Gestão de lotes de roupa doada: descrições em texto livre, stock agregado por tamanho, clientes e entregas.

// @contact.name Sérgio Ferreira

// @host localhost:8080
// @BasePath /api
// @schemes http

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/internal/config"
	"github.com/SergioFerreira2020/GestorLotes/server"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 A iniciar o GestorLotes...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("✗ Erro ao carregar a configuração: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	store, err := database.NewSQLiteStoreWithConfig(cfg.DatabasePath, database.StoreConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("✗ Erro ao abrir a base de dados: %v", err)
	}
	defer store.Close()

	var notifier services.Notifier
	if cfg.TelegramEnabled() {
		notifier, err = services.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("✗ Erro ao ligar ao Telegram: %v", err)
		}
		log.Println("✓ Alertas de stock via Telegram ativos")
	} else {
		notifier = services.NopNotifier{}
		log.Println("⚠ Telegram não configurado, alertas de stock apenas nos logs")
	}

	srv := server.NewServer(cfg, store, notifier, logger)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("✗ Erro ao iniciar o servidor: %v", err)
		}
	}()

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Servidor a escutar na porta %s", cfg.Port)
	log.Printf("✓ API disponível em http://localhost:%s/api", cfg.Port)
	log.Printf("✓ Swagger em http://localhost:%s/swagger/index.html", cfg.Port)
	log.Printf("✓ Base de dados: %s", cfg.DatabasePath)
	log.Printf("✓ Lotes numerados: %d · limite de stock baixo: %d", cfg.LoteCount, cfg.LowStockLimit)
	log.Println("  Para parar, prima Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("⏹  Sinal de paragem recebido, a encerrar o servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("✗ Erro ao encerrar o servidor: %v", err)
	} else {
		log.Println("✓ Servidor encerrado")
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
