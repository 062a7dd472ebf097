package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/blockreg/internal/api"
	"github.com/annel0/blockreg/internal/cache"
	"github.com/annel0/blockreg/internal/config"
	"github.com/annel0/blockreg/internal/logging"
	"github.com/annel0/blockreg/internal/observability"
	"github.com/annel0/blockreg/internal/world/block"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или BLOCKREG_CONFIG)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}

	if err := initLogging(cfg.Logging); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🧱 Запуск справочника типов блоков...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		logging.Error("❌ Ошибка инициализации OpenTelemetry: %v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}

	// Реестр собирается один раз; ошибка каталога здесь превращается в панику
	registry := block.Default()
	logging.Info("📦 Реестр собран: %d типов блоков", registry.Len())

	resolveCache, err := cache.New(cfg.Cache)
	if err != nil {
		// Без кеша сервис работает, только медленнее на нечётком поиске
		logging.Warn("⚠️  Кеш поиска недоступен: %v", err)
	}
	if resolveCache != nil {
		defer resolveCache.Close()
	}

	restPort := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	server := api.NewRestServer(api.Config{
		Port:        restPort,
		ServiceName: cfg.Telemetry.GetServiceName(),
		Registry:    registry,
		FuzzyLookup: cfg.Lookup.Fuzzy,
		Cache:       resolveCache,
		Logger:      logging.GetComponentLogger("api"),
	})

	if err := server.Start(); err != nil {
		logging.Error("❌ Ошибка запуска REST API: %v", err)
		os.Exit(1)
	}

	logging.Info("💡 Примеры использования REST API:")
	logging.Info("   curl http://localhost%s/api/resolve?q=cobblestone", restPort)
	logging.Info("   curl http://localhost%s/api/blocks/13/drop", restPort)

	<-ctx.Done()
	logging.Info("📡 Получен сигнал завершения, остановка...")

	if err := server.Stop(context.Background()); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}
	if err := shutdownTelemetry(context.Background()); err != nil {
		logging.Error("❌ Ошибка остановки OpenTelemetry: %v", err)
	}
	if err := logging.GetLoggerManager().CloseAll(); err != nil {
		logging.Error("❌ Ошибка закрытия логов: %v", err)
	}

	logging.Info("👋 Сервер успешно остановлен")
}

// initLogging настраивает логгер по умолчанию и менеджер компонентов
func initLogging(cfg config.LoggingConfig) error {
	consoleLevel, err := logging.ParseLevel(cfg.GetLevel())
	if err != nil {
		return err
	}
	fileLevel, err := logging.ParseLevel(cfg.GetFileLevel())
	if err != nil {
		return err
	}

	opts := logging.DefaultOptions()
	opts.MinConsoleLevel = consoleLevel
	opts.MinFileLevel = fileLevel
	opts.Dir = cfg.GetDir()
	if !cfg.FileEnabled() {
		opts.Dir = ""
	}

	logging.GetLoggerManager().Configure(opts)
	return logging.InitDefaultLoggerWithOptions("server", opts)
}
