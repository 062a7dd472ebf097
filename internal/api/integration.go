package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Start запускает HTTP сервер в отдельной горутине.
// Ошибка возвращается, только если порт не удалось занять.
func (rs *RestServer) Start() error {
	ln, err := net.Listen("tcp", rs.port)
	if err != nil {
		return fmt.Errorf("listen %s: %w", rs.port, err)
	}

	rs.httpServer = &http.Server{
		Handler:           rs.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	rs.addr = ln.Addr().String()

	go func() {
		if err := rs.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rs.log.Error("❌ Ошибка REST API сервера: %v", err)
		}
	}()

	rs.log.Info("✅ REST API сервер запущен на http://%s", rs.addr)
	rs.log.Info("📋 Доступные эндпоинты:")
	rs.log.Info("   GET  /health                          - Проверка состояния")
	rs.log.Info("   GET  /metrics                         - Метрики Prometheus")
	rs.log.Info("   GET  /api/blocks                      - Каталог блоков")
	rs.log.Info("   GET  /api/blocks/:id                  - Блок по id")
	rs.log.Info("   GET  /api/resolve?q=&fuzzy=           - Поиск по имени")
	rs.log.Info("   GET  /api/blocks/:id/drop?data=       - Выпадение")
	rs.log.Info("   GET  /api/blocks/:id/attachment?data= - Крепление")
	rs.log.Info("   GET  /api/blocks/:id/placement        - Очередь установки")
	return nil
}

// Addr возвращает фактический адрес после Start
func (rs *RestServer) Addr() string {
	return rs.addr
}

// Stop корректно останавливает HTTP сервер
func (rs *RestServer) Stop(ctx context.Context) error {
	if rs.httpServer == nil {
		return nil
	}
	rs.log.Info("🛑 Остановка REST API сервера...")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := rs.httpServer.Shutdown(ctx); err != nil {
		rs.log.Error("❌ Ошибка при остановке HTTP сервера: %v", err)
		return err
	}

	rs.log.Info("✅ REST API сервер остановлен")
	return nil
}
