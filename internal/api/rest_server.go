package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/annel0/blockreg/internal/cache"
	"github.com/annel0/blockreg/internal/logging"
	"github.com/annel0/blockreg/internal/middleware"
	"github.com/annel0/blockreg/internal/world/block"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RestServer представляет REST API справочника блоков (только чтение)
type RestServer struct {
	router     *gin.Engine
	registry   *block.Registry
	port       string
	addr       string
	fuzzy      bool
	cache      cache.CacheRepo
	log        *logging.Logger
	metrics    *ServerMetrics
	blocks     *BlockMetrics
	httpServer *http.Server
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port        string          // адрес для запуска сервера, например ":8088"
	ServiceName string          // имя сервиса для otel и префикса HTTP-метрик
	Registry    *block.Registry // nil означает общий реестр процесса
	FuzzyLookup bool            // нечёткий поиск в /api/resolve по умолчанию
	Logger      *logging.Logger
	// Cache хранит результаты /api/resolve; nil отключает кеш
	Cache cache.CacheRepo
	// Prometheus задаёт регистр метрик; nil означает новый регистр на каждый сервер
	Prometheus *prometheus.Registry
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}
	if config.ServiceName == "" {
		config.ServiceName = "blockreg"
	}
	if config.Registry == nil {
		config.Registry = block.Default()
	}
	if config.Logger == nil {
		config.Logger = logging.Default()
	}
	if config.Prometheus == nil {
		config.Prometheus = prometheus.NewRegistry()
		config.Prometheus.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware(config.ServiceName))
	router.Use(middleware.NewRequestLogger(config.Logger).Handler())

	promMw := middleware.NewPrometheusMiddleware(strings.ReplaceAll(config.ServiceName, "-", "_"), config.Prometheus)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:   router,
		registry: config.Registry,
		port:     config.Port,
		fuzzy:    config.FuzzyLookup,
		cache:    config.Cache,
		log:      config.Logger,
		metrics:  NewServerMetrics(),
		blocks:   NewBlockMetrics(config.Prometheus),
	}

	server.setupRoutes()

	return server
}

// Handler возвращает http.Handler сервера (для тестов и встраивания)
func (rs *RestServer) Handler() http.Handler {
	return rs.router
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	api := rs.router.Group("/api")
	{
		api.GET("/blocks", rs.handleListBlocks)
		api.GET("/blocks/:id", rs.handleGetBlock)
		api.GET("/blocks/:id/drop", rs.handleDrop)
		api.GET("/blocks/:id/attachment", rs.handleAttachment)
		api.GET("/blocks/:id/placement", rs.handlePlacement)
		api.GET("/resolve", rs.handleResolve)
	}

	rs.router.GET("/health", rs.handleHealth)
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BlockView: представление типа блока в ответах
type BlockView struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

func newBlockView(d block.Descriptor) BlockView {
	return BlockView{ID: int(d.ID()), Name: d.Name(), Aliases: d.Aliases()}
}

// DropView: результат разрушения блока
type DropView struct {
	ID   int              `json:"id"`
	Data int              `json:"data"`
	Kind string           `json:"kind"`
	Item *block.ItemStack `json:"item,omitempty"`
}

// AttachmentView: направление крепления
type AttachmentView struct {
	ID        int    `json:"id"`
	Data      int    `json:"data"`
	Attached  bool   `json:"attached"`
	Direction string `json:"direction,omitempty"`
}

// PlacementView: очередь установки
type PlacementView struct {
	ID     int    `json:"id"`
	Tier   string `json:"tier"`
	IsRail bool   `json:"is_rail"`
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, GenericResponse{Success: false, Message: msg})
}

func respondOK(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, GenericResponse{Success: true, Message: msg, Data: data})
}

// pathID разбирает :id; при ошибке сам отвечает 400
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Sprintf("Неверный id блока: %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

// queryData разбирает ?data= (по умолчанию 0); при ошибке сам отвечает 400
func queryData(c *gin.Context) (int, bool) {
	data, err := strconv.Atoi(c.DefaultQuery("data", "0"))
	if err != nil {
		badRequest(c, fmt.Sprintf("Неверное значение data: %q", c.Query("data")))
		return 0, false
	}
	return data, true
}

// handleListBlocks возвращает весь каталог по возрастанию id
func (rs *RestServer) handleListBlocks(c *gin.Context) {
	all := rs.registry.All()
	views := make([]BlockView, 0, len(all))
	for _, d := range all {
		views = append(views, newBlockView(d))
	}
	respondOK(c, fmt.Sprintf("Блоков: %d", len(views)), views)
}

// handleGetBlock возвращает тип блока по числовому id
func (rs *RestServer) handleGetBlock(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	d, found := rs.registry.ByID(id)
	rs.blocks.ObserveLookup("by_id", found)
	if !found {
		notFound(c, fmt.Sprintf("Блок %d не найден", id))
		return
	}
	respondOK(c, d.Name(), newBlockView(d))
}

// handleResolve ищет блок по тексту: число, имя или псевдоним
func (rs *RestServer) handleResolve(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, "Параметр q обязателен")
		return
	}

	fuzzy := rs.fuzzy
	if raw, present := c.GetQuery("fuzzy"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, fmt.Sprintf("Неверное значение fuzzy: %q", raw))
			return
		}
		fuzzy = v
	}

	d, found := rs.resolve(c.Request.Context(), q, fuzzy)
	rs.blocks.ObserveLookup("resolve", found)
	if !found {
		notFound(c, fmt.Sprintf("Блок %q не найден", q))
		return
	}
	respondOK(c, d.Name(), newBlockView(d))
}

// handleDrop разрешает выпадение; определено для любого id
func (rs *RestServer) handleDrop(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	data, valid := queryData(c)
	if !valid {
		return
	}

	out := rs.registry.Drop(id, data)
	rs.blocks.ObserveDrop(out.Kind)

	view := DropView{ID: id, Data: data, Kind: out.Kind.String()}
	if out.IsItem() {
		item := out.Item
		view.Item = &item
	}
	respondOK(c, out.String(), view)
}

// handleAttachment возвращает направление опоры блока
func (rs *RestServer) handleAttachment(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	data, valid := queryData(c)
	if !valid {
		return
	}

	view := AttachmentView{ID: id, Data: data}
	if dir, attached := rs.registry.Attachment(id, data); attached {
		view.Attached = true
		view.Direction = dir.String()
	}
	respondOK(c, "Крепление", view)
}

// handlePlacement возвращает очередь установки блока
func (rs *RestServer) handlePlacement(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	tier := rs.registry.Tier(id)
	respondOK(c, tier.String(), PlacementView{
		ID:     id,
		Tier:   tier.String(),
		IsRail: rs.registry.IsRail(id),
	})
}

// handleHealth возвращает состояние сервиса и метрики процесса
func (rs *RestServer) handleHealth(c *gin.Context) {
	cpuPercent, err := rs.metrics.GetCPUUsage()
	if err != nil {
		rs.log.Debug("CPU процесса недоступен: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"time":        time.Now().Unix(),
		"uptime":      rs.metrics.GetUptime(),
		"memory_mb":   fmt.Sprintf("%.2f", rs.metrics.GetMemoryUsage()),
		"cpu_percent": fmt.Sprintf("%.2f", cpuPercent),
		"blocks":      rs.registry.Len(),
	})
}
