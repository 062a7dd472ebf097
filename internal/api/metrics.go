package api

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/annel0/blockreg/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ServerMetrics содержит метрики процесса для /health
type ServerMetrics struct {
	StartTime time.Time
}

// NewServerMetrics создает новый экземпляр метрик
func NewServerMetrics() *ServerMetrics {
	return &ServerMetrics{
		StartTime: time.Now(),
	}
}

// GetUptime возвращает время работы сервера
func (sm *ServerMetrics) GetUptime() string {
	uptime := time.Since(sm.StartTime)

	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	default:
		return fmt.Sprintf("%dс", seconds)
	}
}

// GetMemoryUsage возвращает использование памяти в MB
func (sm *ServerMetrics) GetMemoryUsage() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / 1024 / 1024
}

// GetCPUUsage возвращает использование CPU процессом в процентах
func (sm *ServerMetrics) GetCPUUsage() (float64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		// Если не удалось получить метрику процесса, попробуем системную
		cpuPercents, err := cpu.Percent(100*time.Millisecond, false)
		if err != nil || len(cpuPercents) == 0 {
			return 0, err
		}
		return cpuPercents[0], nil
	}

	return cpuPercent, nil
}

// BlockMetrics: доменные счётчики обращений к реестру
//
// * blockreg_lookups_total{op,result}: поиск по id и по имени (hit/miss)
// * blockreg_drops_total{kind}: разрешённые выпадения по виду
type BlockMetrics struct {
	lookups *prometheus.CounterVec
	drops   *prometheus.CounterVec
}

// NewBlockMetrics создаёт счётчики и регистрирует их в reg
func NewBlockMetrics(reg prometheus.Registerer) *BlockMetrics {
	bm := &BlockMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockreg",
			Name:      "lookups_total",
			Help:      "Число обращений к реестру блоков.",
		}, []string{"op", "result"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockreg",
			Name:      "drops_total",
			Help:      "Число разрешённых выпадений по виду результата.",
		}, []string{"kind"}),
	}
	reg.MustRegister(bm.lookups, bm.drops)
	return bm
}

// ObserveLookup учитывает поиск; op: "by_id" или "resolve"
func (bm *BlockMetrics) ObserveLookup(op string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	bm.lookups.WithLabelValues(op, result).Inc()
}

// ObserveDrop учитывает выпадение
func (bm *BlockMetrics) ObserveDrop(kind block.DropKind) {
	bm.drops.WithLabelValues(kind.String()).Inc()
}
