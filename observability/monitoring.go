package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

const refreshInterval = 1 * time.Second

// RoomStat describes one live room.
type RoomStat struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Members int    `json:"members"`
}

// BrokerState is what the dispatcher reports about itself.
type BrokerState struct {
	Rooms    []RoomStat `json:"rooms"`
	Sessions int        `json:"sessions"`
	HomeRoom string     `json:"home_room"`
}

// StateProvider is read on every snapshot, it must be safe for concurrent use.
type StateProvider func() BrokerState

// MonitoringStats aggregates every metric exposed on /api/monitoring.
type MonitoringStats struct {
	BrokerState

	// --- BROKER COUNTERS ---
	Published uint64 `json:"published"`
	Dropped   uint64 `json:"dropped"`
	Delivered uint64 `json:"delivered"`

	// --- SYSTEM METRICS ---
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	UpdatedAt  string  `json:"updated_at"`
}

// MonitoringManager collects broker counters and process telemetry.
// Every method is safe on a nil receiver so the dispatcher can run without it.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats
	provider    StateProvider

	published uint64
	dropped   uint64
	delivered uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) SetStateProvider(provider StateProvider) {
	if mm == nil {
		return
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.provider = provider
}

func (mm *MonitoringManager) IncrPublished() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.published, 1)
}

func (mm *MonitoringManager) IncrDropped() {
	if mm == nil {
		return
	}
	atomic.AddUint64(&mm.dropped, 1)
}

func (mm *MonitoringManager) IncrDelivered(n int) {
	if mm == nil || n <= 0 {
		return
	}
	atomic.AddUint64(&mm.delivered, uint64(n))
}

// Run refreshes the process metrics every second until ctx is done.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.updateStats(p)
		}
	}
}

func (mm *MonitoringManager) updateStats(p *process.Process) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var rss uint64
	if memInfo, err := p.MemoryInfo(); err == nil {
		rss = memInfo.RSS
	} else {
		mm.log.Debug("Failed to read process memory", "error", err)
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		mm.log.Debug("Failed to read process cpu", "error", err)
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
	mm.latestStats.RSSBytes = rss
	mm.latestStats.CPUPercent = cpu
	mm.latestStats.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// GetLatest merges the last process metrics with live counters and broker state.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	if mm == nil {
		return MonitoringStats{}
	}
	mm.mu.RLock()
	stats := mm.latestStats
	provider := mm.provider
	mm.mu.RUnlock()

	if provider != nil {
		stats.BrokerState = provider()
	}
	stats.Published = atomic.LoadUint64(&mm.published)
	stats.Dropped = atomic.LoadUint64(&mm.dropped)
	stats.Delivered = atomic.LoadUint64(&mm.delivered)
	return stats
}
