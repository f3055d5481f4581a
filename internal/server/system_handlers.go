package server

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/etfoverlap/internal/clientdata"
	"github.com/aristath/etfoverlap/internal/database"
)

// SystemHandlers serves process and cache status.
type SystemHandlers struct {
	log       zerolog.Logger
	startedAt time.Time
	cacheDB   *database.DB           // nil when caching is disabled
	cacheRepo *clientdata.Repository // nil when caching is disabled
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, cacheDB *database.DB, cacheRepo *clientdata.Repository) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("handler", "system").Logger(),
		startedAt: time.Now(),
		cacheDB:   cacheDB,
		cacheRepo: cacheRepo,
	}
}

// CacheStatus describes the client data cache.
type CacheStatus struct {
	Enabled bool             `json:"enabled"`
	Healthy bool             `json:"healthy"`
	Entries map[string]int64 `json:"entries"`
}

// SystemStatusResponse is returned by GET /api/system/status
type SystemStatusResponse struct {
	Status        string      `json:"status"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	CPUPercent    float64     `json:"cpu_percent"`
	RAMPercent    float64     `json:"ram_percent"`
	Goroutines    int         `json:"goroutines"`
	GoVersion     string      `json:"go_version"`
	Cache         CacheStatus `json:"cache"`
	Timestamp     string      `json:"timestamp"`
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, ramPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CPUPercent:    cpuPercent,
		RAMPercent:    ramPercent,
		Goroutines:    runtime.NumGoroutine(),
		GoVersion:     runtime.Version(),
		Cache:         h.getCacheStatus(r.Context()),
		Timestamp:     time.Now().Format(time.RFC3339),
	}
	if response.Cache.Enabled && !response.Cache.Healthy {
		response.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *SystemHandlers) getCacheStatus(ctx context.Context) CacheStatus {
	status := CacheStatus{Entries: make(map[string]int64)}
	if h.cacheRepo == nil {
		return status
	}
	status.Enabled = true
	status.Healthy = true

	if h.cacheDB != nil {
		if err := h.cacheDB.QuickCheck(ctx); err != nil {
			h.log.Warn().Err(err).Msg("Client data integrity check failed")
			status.Healthy = false
		}
	}

	for _, table := range clientdata.AllTables {
		n, err := h.cacheRepo.Count(table)
		if err != nil {
			h.log.Warn().Err(err).Str("table", table).Msg("Failed to count cache entries")
			status.Healthy = false
			continue
		}
		status.Entries[table] = n
	}

	return status
}

// getSystemStats returns CPU and RAM usage percentages.
// The CPU sample window is kept short so the endpoint stays responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
