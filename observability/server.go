package observability

import (
	"encoding/json"
	"net/http"
)

const MonitoringPath = "/api/monitoring"

// Handler serves the latest MonitoringStats as JSON.
func (mm *MonitoringManager) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(MonitoringPath, mm.handleMonitoring)
	return mux
}

func (mm *MonitoringManager) handleMonitoring(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mm.GetLatest()); err != nil {
		mm.log.Warn("Failed to encode monitoring snapshot", "error", err)
	}
}
