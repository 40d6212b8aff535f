package controllers

import (
	"fmt"
	"net/http"
	"time"

	"surveyd/internal/structures"
	"surveyd/internal/survey/interfaces"
)

type HealthController struct {
	conf      *structures.Config
	journal   interfaces.JournalInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	UtcTime       string  `json:"utc_time"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Records       int64   `json:"records"`
}

func (hc *HealthController) Ping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Message:       "API is alive",
		UtcTime:       time.Now().UTC().Format(time.RFC3339),
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Records:       hc.journal.Count(),
	})
}

type timeResponse struct {
	UtcISO   string `json:"utc_iso"`
	LocalISO string `json:"local_iso"`
	Server   string `json:"server"`
}

func (hc *HealthController) Time(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	writeJSON(w, http.StatusOK, timeResponse{
		UtcISO:   now.UTC().Format(time.RFC3339Nano),
		LocalISO: now.Format(time.RFC3339Nano),
		Server:   hc.conf.AppName,
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(conf *structures.Config, journal interfaces.JournalInterface) *HealthController {
	return &HealthController{
		conf:      conf,
		journal:   journal,
		startTime: time.Now(),
	}
}
