package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"nexus-backend-go/internal/services"
)

type DatabaseHealth struct {
	Status    string  `json:"status"`
	LatencyMs float64 `json:"latency"`
}

type HealthResponse struct {
	Status   string                `json:"status"`
	Database DatabaseHealth        `json:"database"`
	System   services.SystemSample `json:"system"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.Store.Ping(ctx)
	resp := HealthResponse{
		Status: "ok",
		Database: DatabaseHealth{
			Status:    "up",
			LatencyMs: float64(time.Since(start).Microseconds()) / 1000,
		},
		System: services.CaptureSystem(s.Config.MetricsDiskPath),
	}
	status := http.StatusOK
	if err != nil {
		s.Logger.Warn("database ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Database.Status = "down"
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, resp)
}

const statsWriteTimeout = 10 * time.Second

// StatsSocket pushes dashboard stats on a fixed interval. Each connection
// queries on its own schedule and shares nothing with other connections.
func (s *Server) StatsSocket(w http.ResponseWriter, r *http.Request) {
	if s.Config.AuthRequired {
		authed, ok := authenticate(s.Tokens, r, r.URL.Query().Get("token"))
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		r = authed
	}
	upgrader := websocket.Upgrader{CheckOrigin: s.allowedOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(s.lifetime)
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func() error {
		stats, err := services.DashboardStats(ctx, s.Store)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(statsWriteTimeout))
		return conn.WriteJSON(stats)
	}

	ticker := time.NewTicker(s.Config.StatsInterval())
	defer ticker.Stop()
	for {
		if err := push(); err != nil {
			if ctx.Err() == nil {
				s.Logger.Warn("stats push failed", zap.Error(err))
			}
			return
		}
		select {
		case <-ctx.Done():
			if s.lifetime.Err() != nil {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(time.Second))
			}
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) allowedOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.Config.CorsOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
