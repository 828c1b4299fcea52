// Package health contiene DTOs para endpoints de health check e info.
package health

import "time"

// HealthStatus representa el estado de un componente específico.
type HealthStatus struct {
	Status  string `json:"status"`            // "ok" | "error"
	Message string `json:"message,omitempty"` // Detalle opcional
}

// HealthResponse representa la respuesta de GET /readyz.
type HealthResponse struct {
	Status     string                  `json:"status"` // "ready" | "unavailable"
	Components map[string]HealthStatus `json:"components"`
	Version    string                  `json:"version,omitempty"`
	Records    int                     `json:"records"`
	Uptime     string                  `json:"uptime"`
	Timestamp  time.Time               `json:"timestamp"`
}

// InfoResponse representa la respuesta de GET / (catálogo de endpoints).
type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
