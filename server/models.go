package server

import (
	"time"

	"github.com/lixenwraith/tween/graph"
)

// ApiResponse is the envelope of every response
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Version string        `json:"version"`
	Uptime  time.Duration `json:"uptime"`
	Curves  int           `json:"curves"`
}

// CurveInfo describes one catalog curve
type CurveInfo struct {
	Name   string       `json:"name"`
	Title  string       `json:"title"`
	End    float64      `json:"end"`
	Bounds graph.Bounds `json:"bounds"`
}

// CurveListResponse is the catalog in registration order
type CurveListResponse struct {
	Curves []CurveInfo `json:"curves"`
	Total  int         `json:"total"`
}

// SamplesResponse is a sampled curve ready for plotting
type SamplesResponse struct {
	Name   string        `json:"name"`
	Bounds graph.Bounds  `json:"bounds"`
	Points []graph.Point `json:"points"`
}

// SimulateRequest runs an animation on a simulated clock
type SimulateRequest struct {
	DurationMs int64 `json:"duration_ms" binding:"min=0"`
	FPS        int   `json:"fps" binding:"omitempty,min=1,max=1000"`
}

// SimFrame is one onProgress delivery
type SimFrame struct {
	Tick      int     `json:"tick"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Progress  float64 `json:"progress"`
}

// SimulateResponse lists every frame the animator delivered
type SimulateResponse struct {
	Name       string     `json:"name"`
	DurationMs int64      `json:"duration_ms"`
	FPS        int        `json:"fps"`
	Ticks      int        `json:"ticks"`
	Frames     []SimFrame `json:"frames"`
	Completed  bool       `json:"completed"`
	// Index into Frames at which onComplete ran, -1 when it did not
	CompletedAfter int `json:"completed_after"`
}
