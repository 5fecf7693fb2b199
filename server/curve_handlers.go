package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/engine"
	"github.com/lixenwraith/tween/graph"
)

// Request defaults
const (
	defaultSampleCount = 101
	defaultSimulateFPS = 60
)

// handleHealth reports uptime and catalog size
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: HealthResponse{
			Version: Version,
			Uptime:  time.Since(s.startTime),
			Curves:  s.registry.Len(),
		},
	})
}

// handleListCurves returns every curve in registration order
func (s *Server) handleListCurves(c *gin.Context) {
	entries := s.registry.Entries()
	infos := make([]CurveInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, curveInfo(e))
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: CurveListResponse{
			Curves: infos,
			Total:  len(infos),
		},
	})
}

// handleGetCurve returns one curve's description
func (s *Server) handleGetCurve(c *gin.Context) {
	entry, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   curveInfo(entry),
	})
}

// handleSamples returns n evenly spaced samples over [0,1]
func (s *Server) handleSamples(c *gin.Context) {
	entry, ok := s.lookup(c)
	if !ok {
		return
	}

	n := defaultSampleCount
	if raw := c.Query("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2 || v > s.cfg.MaxSamples {
			c.JSON(http.StatusBadRequest, ApiResponse{
				Status: "error",
				Error:  "n must be an integer in [2, " + strconv.Itoa(s.cfg.MaxSamples) + "]",
			})
			return
		}
		n = v
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: SamplesResponse{
			Name:   entry.Name,
			Bounds: graph.BoundsOf(entry.Curve, graph.DefaultSamples),
			Points: graph.Sample(entry.Curve, n),
		},
	})
}

// handleSimulate drives a real Animator on a stepped clock and reports every frame
func (s *Server) handleSimulate(c *gin.Context) {
	entry, ok := s.lookup(c)
	if !ok {
		return
	}

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "invalid simulate request: " + err.Error(),
		})
		return
	}
	if req.FPS == 0 {
		req.FPS = defaultSimulateFPS
	}

	duration := time.Duration(req.DurationMs) * time.Millisecond
	interval := time.Second / time.Duration(req.FPS)
	// One tick at t=0, one per interval, one more to land on the end
	expected := int(duration/interval) + 2
	if expected > s.cfg.MaxSimulateFrames {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "simulation exceeds " + strconv.Itoa(s.cfg.MaxSimulateFrames) + " frames",
		})
		return
	}

	resp := Simulate(entry, duration, req.FPS, s.cfg.MaxSimulateFrames)
	s.log.Debug("simulated", "curve", entry.Name, "ticks", resp.Ticks, "frames", len(resp.Frames))

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   resp,
	})
}

// Simulate runs entry's curve for duration at fps on a manual clock
// Time advances by exactly one frame interval between ticks, so results are deterministic
func Simulate(entry curve.Entry, duration time.Duration, fps, maxTicks int) SimulateResponse {
	clock := engine.NewManualClock()
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	animator := engine.NewAnimator(clock, mock)
	start := mock.Now()
	interval := time.Second / time.Duration(fps)

	resp := SimulateResponse{
		Name:           entry.Name,
		DurationMs:     duration.Milliseconds(),
		FPS:            fps,
		Frames:         []SimFrame{},
		CompletedAfter: -1,
	}

	animator.Animate(duration, entry.Curve,
		func(progress float64) {
			resp.Frames = append(resp.Frames, SimFrame{
				Tick:      resp.Ticks,
				ElapsedMs: float64(mock.Now().Sub(start)) / float64(time.Millisecond),
				Progress:  progress,
			})
		},
		func() {
			resp.Completed = true
			resp.CompletedAfter = len(resp.Frames) - 1
		},
	)

	for resp.Ticks < maxTicks && clock.Tick() {
		resp.Ticks++
		mock.Advance(interval)
	}
	return resp
}

// lookup resolves :name or writes a 404
func (s *Server) lookup(c *gin.Context) (curve.Entry, bool) {
	name := c.Param("name")
	entry, ok := s.registry.Entry(name)
	if !ok {
		c.JSON(http.StatusNotFound, ApiResponse{
			Status: "error",
			Error:  "unknown curve: " + name,
		})
		return curve.Entry{}, false
	}
	return entry, true
}

func curveInfo(e curve.Entry) CurveInfo {
	return CurveInfo{
		Name:   e.Name,
		Title:  e.Title,
		End:    e.Curve.End(),
		Bounds: graph.BoundsOf(e.Curve, graph.DefaultSamples),
	}
}
