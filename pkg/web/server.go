// Package web serves the office scene to renderer clients: the static
// scene description over REST and the live frame stream over websockets.
package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/ambientworks/go-officeanim/internal/log"
	"github.com/ambientworks/go-officeanim/pkg/hub"
	"github.com/ambientworks/go-officeanim/pkg/scene"
)

// FrameBatch is one tick's worth of avatar state, as streamed to clients.
type FrameBatch struct {
	Elapsed float64       `json:"elapsed"`
	Frames  []scene.Frame `json:"frames"`
}

// Server hosts the scene API and the frame stream. All animation state is
// derived from one monotonic start instant; the tick loop never integrates
// deltas, it re-reads the clock every tick.
type Server struct {
	app      *fiber.App
	port     string
	scn      *scene.Scene
	registry *scene.Registry
	frameHub *hub.Hub

	start    time.Time
	tickRate float64
	stop     chan struct{}
}

// NewServer creates the server for a loaded scene. tickRate is the frame
// broadcast rate in Hz.
func NewServer(port string, scn *scene.Scene, tickRate float64) *Server {
	registry := scene.NewRegistry()
	registry.LoadScene(scn)

	s := &Server{
		port:     port,
		scn:      scn,
		registry: registry,
		frameHub: hub.New("frames"),
		tickRate: tickRate,
		stop:     make(chan struct{}),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Office Animation",
		DisableStartupMessage: true,
	})

	// CORS for local renderer development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/scene", s.handleScene)
	api.Get("/entities", s.handleEntities)
	api.Get("/frame", s.handleFrame)
	api.Post("/request", s.handleRequest)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/frames", websocket.New(s.handleFramesWS))

	s.app = app
	return s
}

// Start runs the hub, the tick loop, and the HTTP listener. Blocks until
// the listener stops.
func (s *Server) Start() error {
	s.start = time.Now()

	go s.frameHub.Run()
	go s.tickLoop()

	log.Info("serving office scene", "port", s.port, "scene", s.scn.Name,
		"entities", s.registry.Count(), "tick_rate", s.tickRate)
	return s.app.Listen(":" + s.port)
}

// Shutdown stops the tick loop and the HTTP listener.
func (s *Server) Shutdown() error {
	close(s.stop)
	return s.app.Shutdown()
}

// Elapsed returns seconds since animation start on the monotonic clock.
func (s *Server) Elapsed() float64 {
	return time.Since(s.start).Seconds()
}

// tickLoop broadcasts a frame batch per tick. Each batch is computed from
// the absolute elapsed time, so a stalled tick skips frames cleanly
// instead of falling behind.
func (s *Server) tickLoop() {
	interval := time.Duration(float64(time.Second) / s.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if s.frameHub.ClientCount() == 0 {
				continue
			}
			elapsed := s.Elapsed()
			batch := FrameBatch{
				Elapsed: elapsed,
				Frames:  s.registry.FramesAt(elapsed),
			}
			if err := s.frameHub.BroadcastJSON(batch); err != nil {
				log.Error("failed to encode frame batch", "error", err)
			}
		}
	}
}
