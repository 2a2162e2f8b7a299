package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/ambientworks/go-officeanim/internal/log"
	"github.com/ambientworks/go-officeanim/pkg/hub"
)

// entityView is the static description of one avatar for renderers.
type entityView struct {
	Name           string       `json:"name"`
	Label          string       `json:"label"`
	Waypoints      [][3]float64 `json:"waypoints"`
	ForwardSeconds float64      `json:"forward_seconds"`
	DwellSeconds   float64      `json:"dwell_seconds"`
	OffsetSeconds  float64      `json:"offset_seconds"`
}

// handleStatus reports server state.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"scene":    s.scn.Name,
		"elapsed":  s.Elapsed(),
		"entities": s.registry.Count(),
		"clients":  s.frameHub.ClientCount(),
	})
}

// handleScene returns the authored scene so a renderer can build static
// geometry (paths, desks) before frames start arriving.
func (s *Server) handleScene(c *fiber.Ctx) error {
	views := make([]entityView, 0, len(s.scn.Entities))
	for _, e := range s.scn.Entities {
		wps := e.Waypoints()
		raw := make([][3]float64, len(wps))
		for i, wp := range wps {
			raw[i] = [3]float64{wp.X(), wp.Y(), wp.Z()}
		}
		cfg := e.Config()
		views = append(views, entityView{
			Name:           e.Name(),
			Label:          e.Label(),
			Waypoints:      raw,
			ForwardSeconds: cfg.ForwardSeconds,
			DwellSeconds:   cfg.DwellSeconds,
			OffsetSeconds:  cfg.OffsetSeconds,
		})
	}

	return c.JSON(fiber.Map{
		"name":        s.scn.Name,
		"description": s.scn.Description,
		"entities":    views,
	})
}

// handleEntities returns the entity names.
func (s *Server) handleEntities(c *fiber.Ctx) error {
	return c.JSON(s.registry.Names())
}

// handleFrame evaluates one batch at an arbitrary instant. With no
// elapsed query parameter it uses the live clock; with one it becomes a
// deterministic debugging surface (same elapsed, same answer, always).
func (s *Server) handleFrame(c *fiber.Ctx) error {
	elapsed := s.Elapsed()
	if q := c.Query("elapsed"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil || v < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "elapsed must be a non-negative number",
			})
		}
		elapsed = v
	}

	return c.JSON(FrameBatch{
		Elapsed: elapsed,
		Frames:  s.registry.FramesAt(elapsed),
	})
}

// businessRequest is a free-text request for the agent backend.
type businessRequest struct {
	Request string `json:"request"`
}

// handleRequest accepts a business request and issues a ticket. The agent
// backend that would fulfil it is a separate system; this surface only
// mirrors the boundary so renderers have something to post to.
func (s *Server) handleRequest(c *fiber.Ctx) error {
	var req businessRequest
	if err := c.BodyParser(&req); err != nil || req.Request == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be JSON with a non-empty \"request\" field",
		})
	}

	ticket := uuid.New()
	log.Info("business request accepted", "ticket", ticket, "chars", len(req.Request))

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"ticket": ticket,
		"status": "accepted",
	})
}

// handleFramesWS streams frame batches to one renderer until it leaves.
func (s *Server) handleFramesWS(c *websocket.Conn) {
	client := hub.NewClient(s.frameHub, c)
	client.Run()
}
