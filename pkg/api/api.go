// Package api implements the REST surface: one expression per request.
package api

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lemonberrylabs/arith/pkg/config"
	"github.com/lemonberrylabs/arith/pkg/expr"
	"github.com/lemonberrylabs/arith/pkg/types"
)

// Server is the HTTP API server.
type Server struct {
	app    *fiber.App
	maxLen int
}

// New creates a new API server. Expressions longer than maxLen characters
// are rejected; a non-positive maxLen selects the default limit.
func New(maxLen int) *Server {
	if maxLen <= 0 {
		maxLen = config.DefaultMaxExpressionLength
	}
	srv := &Server{maxLen: maxLen}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Post("/v1/evaluate", srv.evaluate)
	app.Get("/healthz", srv.health)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string      `json:"expression"`
	Result     expr.Number `json:"result"`
	Text       string      `json:"text"`
}

func (s *Server) evaluate(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, 400, "INVALID_ARGUMENT", fmt.Sprintf("invalid request body: %v", err))
	}
	if req.Expression == "" {
		return errorJSON(c, 400, "INVALID_ARGUMENT", "expression is required")
	}
	if len(req.Expression) > s.maxLen {
		return errorJSON(c, 400, "INVALID_ARGUMENT",
			fmt.Sprintf("expression exceeds maximum length of %d characters", s.maxLen))
	}

	result, err := expr.Eval(req.Expression)
	if err != nil {
		if _, ok := types.AsArithmeticError(err); ok {
			return errorJSON(c, 400, "INVALID_ARGUMENT", err.Error())
		}
		log.Printf("evaluate %q: %v", req.Expression, err)
		return errorJSON(c, 500, "INTERNAL", err.Error())
	}

	text := expr.FormatNumber(result)
	resp := evaluateResponse{Expression: req.Expression, Text: text}
	// JSON has no encoding for NaN or infinities; those are reported by text only.
	if f := float64(result); !math.IsInf(f, 0) && !math.IsNaN(f) {
		resp.Result = result
	}
	return c.JSON(resp)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func errorJSON(c *fiber.Ctx, code int, status, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
			"status":  status,
		},
	})
}
