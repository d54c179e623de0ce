package server

import (
	"context"
	"time"

	"clearprd/internal/models"
	"clearprd/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	analyzeTimeout    = 30 * time.Second
	synthesizeTimeout = 120 * time.Second
)

// Analyze handles POST /api/analyze. It asks the LLM to produce clarifying
// questions for the submitted idea.
func (s *Server) Analyze(c *fiber.Ctx) error {
	var req struct {
		Idea string `json:"idea"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateIdea(req.Idea); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Context(), analyzeTimeout)
	defer cancel()

	questions, err := s.analyzer.Analyze(ctx, req.Idea)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"questions": questions})
}

// GeneratePRD handles POST /api/generate-prd. It combines the idea with the
// user's answers and returns the synthesized document.
func (s *Server) GeneratePRD(c *fiber.Ctx) error {
	var req struct {
		Idea    string            `json:"idea"`
		Answers map[string]string `json:"answers"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateIdea(req.Idea); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Context(), synthesizeTimeout)
	defer cancel()

	prd, err := s.synthesizer.Synthesize(ctx, req.Idea, req.Answers)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"prd": prd})
}
