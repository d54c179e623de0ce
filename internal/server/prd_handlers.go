package server

import (
	"clearprd/internal/models"
	"clearprd/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePRD handles POST /api/prds
func (s *Server) CreatePRD(c *fiber.Ctx) error {
	var req struct {
		Idea    string `json:"idea"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateIdea(req.Idea); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	prd := &models.PRD{
		UserID:  currentUserID(c),
		Idea:    req.Idea,
		Content: req.Content,
	}

	if err := s.prdRepo.Create(c.Context(), prd); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(prd)
}

// ListPRDs handles GET /api/prds, newest first
func (s *Server) ListPRDs(c *fiber.Ctx) error {
	prds, err := s.prdRepo.ListByUser(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(prds)
}

// GetPRD handles GET /api/prds/:id
func (s *Server) GetPRD(c *fiber.Ctx) error {
	prd, err := s.prdRepo.GetByID(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(prd)
}

// UpdatePRDIdea handles PATCH /api/prds/:id/idea. Only the idea text changes;
// the generated document is left intact.
func (s *Server) UpdatePRDIdea(c *fiber.Ctx) error {
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

	prd, err := s.prdRepo.UpdateIdea(c.Context(), currentUserID(c), c.Params("id"), req.Idea)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(prd)
}

// UpdatePRDContent handles PUT /api/prds/:id/content
func (s *Server) UpdatePRDContent(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prd, err := s.prdRepo.UpdateContent(c.Context(), currentUserID(c), c.Params("id"), req.Content)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(prd)
}

// ClearPRDContent handles DELETE /api/prds/:id/content. The record survives
// with its idea; only the document text is removed.
func (s *Server) ClearPRDContent(c *fiber.Ctx) error {
	prd, err := s.prdRepo.ClearContent(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(prd)
}

// DeletePRD handles DELETE /api/prds/:id
func (s *Server) DeletePRD(c *fiber.Ctx) error {
	if err := s.prdRepo.Delete(c.Context(), currentUserID(c), c.Params("id")); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "PRD deleted successfully"})
}
