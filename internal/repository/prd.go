package repository

import (
	"context"
	"errors"

	"clearprd/internal/models"

	"gorm.io/gorm"
)

// PRDRepository defines persistence operations for saved PRDs. Every
// operation that targets a single record filters by both record id and owner
// id, so a record owned by another user is indistinguishable from a missing
// one.
type PRDRepository interface {
	Create(ctx context.Context, prd *models.PRD) error
	ListByUser(ctx context.Context, userID string) ([]models.PRD, error)
	GetByID(ctx context.Context, userID, id string) (*models.PRD, error)
	UpdateIdea(ctx context.Context, userID, id, idea string) (*models.PRD, error)
	UpdateContent(ctx context.Context, userID, id, content string) (*models.PRD, error)
	ClearContent(ctx context.Context, userID, id string) (*models.PRD, error)
	Delete(ctx context.Context, userID, id string) error
}

type prdRepository struct {
	db *gorm.DB
}

// NewPRDRepository returns a new PRDRepository implementation.
func NewPRDRepository(db *gorm.DB) PRDRepository {
	return &prdRepository{db: db}
}

func (r *prdRepository) Create(ctx context.Context, prd *models.PRD) error {
	if err := r.db.WithContext(ctx).Create(prd).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *prdRepository) ListByUser(ctx context.Context, userID string) ([]models.PRD, error) {
	var prds []models.PRD
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&prds).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return prds, nil
}

func (r *prdRepository) GetByID(ctx context.Context, userID, id string) (*models.PRD, error) {
	var prd models.PRD
	if err := r.owned(ctx, userID, id).First(&prd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("PRD", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &prd, nil
}

func (r *prdRepository) UpdateIdea(ctx context.Context, userID, id, idea string) (*models.PRD, error) {
	return r.updateColumn(ctx, userID, id, "idea", idea)
}

func (r *prdRepository) UpdateContent(ctx context.Context, userID, id, content string) (*models.PRD, error) {
	return r.updateColumn(ctx, userID, id, "content", content)
}

// ClearContent empties the document text while preserving the record. It is
// idempotent: clearing an already-empty record succeeds.
func (r *prdRepository) ClearContent(ctx context.Context, userID, id string) (*models.PRD, error) {
	return r.updateColumn(ctx, userID, id, "content", "")
}

func (r *prdRepository) Delete(ctx context.Context, userID, id string) error {
	tx := r.owned(ctx, userID, id).Delete(&models.PRD{})
	if tx.Error != nil {
		return models.NewInternalError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("PRD", id)
	}
	return nil
}

// owned scopes a query to a single record by id and owner.
func (r *prdRepository) owned(ctx context.Context, userID, id string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.PRD{}).
		Where("id = ? AND user_id = ?", id, userID)
}

func (r *prdRepository) updateColumn(ctx context.Context, userID, id, column, value string) (*models.PRD, error) {
	tx := r.owned(ctx, userID, id).Update(column, value)
	if tx.Error != nil {
		return nil, models.NewInternalError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, models.NewNotFoundError("PRD", id)
	}
	return r.GetByID(ctx, userID, id)
}
