package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// ChainRepository provides database access to the prerequisite chain
// catalog. Rows come back as imported, dirty entries included; cleaning is
// the index builder's job.
type ChainRepository struct {
	db *sqlx.DB
}

// NewChainRepository creates a new instance of ChainRepository.
func NewChainRepository(db *sqlx.DB) *ChainRepository {
	return &ChainRepository{db: db}
}

// ListRows returns every chain catalog row.
func (r *ChainRepository) ListRows(ctx context.Context) ([]models.ChainRow, error) {
	const query = `SELECT chain_id, seq, course_code FROM prereq_chains ORDER BY chain_id, seq`
	var rows []models.ChainRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list chain rows: %w", err)
	}
	return rows, nil
}
