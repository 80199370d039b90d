package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/uselessfacts/pkg/domain"
)

// FactRepository handles generated facts
type FactRepository struct {
	db *sqlx.DB
}

// NewFactRepository creates a new fact repository
func NewFactRepository(db *sqlx.DB) *FactRepository {
	return &FactRepository{db: db}
}

type factSQL struct {
	ID               string           `db:"id"`
	Text             string           `db:"text"`
	Topics           jsonList[string] `db:"topics"`
	SourceArticleIDs jsonList[int64]  `db:"source_article_ids"`
	Upvotes          int64            `db:"upvotes"`
	Downvotes        int64            `db:"downvotes"`
	CreatedAt        time.Time        `db:"created_at"`
}

// CreateFact inserts a fact, the id is assigned by the caller
func (r *FactRepository) CreateFact(ctx context.Context, fact *domain.Fact) error {
	if fact.CreatedAt.IsZero() {
		fact.CreatedAt = time.Now().UTC()
	}
	row := factSQL{
		ID:               fact.ID,
		Text:             fact.Text,
		Topics:           fact.Topics,
		SourceArticleIDs: fact.SourceArticleIDs,
		Upvotes:          fact.Upvotes,
		Downvotes:        fact.Downvotes,
		CreatedAt:        fact.CreatedAt.UTC(),
	}
	query := `
		INSERT INTO facts (id, text, topics, source_article_ids, upvotes, downvotes, created_at)
		VALUES (:id, :text, :topics, :source_article_ids, :upvotes, :downvotes, :created_at)
	`
	return newRetrier().Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("create fact: %w", err)}
		}
		return nil
	})
}

// GetFact retrieves a fact by id, returns domain.ErrNotFound if missing
func (r *FactRepository) GetFact(ctx context.Context, id string) (*domain.Fact, error) {
	var row factSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM facts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get fact %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get fact %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// ListFacts returns the newest facts first
func (r *FactRepository) ListFacts(ctx context.Context, limit, offset int) ([]domain.Fact, error) {
	var rows []factSQL
	query := "SELECT * FROM facts ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	res := make([]domain.Fact, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row.toDomain())
	}
	return res, nil
}

// RateFact increments the vote counter of a fact and returns the updated fact
func (r *FactRepository) RateFact(ctx context.Context, id string, vote domain.Vote) (*domain.Fact, error) {
	var query string
	switch vote {
	case domain.VoteUp:
		query = "UPDATE facts SET upvotes = upvotes + 1 WHERE id = ?"
	case domain.VoteDown:
		query = "UPDATE facts SET downvotes = downvotes + 1 WHERE id = ?"
	default:
		return nil, fmt.Errorf("unsupported vote %q", vote)
	}

	var affected int64
	err := newRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, id)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("rate fact: %w", err)}
		}
		if affected, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("rate fact %s: %w", id, domain.ErrNotFound)
	}
	return r.GetFact(ctx, id)
}

func (f *factSQL) toDomain() *domain.Fact {
	return &domain.Fact{
		ID:               f.ID,
		Text:             f.Text,
		Topics:           []string(f.Topics),
		SourceArticleIDs: []int64(f.SourceArticleIDs),
		Upvotes:          f.Upvotes,
		Downvotes:        f.Downvotes,
		CreatedAt:        f.CreatedAt,
	}
}
