package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/topic"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// articleSQL is the articles row
type articleSQL struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	URL         string    `db:"url"`
	Source      string    `db:"source"`
	PublishedAt time.Time `db:"published_at"`
	CreatedAt   time.Time `db:"created_at"`
	Embedding   []byte    `db:"embedding"`
}

// articleTopicSQL is the article_topics row
type articleTopicSQL struct {
	ID            int64     `db:"id"`
	ArticleID     int64     `db:"article_id"`
	EntityText    string    `db:"entity_text"`
	EntityType    string    `db:"entity_type"`
	MatchKey      string    `db:"match_key"`
	TFIDFScore    float64   `db:"tfidf_score"`
	NERConfidence float64   `db:"ner_confidence"`
	CreatedAt     time.Time `db:"created_at"`
}

var articleColumns = []string{
	"a.id AS id", "a.title AS title", "a.content AS content", "a.url AS url", "a.source AS source",
	"a.published_at AS published_at", "a.created_at AS created_at",
}

// CreateArticle stores an article with its topics and folds every topic into the trending aggregate,
// all in a single transaction. Returns false if an article with the same URL is already stored.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article, topics []domain.ArticleTopic) (bool, error) {
	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = article.CreatedAt
	}

	var created bool
	err := newRetrier().Do(ctx, func() error {
		created = false
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		id, err := r.insertArticle(ctx, tx, article)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: err}
		}
		if id == 0 {
			return nil // duplicate url, nothing to commit
		}

		for _, t := range topics {
			if err := r.insertTopic(ctx, tx, id, article.CreatedAt, t); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: err}
			}
			if err := upsertTrending(ctx, tx, t.EntityText, t.EntityType, t.TFIDFScore, now); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: err}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit transaction: %w", err)}
		}
		article.ID = id
		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("create article %s: %w", article.URL, err)
	}
	return created, nil
}

// insertArticle returns the new id, or 0 when the url already exists
func (r *ArticleRepository) insertArticle(ctx context.Context, tx *sqlx.Tx, a *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (title, content, url, source, published_at, created_at, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO NOTHING
	`
	res, err := tx.ExecContext(ctx, query, a.Title, a.Content, a.URL, a.Source,
		a.PublishedAt.UTC(), a.CreatedAt.UTC(), encodeVector(a.Embedding))
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return 0, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get insert id: %w", err)
	}
	return id, nil
}

// insertTopic stores one article topic with its match key, topics normalizing to nothing are skipped
func (r *ArticleRepository) insertTopic(ctx context.Context, tx *sqlx.Tx, articleID int64, createdAt time.Time, t domain.ArticleTopic) error {
	key := topic.NormalizeMatchKey(t.EntityText)
	if key == "" {
		return nil
	}
	query := `
		INSERT INTO article_topics (article_id, entity_text, entity_type, match_key, tfidf_score, ner_confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query, articleID, t.EntityText, t.EntityType, key,
		t.TFIDFScore, t.NERConfidence, createdAt.UTC()); err != nil {
		return fmt.Errorf("insert topic %q: %w", t.EntityText, err)
	}
	return nil
}

// ArticleExists checks if an article with the url is already stored
func (r *ArticleRepository) ArticleExists(ctx context.Context, url string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE url = ?)", url); err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// GetArticle retrieves an article by ID, returns domain.ErrNotFound if missing
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// GetArticleTopics retrieves topics of an article ordered by weight
func (r *ArticleRepository) GetArticleTopics(ctx context.Context, articleID int64) ([]domain.ArticleTopic, error) {
	var rows []articleTopicSQL
	query := "SELECT * FROM article_topics WHERE article_id = ? ORDER BY tfidf_score DESC, id"
	if err := r.db.SelectContext(ctx, &rows, query, articleID); err != nil {
		return nil, fmt.Errorf("get article topics: %w", err)
	}
	res := make([]domain.ArticleTopic, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ArticleTopic{
			ID:            row.ID,
			ArticleID:     row.ArticleID,
			EntityText:    row.EntityText,
			EntityType:    row.EntityType,
			TFIDFScore:    row.TFIDFScore,
			NERConfidence: row.NERConfidence,
			CreatedAt:     row.CreatedAt,
		})
	}
	return res, nil
}

// GetRecentArticles retrieves the latest articles by publish time, optionally limited to
// articles created within the last window hours
func (r *ArticleRepository) GetRecentArticles(ctx context.Context, window *int, limit int) ([]domain.Article, error) {
	q := psql.Select(articleColumns...).From("articles a").OrderBy("a.published_at DESC", "a.id DESC")
	if since := windowStart(time.Now(), window); since != nil {
		q = q.Where(sq.GtOrEq{"a.created_at": *since})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent query: %w", err)
	}

	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}
	res := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row.toDomain())
	}
	return res, nil
}

// SearchByEmbedding returns articles ordered by ascending cosine distance to the vector.
// Articles without an embedding or with a different dimension are skipped.
func (r *ArticleRepository) SearchByEmbedding(ctx context.Context, vec []float32, window *int, limit int) ([]domain.ArticleDistance, error) {
	blob := encodeVector(vec)
	if len(blob) == 0 {
		return []domain.ArticleDistance{}, nil
	}

	q := psql.Select(articleColumns...).
		Column(sq.Expr(distanceFunc+"(a.embedding, ?) AS distance", blob)).
		From("articles a").
		Where("a.embedding IS NOT NULL").
		Where(sq.Eq{"length(a.embedding)": len(blob)}).
		OrderBy("distance ASC", "a.published_at DESC")
	if since := windowStart(time.Now(), window); since != nil {
		q = q.Where(sq.GtOrEq{"a.created_at": *since})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build embedding query: %w", err)
	}

	var rows []struct {
		articleSQL
		Distance float64 `db:"distance"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search by embedding: %w", err)
	}
	res := make([]domain.ArticleDistance, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ArticleDistance{Article: *row.toDomain(), Distance: row.Distance})
	}
	return res, nil
}

// Purge deletes articles created before the cutoff together with their topics,
// and trending topics not seen since the cutoff
func (r *ArticleRepository) Purge(ctx context.Context, cutoff time.Time) (articles, trending int64, err error) {
	err = newRetrier().Do(ctx, func() error {
		// topics go first, cascade only works on connections with foreign keys enabled
		_, err := r.db.ExecContext(ctx,
			"DELETE FROM article_topics WHERE article_id IN (SELECT id FROM articles WHERE created_at < ?)", cutoff.UTC())
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("purge article topics: %w", err)}
		}

		res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE created_at < ?", cutoff.UTC())
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("purge articles: %w", err)}
		}
		if articles, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("get affected articles: %w", err)}
		}

		res, err = r.db.ExecContext(ctx, "DELETE FROM trending_topics WHERE last_seen_at < ?", cutoff.UTC())
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("purge trending: %w", err)}
		}
		if trending, err = res.RowsAffected(); err != nil {
			return &criticalError{err: fmt.Errorf("get affected trending: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("purge before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return articles, trending, nil
}

// Stats returns row counts of the main tables
func (r *ArticleRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var res domain.Stats
	query := `
		SELECT
			(SELECT COUNT(*) FROM articles) AS articles,
			(SELECT COUNT(*) FROM article_topics) AS topics,
			(SELECT COUNT(*) FROM trending_topics) AS trending,
			(SELECT COUNT(*) FROM facts) AS facts
	`
	if err := r.db.GetContext(ctx, &res, query); err != nil {
		return domain.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return res, nil
}

func (a *articleSQL) toDomain() *domain.Article {
	return &domain.Article{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		URL:         a.URL,
		Source:      a.Source,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		Embedding:   decodeVector(a.Embedding),
	}
}
