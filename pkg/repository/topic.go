package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/uselessfacts/pkg/domain"
	"github.com/umputun/uselessfacts/pkg/topic"
)

// matchedSeparator joins entity texts in GROUP_CONCAT, unit separator never appears in extracted text
const matchedSeparator = "\x1f"

// TopicRepository handles topic matching and topic aggregates
type TopicRepository struct {
	db *sqlx.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// topicMatchSQL is an article row aggregated over its matching topics
type topicMatchSQL struct {
	articleSQL
	MatchCount    int     `db:"match_count"`
	AvgWeight     float64 `db:"avg_weight"`
	MaxWeight     float64 `db:"max_weight"`
	MatchedTopics string  `db:"matched_topics"`
}

// trendingSQL is the trending_topics row
type trendingSQL struct {
	ID              int64     `db:"id"`
	TopicText       string    `db:"topic_text"`
	EntityType      string    `db:"entity_type"`
	OccurrenceCount int64     `db:"occurrence_count"`
	AvgTFIDFScore   float64   `db:"avg_tfidf_score"`
	LastSeenAt      time.Time `db:"last_seen_at"`
	CreatedAt       time.Time `db:"created_at"`
}

// topicStatSQL is an article_topics aggregate grouped by match key
type topicStatSQL struct {
	EntityText    string    `db:"entity_text"`
	EntityType    string    `db:"entity_type"`
	ArticleCount  int64     `db:"article_count"`
	AvgTFIDFScore float64   `db:"avg_tfidf_score"`
	LastSeenAt    time.Time `db:"last_seen_at"`
	Latest        any       `db:"latest"` // max(created_at), selects the row bare columns come from
}

// FindByMatchKeys returns articles whose topics have one of the match keys. With domain.MatchAll every
// key must be present on the article, otherwise a single key qualifies. Keys must be produced by
// topic.NormalizeMatchKey.
func (r *TopicRepository) FindByMatchKeys(ctx context.Context, keys []string, opts domain.MatchOptions) ([]domain.TopicMatch, error) {
	if len(keys) == 0 {
		return []domain.TopicMatch{}, nil
	}

	q := r.matchSelect(opts).Where(sq.Eq{"t.match_key": keys})
	if opts.MatchType == domain.MatchAll {
		q = q.Having("COUNT(DISTINCT t.match_key) = ?", len(keys)).
			OrderBy("match_count DESC", "avg_weight DESC", "a.published_at DESC")
	} else {
		q = q.OrderBy("max_weight DESC", "a.published_at DESC")
	}
	return r.selectMatches(ctx, q)
}

// FindByPatterns returns articles with at least one topic containing any of the patterns,
// case-insensitive. Patterns are plain substrings, LIKE wildcards in them are escaped.
func (r *TopicRepository) FindByPatterns(ctx context.Context, patterns []string, opts domain.MatchOptions) ([]domain.TopicMatch, error) {
	or := sq.Or{}
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p == "" {
			continue
		}
		or = append(or, sq.Expr(`LOWER(t.entity_text) LIKE ? ESCAPE '\'`, "%"+escapeLike(p)+"%"))
	}
	if len(or) == 0 {
		return []domain.TopicMatch{}, nil
	}

	q := r.matchSelect(opts).Where(or).OrderBy("match_count DESC", "max_weight DESC", "a.published_at DESC")
	return r.selectMatches(ctx, q)
}

// matchSelect builds the aggregate shared by exact and fuzzy matching, with window, types and limit applied
func (r *TopicRepository) matchSelect(opts domain.MatchOptions) sq.SelectBuilder {
	q := psql.Select(articleColumns...).
		Columns(
			"COUNT(DISTINCT t.match_key) AS match_count",
			"AVG(t.tfidf_score) AS avg_weight",
			"MAX(t.tfidf_score) AS max_weight",
			"GROUP_CONCAT(t.entity_text, char(31)) AS matched_topics",
		).
		From("articles a").
		Join("article_topics t ON t.article_id = a.id").
		GroupBy("a.id")
	if since := windowStart(time.Now(), opts.TimeWindow); since != nil {
		q = q.Where(sq.GtOrEq{"a.created_at": *since})
	}
	if len(opts.EntityTypes) > 0 {
		q = q.Where(sq.Eq{"t.entity_type": opts.EntityTypes})
	}
	if opts.Limit > 0 {
		q = q.Limit(uint64(opts.Limit))
	}
	return q
}

func (r *TopicRepository) selectMatches(ctx context.Context, q sq.SelectBuilder) ([]domain.TopicMatch, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build match query: %w", err)
	}
	var rows []topicMatchSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("match topics: %w", err)
	}

	res := make([]domain.TopicMatch, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.TopicMatch{
			Article:       *row.toDomain(),
			MatchedTopics: uniqueTopics(strings.Split(row.MatchedTopics, matchedSeparator)),
			MatchCount:    row.MatchCount,
			AvgWeight:     row.AvgWeight,
			MaxWeight:     row.MaxWeight,
		})
	}
	return res, nil
}

// uniqueTopics keeps the first surface form for every match key
func uniqueTopics(texts []string) []string {
	seen := make(map[string]bool, len(texts))
	res := make([]string, 0, len(texts))
	for _, t := range texts {
		key := topic.NormalizeMatchKey(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, t)
	}
	return res
}

// upsertTrending folds one extraction event into the trending aggregate. The average and the count
// are recomputed by a single statement, so concurrent events for the same key are never lost.
func upsertTrending(ctx context.Context, ex sqlx.ExecerContext, text, entityType string, score float64, seen time.Time) error {
	key := topic.NormalizeKey(text)
	if key == "" {
		return nil
	}
	query := `
		INSERT INTO trending_topics (topic_text, entity_type, occurrence_count, avg_tfidf_score, last_seen_at, created_at)
		VALUES (?, ?, 1, ?, ?, ?)
		ON CONFLICT(topic_text) DO UPDATE SET
			avg_tfidf_score = (trending_topics.avg_tfidf_score * trending_topics.occurrence_count + excluded.avg_tfidf_score)
				/ (trending_topics.occurrence_count + 1),
			occurrence_count = trending_topics.occurrence_count + 1,
			last_seen_at = excluded.last_seen_at
	`
	if _, err := ex.ExecContext(ctx, query, key, entityType, score, seen.UTC(), seen.UTC()); err != nil {
		return fmt.Errorf("upsert trending %q: %w", key, err)
	}
	return nil
}

// GetTrending returns trending topics seen within the window, ordered by occurrence times weight
func (r *TopicRepository) GetTrending(ctx context.Context, q domain.TopicQuery) ([]domain.TrendingTopic, error) {
	sel := psql.Select("*").From("trending_topics").
		OrderBy("occurrence_count * avg_tfidf_score DESC", "occurrence_count DESC", "last_seen_at DESC")
	if q.TimeWindow > 0 {
		sel = sel.Where(sq.GtOrEq{"last_seen_at": time.Now().Add(-time.Duration(q.TimeWindow) * time.Hour).UTC()})
	}
	if len(q.EntityTypes) > 0 {
		sel = sel.Where(sq.Eq{"entity_type": q.EntityTypes})
	}
	if q.Limit > 0 {
		sel = sel.Limit(uint64(q.Limit))
	}
	return r.selectTrending(ctx, sel)
}

// SuggestTrending returns trending topics containing the key, prefix matches first, then by occurrence
func (r *TopicRepository) SuggestTrending(ctx context.Context, key string, limit int) ([]domain.TrendingTopic, error) {
	if key == "" {
		return []domain.TrendingTopic{}, nil
	}
	escaped := escapeLike(key)
	sel := psql.Select("*").From("trending_topics").
		Where(`topic_text LIKE ? ESCAPE '\'`, "%"+escaped+"%").
		OrderByClause(`CASE WHEN topic_text LIKE ? ESCAPE '\' THEN 0 ELSE 1 END`, escaped+"%").
		OrderBy("occurrence_count DESC", "topic_text")
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}
	return r.selectTrending(ctx, sel)
}

func (r *TopicRepository) selectTrending(ctx context.Context, sel sq.SelectBuilder) ([]domain.TrendingTopic, error) {
	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trending query: %w", err)
	}
	var rows []trendingSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get trending topics: %w", err)
	}
	res := make([]domain.TrendingTopic, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.TrendingTopic(row))
	}
	return res, nil
}

// GetArticleTopicStats aggregates article topics created within the window by match key. Text and type
// of every group come from its most recent row.
func (r *TopicRepository) GetArticleTopicStats(ctx context.Context, q domain.TopicQuery) ([]domain.ArticleTopicStat, error) {
	// with a single max() aggregate sqlite takes bare columns from the row holding the maximum
	sel := psql.Select(
		"t.entity_text AS entity_text",
		"t.entity_type AS entity_type",
		"COUNT(DISTINCT t.article_id) AS article_count",
		"AVG(t.tfidf_score) AS avg_tfidf_score",
		"t.created_at AS last_seen_at",
		"MAX(t.created_at) AS latest",
	).From("article_topics t").
		GroupBy("t.match_key").
		OrderBy("COUNT(DISTINCT t.article_id) * AVG(t.tfidf_score) DESC", "COUNT(DISTINCT t.article_id) DESC", "t.match_key")
	if q.TimeWindow > 0 {
		sel = sel.Where(sq.GtOrEq{"t.created_at": time.Now().Add(-time.Duration(q.TimeWindow) * time.Hour).UTC()})
	}
	if len(q.EntityTypes) > 0 {
		sel = sel.Where(sq.Eq{"t.entity_type": q.EntityTypes})
	}
	if q.Limit > 0 {
		sel = sel.Limit(uint64(q.Limit))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic stats query: %w", err)
	}
	var rows []topicStatSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get article topic stats: %w", err)
	}
	res := make([]domain.ArticleTopicStat, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.ArticleTopicStat{
			EntityText:    row.EntityText,
			EntityType:    row.EntityType,
			ArticleCount:  row.ArticleCount,
			AvgTFIDFScore: row.AvgTFIDFScore,
			LastSeenAt:    row.LastSeenAt,
		})
	}
	return res, nil
}
