package domain

import "time"

// Article represents an ingested news article
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	Embedding   []float32 `json:"-"`
}

// ArticleTopic is an entity extracted from an article
type ArticleTopic struct {
	ID            int64     `json:"id"`
	ArticleID     int64     `json:"article_id"`
	EntityText    string    `json:"entity_text"`
	EntityType    string    `json:"entity_type"`
	TFIDFScore    float64   `json:"tfidf_score"`
	NERConfidence float64   `json:"ner_confidence"`
	CreatedAt     time.Time `json:"created_at"`
}

// TrendingTopic aggregates extraction events sharing the same normalized key
type TrendingTopic struct {
	ID              int64     `json:"id"`
	TopicText       string    `json:"topic_text"`
	EntityType      string    `json:"entity_type"`
	OccurrenceCount int64     `json:"occurrence_count"`
	AvgTFIDFScore   float64   `json:"avg_tfidf_score"`
	LastSeenAt      time.Time `json:"last_seen_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// Fold returns the aggregate after one more extraction event with the given weight
func (t TrendingTopic) Fold(score float64, seen time.Time) TrendingTopic {
	res := t
	res.AvgTFIDFScore = (t.AvgTFIDFScore*float64(t.OccurrenceCount) + score) / float64(t.OccurrenceCount+1)
	res.OccurrenceCount = t.OccurrenceCount + 1
	res.LastSeenAt = seen
	return res
}

// TopicMatch is an article returned by the topic match engine along with match statistics
type TopicMatch struct {
	Article
	MatchedTopics []string
	MatchCount    int
	AvgWeight     float64
	MaxWeight     float64
}

// ArticleWithRelevance is the response view of an article annotated for a query
type ArticleWithRelevance struct {
	Article
	Snippet        string   `json:"snippet"`
	RelevanceScore float64  `json:"relevanceScore"`
	MatchedTopics  []string `json:"matchedTopics"`
	Distance       *float64 `json:"distance,omitempty"`
}

// ArticleDistance is an article with its cosine distance to a query embedding
type ArticleDistance struct {
	Article
	Distance float64
}
