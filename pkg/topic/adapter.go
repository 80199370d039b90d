package topic

import "github.com/umputun/uselessfacts/pkg/domain"

// FromTrending converts trending aggregate rows to topics
func FromTrending(rows []domain.TrendingTopic) []domain.Topic {
	res := make([]domain.Topic, 0, len(rows))
	for _, r := range rows {
		res = append(res, domain.Topic{
			Text:          r.TopicText,
			Type:          r.EntityType,
			Count:         r.OccurrenceCount,
			AvgWeight:     r.AvgTFIDFScore,
			CombinedScore: float64(r.OccurrenceCount) * r.AvgTFIDFScore,
			LastSeen:      r.LastSeenAt,
		})
	}
	return res
}

// FromArticleStats converts per-article topic aggregates to topics
func FromArticleStats(rows []domain.ArticleTopicStat) []domain.Topic {
	res := make([]domain.Topic, 0, len(rows))
	for _, r := range rows {
		res = append(res, domain.Topic{
			Text:          r.EntityText,
			Type:          r.EntityType,
			Count:         r.ArticleCount,
			AvgWeight:     r.AvgTFIDFScore,
			CombinedScore: float64(r.ArticleCount) * r.AvgTFIDFScore,
			LastSeen:      r.LastSeenAt,
		})
	}
	return res
}
