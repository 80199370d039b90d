// Package relevance computes relevance scores for query results. Each entry point uses its own
// formula, selected explicitly by Strategy.
package relevance

import "math"

// Strategy selects the scoring formula
type Strategy string

// enum of scoring strategies
const (
	// TopicExact scores topic matches as (matched/total) * weight * recency
	TopicExact Strategy = "topic-exact"
	// TopicWeighted scores topic matches as min((matched/total)*0.7 + avgWeight*0.3, 1)
	TopicWeighted Strategy = "topic-weighted"
	// TextRank scores text search results by their position in the page
	TextRank Strategy = "text-rank"
)

// recency factors for TopicExact
const (
	boundedRecency   = 1.0
	unboundedRecency = 0.8
)

// Input carries the aggregated values a strategy may need
type Input struct {
	MatchedTopics int
	TotalTopics   int
	AvgWeight     float64
	MaxWeight     float64
	Bounded       bool // a finite time window was requested

	Rank  int // zero-based position in the result page
	Total int // number of results in the page
}

// Score computes the score for the given strategy. Zero denominators produce zero.
func Score(s Strategy, in Input) float64 {
	switch s {
	case TopicExact:
		return topicExact(in)
	case TopicWeighted:
		return topicWeighted(in)
	case TextRank:
		return textRank(in)
	default:
		return 0
	}
}

func topicExact(in Input) float64 {
	if in.TotalTopics <= 0 {
		return 0
	}
	weight := in.AvgWeight
	if weight == 0 {
		weight = in.MaxWeight
	}
	recency := unboundedRecency
	if in.Bounded {
		recency = boundedRecency
	}
	return float64(in.MatchedTopics) / float64(in.TotalTopics) * weight * recency
}

func topicWeighted(in Input) float64 {
	if in.TotalTopics <= 0 {
		return 0
	}
	score := float64(in.MatchedTopics)/float64(in.TotalTopics)*0.7 + in.AvgWeight*0.3
	return math.Max(0, math.Min(score, 1.0))
}

func textRank(in Input) float64 {
	if in.Total <= 0 {
		return 0
	}
	return 1.0 - float64(in.Rank)/float64(in.Total)*0.5
}
