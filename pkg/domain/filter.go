package domain

import (
	"fmt"
	"strings"
)

// TimeFilter is a named recency window accepted by the article endpoints
type TimeFilter string

// enum of supported time filters
const (
	TimeFilter24h TimeFilter = "24h"
	TimeFilter7d  TimeFilter = "7d"
	TimeFilter30d TimeFilter = "30d"
	TimeFilterAll TimeFilter = "all"
)

// ParseTimeFilter validates a time filter string
func ParseTimeFilter(s string) (TimeFilter, error) {
	switch tf := TimeFilter(strings.TrimSpace(s)); tf {
	case TimeFilter24h, TimeFilter7d, TimeFilter30d, TimeFilterAll:
		return tf, nil
	default:
		return "", fmt.Errorf("unsupported time filter %q, expected one of 24h, 7d, 30d, all", s)
	}
}

// Hours returns the window in hours, nil for unbounded
func (tf TimeFilter) Hours() *int {
	var h int
	switch tf {
	case TimeFilter24h:
		h = 24
	case TimeFilter7d:
		h = 168
	case TimeFilter30d:
		h = 720
	default:
		return nil
	}
	return &h
}

// MatchType selects how multiple requested topics combine
type MatchType string

// enum of match types
const (
	MatchAny MatchType = "any"
	MatchAll MatchType = "all"
)

// MatchOptions controls a topic match query
type MatchOptions struct {
	MatchType   MatchType
	Limit       int
	TimeWindow  *int // hours, nil means unbounded
	EntityTypes []string
}

// TextOptions controls a free-text search
type TextOptions struct {
	TimeWindow *int
	Limit      int
}

// TopicQuery controls topic listing
type TopicQuery struct {
	TimeWindow  int // hours
	Limit       int
	EntityTypes []string
}
