package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fact is a short generated statement backed by source articles
type Fact struct {
	ID               string    `json:"id"`
	Text             string    `json:"text"`
	Topics           []string  `json:"topics"`
	SourceArticleIDs []int64   `json:"sourceArticleIds"`
	Upvotes          int64     `json:"upvotes"`
	Downvotes        int64     `json:"downvotes"`
	CreatedAt        time.Time `json:"created_at"`
}

// Vote is a rating direction for a fact
type Vote string

// enum of votes
const (
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// ParseVote validates a vote string
func ParseVote(s string) (Vote, error) {
	switch v := Vote(strings.ToLower(strings.TrimSpace(s))); v {
	case VoteUp, VoteDown:
		return v, nil
	default:
		return "", fmt.Errorf("unsupported vote %q, expected up or down", s)
	}
}

// ErrNotFound is returned by lookups for missing records
var ErrNotFound = errors.New("not found")
