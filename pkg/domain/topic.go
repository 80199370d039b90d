package domain

import "time"

// Topic is the single representation of a topic shown to callers, regardless of which
// aggregate produced it
type Topic struct {
	Text          string    `json:"text"`
	Type          string    `json:"type"`
	Count         int64     `json:"count"`
	AvgWeight     float64   `json:"avgWeight"`
	CombinedScore float64   `json:"combinedScore"`
	LastSeen      time.Time `json:"lastSeen"`
}

// TopicSource names the aggregate a topic list was built from
type TopicSource string

// enum of topic sources
const (
	TopicSourceTrending TopicSource = "trending"
	TopicSourceArticles TopicSource = "articles"
)

// entity types produced by the extractor
const (
	EntityPerson       = "PERSON"
	EntityOrganization = "ORGANIZATION"
	EntityLocation     = "LOCATION"
	EntityTechnology   = "TECHNOLOGY"
	EntityEvent        = "EVENT"
	EntityConcept      = "CONCEPT"
)

// EntityTypes lists all known entity types
var EntityTypes = []string{EntityPerson, EntityOrganization, EntityLocation, EntityTechnology, EntityEvent, EntityConcept}

// ArticleTopicStat aggregates article topics sharing a match key over a time window
type ArticleTopicStat struct {
	EntityText    string
	EntityType    string
	ArticleCount  int64
	AvgTFIDFScore float64
	LastSeenAt    time.Time
}

// Stats holds row counts of the main tables
type Stats struct {
	Articles int64 `json:"articles"`
	Topics   int64 `json:"topics"`
	Trending int64 `json:"trending"`
	Facts    int64 `json:"facts"`
}
