package topic

import (
	"strings"

	"github.com/umputun/uselessfacts/pkg/domain"
)

// typeShareDivisor caps every entity type at ceil(limit/typeShareDivisor) accepted topics
const typeShareDivisor = 5

// SelectDiverse picks up to limit topics from the list in the given order, skipping a topic when
// its type already reached the per-type cap or when it is similar to an accepted one.
// The selection is greedy and depends on input order; callers sort or shuffle beforehand.
func SelectDiverse(topics []domain.Topic, limit int) []domain.Topic {
	if limit <= 0 || len(topics) == 0 {
		return []domain.Topic{}
	}

	maxPerType := (limit + typeShareDivisor - 1) / typeShareDivisor
	perType := make(map[string]int)
	res := make([]domain.Topic, 0, min(limit, len(topics)))

	for _, t := range topics {
		if len(res) >= limit {
			break
		}
		if perType[t.Type] >= maxPerType {
			continue
		}
		if similarToAny(t.Text, res) {
			continue
		}
		res = append(res, t)
		perType[t.Type]++
	}
	return res
}

func similarToAny(text string, accepted []domain.Topic) bool {
	for _, a := range accepted {
		if Similar(text, a.Text) {
			return true
		}
	}
	return false
}

// Similar reports whether two topic texts are near-duplicates: equal, one containing the other,
// or, when both have several words, sharing more than half of the shorter one's words
func Similar(a, b string) bool {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	wa, wb := strings.Fields(a), strings.Fields(b)
	if len(wa) < 2 || len(wb) < 2 {
		return false
	}

	shorter, longer := wa, wb
	if len(wb) < len(wa) {
		shorter, longer = wb, wa
	}
	words := make(map[string]bool, len(longer))
	for _, w := range longer {
		words[w] = true
	}
	overlap := 0
	for _, w := range shorter {
		if words[w] {
			overlap++
		}
	}
	return float64(overlap)/float64(len(shorter)) > 0.5
}
