// Package analytics provides pure, read-only statistics over a task
// collection. Nothing here touches storage; callers pass the tasks in.
package analytics

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jyang234/taskpad/internal/model"
)

// wordRe matches contiguous runs of Latin/Cyrillic letters and digits.
var wordRe = regexp.MustCompile(`[A-Za-zА-Яа-я0-9]+`)

// stopwords is a closed list of common English and Russian function words
// excluded from keyword counting.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "for": {},
	"и": {}, "в": {}, "на": {}, "с": {}, "по": {}, "для": {},
}

// CompletionRate returns done/total as a percentage rounded to two decimals,
// 0.0 for an empty collection.
func CompletionRate(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	// Half-even rounding, so exact halves like 1/32 -> 3.12
	return math.RoundToEven(float64(done)/float64(len(tasks))*10000) / 100
}

// PriorityDistribution returns a histogram over priority levels 1..5. All
// five keys are always present, zero-filled.
func PriorityDistribution(tasks []model.Task) map[int]int {
	dist := make(map[int]int, model.MaxPriority)
	for level := model.MinPriority; level <= model.MaxPriority; level++ {
		dist[level] = 0
	}
	for _, t := range tasks {
		dist[t.Priority]++
	}
	return dist
}

// Keyword is a token and how often it appears across titles and
// descriptions.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopKeywords tokenizes every task's title and description, drops stopwords
// and tokens of two runes or fewer, and returns the limit most frequent
// tokens. Ties keep first-encountered order.
func TopKeywords(tasks []model.Task, limit int) []Keyword {
	counts := make(map[string]int)
	var order []string

	collect := func(text string) {
		for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
			if _, skip := stopwords[word]; skip {
				continue
			}
			if utf8.RuneCountInString(word) <= 2 {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	for _, t := range tasks {
		collect(t.Title)
		collect(t.Description)
	}

	ranked := make([]Keyword, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, Keyword{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
