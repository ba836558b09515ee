package analysis

import (
	"sort"

	"github.com/yourusername/edge-analysis/internal/models"
)

// KeyFunc derives the group keys a record contributes to. Returning no keys
// excludes the record from the grouping.
type KeyFunc func(models.GameRecord) []string

// Dimension is a named grouping with an optional canonical display order
type Dimension struct {
	Name  string
	Keys  KeyFunc
	Order []string
}

// Grouping is the result of reducing records along one dimension
type Grouping struct {
	Dimension string                   `json:"dimension"`
	Order     []string                 `json:"order"`
	Stats     map[string]AggregateStat `json:"stats"`
}

// GroupOption tunes a GroupBy call
type GroupOption func(*groupOptions)

type groupOptions struct {
	minGames int
}

// WithMinGames keeps only keys with strictly more than n contributing records
func WithMinGames(n int) GroupOption {
	return func(o *groupOptions) {
		o.minGames = n
	}
}

// GroupBy reduces records to per-key statistics along dim
func GroupBy(records []models.GameRecord, dim Dimension, opts ...GroupOption) Grouping {
	options := groupOptions{minGames: -1}
	for _, opt := range opts {
		opt(&options)
	}

	buckets := make(map[string]*accumulator)
	for _, rec := range records {
		for _, key := range uniqueKeys(dim.Keys(rec)) {
			acc, ok := buckets[key]
			if !ok {
				acc = &accumulator{}
				buckets[key] = acc
			}
			acc.add(rec, rec.Correct)
		}
	}

	return newGrouping(dim.Name, dim.Order, buckets, options.minGames)
}

func newGrouping(name string, canonical []string, buckets map[string]*accumulator, minGames int) Grouping {
	stats := make(map[string]AggregateStat, len(buckets))
	for key, acc := range buckets {
		if acc.games <= minGames {
			continue
		}
		stats[key] = acc.stat(key)
	}
	return Grouping{
		Dimension: name,
		Order:     displayOrder(canonical, stats),
		Stats:     stats,
	}
}

// Get returns the statistics for key
func (g Grouping) Get(key string) (AggregateStat, bool) {
	stat, ok := g.Stats[key]
	return stat, ok
}

// Ordered returns the statistics in display order
func (g Grouping) Ordered() []AggregateStat {
	out := make([]AggregateStat, 0, len(g.Order))
	for _, key := range g.Order {
		if stat, ok := g.Stats[key]; ok {
			out = append(out, stat)
		}
	}
	return out
}

// Len returns the number of keys in the grouping
func (g Grouping) Len() int {
	return len(g.Stats)
}

// displayOrder lists keys present in stats: canonical ones first in their
// given order, then the rest lexicographically.
func displayOrder(canonical []string, stats map[string]AggregateStat) []string {
	order := make([]string, 0, len(stats))
	placed := make(map[string]bool, len(canonical))
	for _, key := range canonical {
		if _, ok := stats[key]; ok && !placed[key] {
			order = append(order, key)
			placed[key] = true
		}
	}
	rest := make([]string, 0, len(stats)-len(order))
	for key := range stats {
		if !placed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func uniqueKeys(keys []string) []string {
	if len(keys) < 2 {
		return keys
	}
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
