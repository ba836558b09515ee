package scenario

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/models"
)

// Result is the subset of records matching one scenario
type Result struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Stat         analysis.AggregateStat `json:"stat"`
	EstimatedROI float64                `json:"estimated_roi"`
	Records      []models.GameRecord    `json:"-"`
}

// Classifier evaluates a fixed set of scenarios against every record
type Classifier struct {
	scenarios []Scenario
	logger    logrus.FieldLogger
}

// Option configures a Classifier
type Option func(*Classifier)

// WithDisabled drops the named scenarios from the catalogue
func WithDisabled(names ...string) Option {
	return func(c *Classifier) {
		disabled := make(map[string]bool, len(names))
		for _, n := range names {
			disabled[n] = true
		}
		kept := make([]Scenario, 0, len(c.scenarios))
		for _, s := range c.scenarios {
			if !disabled[s.Name] {
				kept = append(kept, s)
			}
		}
		c.scenarios = kept
	}
}

// WithLogger sets the logger used for per-scenario debug output
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// NewClassifier creates a classifier over scenarios
func NewClassifier(scenarios []Scenario, opts ...Option) *Classifier {
	c := &Classifier{
		scenarios: append([]Scenario{}, scenarios...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Names returns the active scenario names in reporting order
func (c *Classifier) Names() []string {
	names := make([]string, len(c.scenarios))
	for i, s := range c.scenarios {
		names[i] = s.Name
	}
	return names
}

// Classify returns one result per active scenario. Scenarios are not
// exclusive: a record lands in every scenario it satisfies.
func (c *Classifier) Classify(records []models.GameRecord) []Result {
	matched := make([][]models.GameRecord, len(c.scenarios))
	for _, rec := range records {
		for i, s := range c.scenarios {
			if s.Match(rec) {
				matched[i] = append(matched[i], rec)
			}
		}
	}

	results := make([]Result, len(c.scenarios))
	for i, s := range c.scenarios {
		stat := analysis.Summarize(s.Name, matched[i])
		results[i] = Result{
			ID:           ID(s.Name),
			Name:         s.Name,
			Description:  s.Description,
			Stat:         stat,
			EstimatedROI: EstimateROI(stat),
			Records:      matched[i],
		}
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{
				"scenario": s.Name,
				"games":    stat.Games,
				"accuracy": stat.Accuracy,
			}).Debug("Scenario classified")
		}
	}
	return results
}

// ID returns a stable identifier for a scenario name
func ID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("scenario:"+name))
}

// EstimateROI approximates unit-stake return in percent. Groups at or below
// a 50% hit rate are charged their full loss rate.
func EstimateROI(stat analysis.AggregateStat) float64 {
	if stat.Games == 0 {
		return 0
	}
	miss := 1 - stat.Accuracy
	if stat.Accuracy > 0.5 {
		return stat.Accuracy*stat.AvgEdge - miss*100
	}
	return -miss * 100
}

// SplitByOutcome partitions records into correct and incorrect predictions
func SplitByOutcome(records []models.GameRecord) (correct, incorrect []models.GameRecord) {
	for _, rec := range records {
		if rec.Correct {
			correct = append(correct, rec)
		} else {
			incorrect = append(incorrect, rec)
		}
	}
	return correct, incorrect
}
