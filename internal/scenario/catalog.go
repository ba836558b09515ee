package scenario

import "time"

// Scenario names
const (
	HighConfidence          = "high_confidence"
	ModelConsensus          = "model_consensus"
	FavorableDay            = "favorable_day"
	FavorableWeather        = "favorable_weather"
	TopTeamInvolved         = "top_team_involved"
	HighEdge                = "high_edge"
	HighConfidenceConsensus = "high_confidence_consensus"
	CombinedOptimal         = "combined_optimal"
)

// Scenario is a named predicate over game records
type Scenario struct {
	Name        string
	Description string
	Match       Predicate
}

// Thresholds fixes the inputs of the standard scenario catalogue
type Thresholds struct {
	HighConfidence      float64
	CompositeConfidence float64
	HighEdge            float64
	MinCriteria         int
	FavorableDays       []time.Weekday
	FavorableWeather    string
	TopTeams            []string
}

// DefaultTopTeams are the clubs whose games have predicted best historically
var DefaultTopTeams = []string{
	"ChicagoCubs",
	"PhiladelphiaPhillies",
	"BaltimoreOrioles",
	"ColoradoRockies",
	"MiamiMarlins",
	"CincinnatiReds",
	"Athletics",
	"SanFranciscoGiants",
}

// DefaultThresholds returns the standard catalogue inputs
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighConfidence:      0.75,
		CompositeConfidence: 0.70,
		HighEdge:            5,
		MinCriteria:         3,
		FavorableDays:       []time.Weekday{time.Friday, time.Sunday},
		FavorableWeather:    "few clouds",
		TopTeams:            append([]string{}, DefaultTopTeams...),
	}
}

// CompositeCriteria returns the five criteria scored by the combined scenario.
// The confidence criterion uses the relaxed composite threshold, not the
// standalone high-confidence one.
func CompositeCriteria(t Thresholds) []Predicate {
	return []Predicate{
		ConfidenceAbove(t.CompositeConfidence),
		Consensus(),
		PlayedOn(t.FavorableDays...),
		WeatherIs(t.FavorableWeather),
		InvolvesTeam(t.TopTeams),
	}
}

// Catalog builds the standard scenarios in reporting order
func Catalog(t Thresholds) []Scenario {
	return []Scenario{
		{
			Name:        HighConfidence,
			Description: "confidence above the high-confidence threshold",
			Match:       ConfidenceAbove(t.HighConfidence),
		},
		{
			Name:        ModelConsensus,
			Description: "every ensemble member agrees",
			Match:       Consensus(),
		},
		{
			Name:        FavorableDay,
			Description: "played on a favorable weekday",
			Match:       PlayedOn(t.FavorableDays...),
		},
		{
			Name:        FavorableWeather,
			Description: "favorable sky condition",
			Match:       WeatherIs(t.FavorableWeather),
		},
		{
			Name:        TopTeamInvolved,
			Description: "a top team is playing",
			Match:       InvolvesTeam(t.TopTeams),
		},
		{
			Name:        HighEdge,
			Description: "edge above the high-edge threshold",
			Match:       EdgeAbove(t.HighEdge),
		},
		{
			Name:        HighConfidenceConsensus,
			Description: "high confidence and every ensemble member agrees",
			Match:       All(ConfidenceAbove(t.HighConfidence), Consensus()),
		},
		{
			Name:        CombinedOptimal,
			Description: "meets the minimum number of composite criteria",
			Match:       AtLeast(t.MinCriteria, CompositeCriteria(t)...),
		},
	}
}
