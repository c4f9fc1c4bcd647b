// Package assessment scores the bone-health risk questionnaire and maps the
// score to a tier of recommendations. It holds no state and does no I/O.
package assessment

// Question types.
const (
	SingleChoice = "single-choice"
	MultiChoice  = "multi-choice"
)

// Text is a localizable string: a catalog key and the English literal used
// when no catalog has it.
type Text struct {
	Key     string `json:"key"`
	Default string `json:"text"`
}

type Option struct {
	Value string `json:"value"`
	Label Text   `json:"label"`
	Score int    `json:"score"`
}

type Question struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question Text     `json:"question"`
	Options  []Option `json:"options"`
}

func (q Question) option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

var questionnaire = []Question{
	{
		ID:       "age",
		Type:     SingleChoice,
		Question: Text{"assessment.age", "What is your age?"},
		Options: []Option{
			{"under40", Text{"assessment.under40", "Under 40"}, 0},
			{"40-50", Text{"assessment.40-50", "40-50"}, 1},
			{"50-60", Text{"assessment.50-60", "50-60"}, 2},
			{"over60", Text{"assessment.over60", "Over 60"}, 3},
		},
	},
	{
		ID:       "ethnicity",
		Type:     SingleChoice,
		Question: Text{"assessment.ethnicity", "What is your ethnic background?"},
		Options: []Option{
			{"east-asian", Text{"assessment.eastAsian", "East Asian"}, 2},
			{"south-asian", Text{"assessment.southAsian", "South Asian"}, 2},
			{"southeast-asian", Text{"assessment.southeastAsian", "Southeast Asian"}, 2},
			{"other", Text{"assessment.other", "Other"}, 1},
		},
	},
	{
		ID:       "menopause",
		Type:     SingleChoice,
		Question: Text{"assessment.menopause", "Have you gone through menopause?"},
		Options: []Option{
			{"no", Text{"assessment.no", "No"}, 0},
			{"early", Text{"assessment.earlyMenopause", "Yes, before age 45"}, 3},
			{"normal", Text{"assessment.normalMenopause", "Yes, after age 45"}, 2},
		},
	},
	{
		ID:       "family-history",
		Type:     MultiChoice,
		Question: Text{"assessment.familyHistory", "Do you have a family history of osteoporosis or fractures?"},
		Options: []Option{
			{"mother", Text{"assessment.mother", "Mother"}, 2},
			{"father", Text{"assessment.father", "Father"}, 1},
			{"sibling", Text{"assessment.sibling", "Sibling"}, 1},
			{"grandparent", Text{"assessment.grandparent", "Grandparent"}, 1},
		},
	},
	{
		ID:       "lifestyle",
		Type:     MultiChoice,
		Question: Text{"assessment.lifestyle", "Which of these apply to you?"},
		Options: []Option{
			{"smoking", Text{"assessment.smoking", "Current smoker"}, 2},
			{"alcohol", Text{"assessment.alcohol", "Drink alcohol regularly"}, 1},
			{"sedentary", Text{"assessment.sedentary", "Sedentary lifestyle"}, 2},
			{"low-calcium", Text{"assessment.lowCalcium", "Low calcium intake"}, 2},
		},
	},
}

// Questions returns a copy of the fixed questionnaire in presentation order.
func Questions() []Question {
	out := make([]Question, len(questionnaire))
	for i, q := range questionnaire {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

// MaxScore is the sum of every option's score across the questionnaire.
func MaxScore() int {
	total := 0
	for _, q := range questionnaire {
		for _, o := range q.Options {
			total += o.Score
		}
	}
	return total
}

// Risk tiers.
const (
	TierLow      = "low"
	TierModerate = "moderate"
	TierHigh     = "high"
)

var recommendations = map[string][]Text{
	TierLow: {
		{"recommendations.low1", "Continue with regular exercise and calcium-rich diet"},
		{"recommendations.low2", "Consider bone density screening in 2-3 years"},
		{"recommendations.low3", "Maintain healthy lifestyle habits"},
	},
	TierModerate: {
		{"recommendations.moderate1", "Schedule bone density screening within 6 months"},
		{"recommendations.moderate2", "Increase calcium and vitamin D intake"},
		{"recommendations.moderate3", "Start weight-bearing exercise program"},
		{"recommendations.moderate4", "Consider consulting with healthcare provider"},
	},
	TierHigh: {
		{"recommendations.high1", "Schedule immediate consultation with healthcare provider"},
		{"recommendations.high2", "Get bone density screening as soon as possible"},
		{"recommendations.high3", "Consider medication evaluation"},
		{"recommendations.high4", "Implement comprehensive prevention strategy"},
	},
}

// Recommendations returns the ordered recommendations for tier, or nil for an
// unknown tier.
func Recommendations(tier string) []Text {
	recs, ok := recommendations[tier]
	if !ok {
		return nil
	}
	return append([]Text(nil), recs...)
}
