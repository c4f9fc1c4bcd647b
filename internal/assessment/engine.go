package assessment

import (
	"encoding/json"
)

// Answer is the caller's response to one question. It decodes from a JSON
// string or an array of strings; any other shape decodes to an empty answer
// rather than an error so that it simply scores zero.
type Answer struct {
	values []string
	multi  bool
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	*a = Answer{}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		a.values = []string{single}
		return nil
	}

	var items []any
	if err := json.Unmarshal(data, &items); err == nil {
		a.multi = true
		for _, item := range items {
			if s, ok := item.(string); ok {
				a.values = append(a.values, s)
			}
		}
	}
	return nil
}

// Responses maps question id to answer.
type Responses map[string]Answer

// Score sums the option scores selected in responses. Unknown questions,
// unknown option values and mis-shaped answers contribute zero. A
// multi-choice question counts each distinct option once and only accepts an
// array.
func Score(responses Responses) int {
	total := 0
	for _, q := range questionnaire {
		answer, ok := responses[q.ID]
		if !ok {
			continue
		}
		total += questionScore(q, answer)
	}
	return total
}

func questionScore(q Question, a Answer) int {
	switch q.Type {
	case SingleChoice:
		if a.multi || len(a.values) != 1 {
			return 0
		}
		if o, ok := q.option(a.values[0]); ok {
			return o.Score
		}
	case MultiChoice:
		if !a.multi {
			return 0
		}
		seen := make(map[string]bool, len(a.values))
		sum := 0
		for _, v := range a.values {
			if seen[v] {
				continue
			}
			seen[v] = true
			if o, ok := q.option(v); ok {
				sum += o.Score
			}
		}
		return sum
	}
	return 0
}

// Tier maps a score to its risk tier: up to 3 is low, 4 to 7 moderate, 8 and
// above high.
func Tier(score int) string {
	switch {
	case score <= 3:
		return TierLow
	case score <= 7:
		return TierModerate
	default:
		return TierHigh
	}
}

// Result is the outcome of scoring one submission.
type Result struct {
	Score           int    `json:"riskScore"`
	Tier            string `json:"riskLevel"`
	MaxScore        int    `json:"maxScore"`
	Recommendations []Text `json:"recommendations"`
}

func Evaluate(responses Responses) Result {
	score := Score(responses)
	tier := Tier(score)
	return Result{
		Score:           score,
		Tier:            tier,
		MaxScore:        MaxScore(),
		Recommendations: Recommendations(tier),
	}
}
