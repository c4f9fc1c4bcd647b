package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(value string) Answer {
	return Answer{values: []string{value}}
}

func multi(values ...string) Answer {
	return Answer{values: values, multi: true}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		responses Responses
		want      int
	}{
		{
			name: "high risk profile",
			responses: Responses{
				"age":            single("over60"),
				"ethnicity":      single("east-asian"),
				"menopause":      single("early"),
				"family-history": multi("mother"),
				"lifestyle":      multi("smoking", "sedentary"),
			},
			want: 14,
		},
		{name: "empty responses", responses: Responses{}, want: 0},
		{name: "nil responses", responses: nil, want: 0},
		{name: "unknown option", responses: Responses{"age": single("not-a-real-option")}, want: 0},
		{name: "unknown question", responses: Responses{"shoe-size": single("42")}, want: 0},
		{name: "multi ignores unknown selections", responses: Responses{"lifestyle": multi("alcohol", "skydiving")}, want: 1},
		{name: "multi counts each option once", responses: Responses{"family-history": multi("mother", "mother", "father")}, want: 3},
		{name: "array for single-choice scores zero", responses: Responses{"age": multi("over60")}, want: 0},
		{name: "string for multi-choice scores zero", responses: Responses{"lifestyle": single("smoking")}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.responses))
		})
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, TierLow},
		{3, TierLow},
		{4, TierModerate},
		{7, TierModerate},
		{8, TierHigh},
		{14, TierHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tier(tt.score), "score %d", tt.score)
	}
}

func TestEvaluate(t *testing.T) {
	res := Evaluate(Responses{
		"age":            single("over60"),
		"ethnicity":      single("east-asian"),
		"menopause":      single("early"),
		"family-history": multi("mother"),
		"lifestyle":      multi("smoking", "sedentary"),
	})

	assert.Equal(t, 14, res.Score)
	assert.Equal(t, TierHigh, res.Tier)
	assert.Equal(t, 30, res.MaxScore)
	require.Len(t, res.Recommendations, 4)
	assert.Equal(t, "recommendations.high1", res.Recommendations[0].Key)
	assert.Equal(t, "Schedule immediate consultation with healthcare provider", res.Recommendations[0].Default)
}

func TestRecommendations(t *testing.T) {
	assert.Len(t, Recommendations(TierLow), 3)
	assert.Len(t, Recommendations(TierModerate), 4)
	assert.Len(t, Recommendations(TierHigh), 4)
	assert.Nil(t, Recommendations("extreme"))

	recs := Recommendations(TierLow)
	recs[0].Default = "changed"
	assert.Equal(t, "Continue with regular exercise and calcium-rich diet", Recommendations(TierLow)[0].Default)
}

func TestAnswer_UnmarshalJSON(t *testing.T) {
	var responses Responses
	body := `{
		"age": "over60",
		"lifestyle": ["smoking", 7, "sedentary"],
		"menopause": 3,
		"ethnicity": {"value": "other"}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &responses))

	assert.Equal(t, []string{"over60"}, responses["age"].values)
	assert.Equal(t, []string{"smoking", "sedentary"}, responses["lifestyle"].values)
	assert.Empty(t, responses["menopause"].values)
	assert.Empty(t, responses["ethnicity"].values)
	assert.Equal(t, 3+4, Score(responses))
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 5)
	assert.Equal(t, "age", qs[0].ID)
	assert.Equal(t, MultiChoice, qs[3].Type)

	qs[0].Options[0].Score = 99
	assert.Equal(t, 0, Questions()[0].Options[0].Score)
}
