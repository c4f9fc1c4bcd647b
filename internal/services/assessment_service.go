package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bonehealth-backend/internal/assessment"
	"bonehealth-backend/internal/i18n"
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// AssessmentResult is a scored submission with recommendations rendered in
// the requested language.
type AssessmentResult struct {
	RiskScore       int      `json:"riskScore" example:"14"`
	RiskLevel       string   `json:"riskLevel" example:"high"`
	MaxScore        int      `json:"maxScore" example:"30"`
	Recommendations []string `json:"recommendations"`
}

type LocalizedOption struct {
	Value string `json:"value" example:"over60"`
	Label string `json:"label" example:"Over 60"`
	Score int    `json:"score" example:"3"`
}

type LocalizedQuestion struct {
	ID       string            `json:"id" example:"age"`
	Type     string            `json:"type" example:"single-choice"`
	Question string            `json:"question" example:"What is your age?"`
	Options  []LocalizedOption `json:"options"`
}

// AssessmentSubmission is one questionnaire submission. An empty SessionID
// is replaced with a generated one. Responses is the client's JSON object,
// stored as sent.
type AssessmentSubmission struct {
	SessionID string
	Language  string
	Responses json.RawMessage
}

type AssessmentService interface {
	Evaluate(lang string, responses assessment.Responses) AssessmentResult
	Submit(ctx context.Context, sub AssessmentSubmission) (*models.RiskAssessment, error)
	Latest(ctx context.Context, sessionID string) (*models.RiskAssessment, error)
	Questions(lang string) []LocalizedQuestion
}

type assessmentService struct {
	repo     repository.AssessmentRepository
	resolver *i18n.Resolver
	logger   *logrus.Logger
}

func NewAssessmentService(repo repository.AssessmentRepository, resolver *i18n.Resolver, logger *logrus.Logger) AssessmentService {
	return &assessmentService{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

func (s *assessmentService) text(lang string, t assessment.Text) string {
	return s.resolver.Resolve(lang, t.Key, t.Default)
}

func (s *assessmentService) Evaluate(lang string, responses assessment.Responses) AssessmentResult {
	res := assessment.Evaluate(responses)

	recs := make([]string, 0, len(res.Recommendations))
	for _, r := range res.Recommendations {
		recs = append(recs, s.text(lang, r))
	}
	return AssessmentResult{
		RiskScore:       res.Score,
		RiskLevel:       res.Tier,
		MaxScore:        res.MaxScore,
		Recommendations: recs,
	}
}

func (s *assessmentService) Submit(ctx context.Context, sub AssessmentSubmission) (*models.RiskAssessment, error) {
	lang := sub.Language
	if !models.IsSupportedLanguage(lang) {
		lang = s.resolver.DefaultLanguage()
	}
	sessionID := strings.TrimSpace(sub.SessionID)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	responsesJSON, responses, err := decodeResponses(sub.Responses)
	if err != nil {
		return nil, err
	}

	result := s.Evaluate(lang, responses)

	recsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendations: %w", err)
	}

	record := &models.RiskAssessment{
		SessionID:       sessionID,
		Language:        lang,
		Responses:       responsesJSON,
		RiskScore:       result.RiskScore,
		RiskLevel:       result.RiskLevel,
		Recommendations: datatypes.JSON(recsJSON),
	}
	if err := s.repo.CreateAssessment(ctx, record); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"sessionId": sessionID,
		"riskScore": result.RiskScore,
		"riskLevel": result.RiskLevel,
	}).Info("Risk assessment recorded")
	return record, nil
}

// decodeResponses returns the compacted mapping for storage alongside its
// parsed form. Absent or null responses become an empty object.
func decodeResponses(raw json.RawMessage) (datatypes.JSON, assessment.Responses, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return datatypes.JSON("{}"), assessment.Responses{}, nil
	}

	var responses assessment.Responses
	if err := json.Unmarshal(trimmed, &responses); err != nil {
		return nil, nil, &repository.ValidationError{Field: "responses", Message: "must be an object mapping question ids to answers"}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, nil, &repository.ValidationError{Field: "responses", Message: err.Error()}
	}
	return datatypes.JSON(buf.Bytes()), responses, nil
}

func (s *assessmentService) Latest(ctx context.Context, sessionID string) (*models.RiskAssessment, error) {
	record, err := s.repo.FindLatestBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (s *assessmentService) Questions(lang string) []LocalizedQuestion {
	questions := assessment.Questions()
	out := make([]LocalizedQuestion, 0, len(questions))
	for _, q := range questions {
		lq := LocalizedQuestion{
			ID:       q.ID,
			Type:     q.Type,
			Question: s.text(lang, q.Question),
			Options:  make([]LocalizedOption, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			lq.Options = append(lq.Options, LocalizedOption{
				Value: o.Value,
				Label: s.text(lang, o.Label),
				Score: o.Score,
			})
		}
		out = append(out, lq)
	}
	return out
}
