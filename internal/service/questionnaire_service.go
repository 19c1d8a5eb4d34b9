package service

import (
	"context"
	"log"

	"readiness/internal/model"
	"readiness/internal/repository"
)

// QuestionnaireService serves the fixed assessment content, preferring the
// seeded Mongo document and falling back to the built-in catalog.
type QuestionnaireService struct {
	repo repository.QuestionnaireRepo
}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService(repo repository.QuestionnaireRepo) *QuestionnaireService {
	return &QuestionnaireService{repo: repo}
}

// Get returns the active questionnaire
func (s *QuestionnaireService) Get(ctx context.Context) (*model.Questionnaire, error) {
	q, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if q == nil {
		log.Println("[Questionnaire] no seeded document, serving built-in catalog")
		return model.DefaultQuestionnaire(), nil
	}
	return q, nil
}
