package service

import (
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
)

// FeedbackService 서비스 피드백 접수
type FeedbackService interface {
	Create(principalID uint64, req *domain.CreateFeedbackRequest) (*domain.Feedback, error)
}

type feedbackService struct {
	feedbacks repository.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbacks repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbacks: feedbacks}
}

func (s *feedbackService) Create(principalID uint64, req *domain.CreateFeedbackRequest) (*domain.Feedback, error) {
	f := &domain.Feedback{
		UserID:  &principalID,
		Content: req.Content,
	}
	if err := s.feedbacks.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}
