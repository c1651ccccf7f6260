package repository

import (
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"gorm.io/gorm"
)

// FeedbackRepository 피드백 저장소
type FeedbackRepository interface {
	Create(f *domain.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(f *domain.Feedback) error {
	return r.db.Create(f).Error
}
