package repository

import (
	"errors"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"gorm.io/gorm"
)

// EventRepository 일정 저장소
type EventRepository interface {
	Create(e *domain.Event) error
	FindByID(id uint64) (*domain.Event, error)
	Update(e *domain.Event) error
	Delete(id uint64) error
	// ListInRange returns events whose [start_date, due_date] interval
	// overlaps [from, to]. 날짜는 "2006-01-02" 문자열 비교로 처리한다.
	ListInRange(channelIDs []uint64, from, to string) ([]*domain.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(e *domain.Event) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) FindByID(id uint64) (*domain.Event, error) {
	var event domain.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(e *domain.Event) error {
	return r.db.Save(e).Error
}

func (r *eventRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Event{}, id).Error
}

func (r *eventRepository) ListInRange(channelIDs []uint64, from, to string) ([]*domain.Event, error) {
	if len(channelIDs) == 0 {
		return []*domain.Event{}, nil
	}

	var events []*domain.Event
	err := r.db.Model(&domain.Event{}).
		Select("events.*, channels.name AS channel_name").
		Joins("JOIN channels ON channels.id = events.channel_id").
		Where("events.channel_id IN ?", channelIDs).
		Where("events.start_date <= ? AND events.due_date >= ?", to, from).
		Order("events.start_date ASC, events.id ASC").
		Find(&events).Error
	return events, err
}
