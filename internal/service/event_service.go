package service

import (
	"time"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
)

// EventService 채널 일정 CRUD와 날짜/월 필터 조회
type EventService interface {
	Create(channelID, principalID uint64, req *domain.CreateEventRequest) (*domain.Event, error)
	List(channelID, principalID uint64, date, month string) ([]*domain.Event, error)
	Get(channelID, eventID, principalID uint64) (*domain.Event, error)
	Update(channelID, eventID, principalID uint64, req *domain.UpdateEventRequest) (*domain.Event, error)
	Delete(channelID, eventID, principalID uint64) error
	ListMine(principalID uint64, date, month string) ([]*domain.Event, error)
}

type eventService struct {
	events   repository.EventRepository
	channels repository.ChannelRepository
	policy   *VisibilityPolicy
	now      func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(
	events repository.EventRepository,
	channels repository.ChannelRepository,
	policy *VisibilityPolicy,
) EventService {
	return &eventService{events: events, channels: channels, policy: policy, now: time.Now}
}

// validateInterval 일정 구간 검증. has_time이면 시각까지 포함해 비교한다.
// 시작과 종료가 같은 것은 허용한다.
func validateInterval(hasTime bool, startDate, dueDate string, startTime, dueTime *string) error {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return common.ErrInvalidInput
	}
	due, err := time.Parse(time.DateOnly, dueDate)
	if err != nil {
		return common.ErrInvalidInput
	}
	if start.After(due) {
		return common.ErrInvalidInterval
	}

	if !hasTime {
		return nil
	}
	if startTime == nil || dueTime == nil {
		return common.ErrTimeRequired
	}
	st, err := time.Parse(time.TimeOnly, *startTime)
	if err != nil {
		return common.ErrInvalidInput
	}
	dt, err := time.Parse(time.TimeOnly, *dueTime)
	if err != nil {
		return common.ErrInvalidInput
	}
	if start.Equal(due) && st.After(dt) {
		return common.ErrInvalidInterval
	}
	return nil
}

// resolveRange date/month 파라미터를 [from, to] 날짜 구간으로 바꾼다.
// 둘 다 없으면 현재 달. month는 정확한 달력 경계를 쓴다.
func (s *eventService) resolveRange(date, month string) (string, string, error) {
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return "", "", common.ErrInvalidInput
		}
		return date, date, nil
	}

	var first time.Time
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return "", "", common.ErrInvalidInput
		}
		first = parsed
	} else {
		now := s.now()
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	last := first.AddDate(0, 1, -1)
	return first.Format(time.DateOnly), last.Format(time.DateOnly), nil
}

// Create 일정 생성. 매니저만 가능.
func (s *eventService) Create(channelID, principalID uint64, req *domain.CreateEventRequest) (*domain.Event, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanWriteContent(ch, principalID) {
		return nil, common.ErrForbidden
	}

	if err := validateInterval(req.HasTime, req.StartDate, req.DueDate, req.StartTime, req.DueTime); err != nil {
		return nil, err
	}

	writerID := principalID
	event := &domain.Event{
		Title:     req.Title,
		Memo:      req.Memo,
		ChannelID: channelID,
		WriterID:  &writerID,
		HasTime:   req.HasTime,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
	}
	if req.HasTime {
		event.StartTime = req.StartTime
		event.DueTime = req.DueTime
	}
	if err := s.events.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// List 채널 일정 조회. date가 있으면 그 날을 포함하는 일정,
// month(또는 기본값인 현재 달)가 있으면 그 달과 겹치는 일정.
func (s *eventService) List(channelID, principalID uint64, date, month string) ([]*domain.Event, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	ok, err := s.policy.CanRead(ch, principalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrReadForbidden
	}

	from, to, err := s.resolveRange(date, month)
	if err != nil {
		return nil, err
	}
	return s.events.ListInRange([]uint64{channelID}, from, to)
}

func (s *eventService) Get(channelID, eventID, principalID uint64) (*domain.Event, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	ok, err := s.policy.CanRead(ch, principalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrReadForbidden
	}

	event, err := s.events.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.ChannelID != channelID {
		return nil, common.ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) Update(channelID, eventID, principalID uint64, req *domain.UpdateEventRequest) (*domain.Event, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanWriteContent(ch, principalID) {
		return nil, common.ErrForbidden
	}

	event, err := s.events.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.ChannelID != channelID {
		return nil, common.ErrEventNotFound
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Memo != nil {
		event.Memo = *req.Memo
	}
	if req.HasTime != nil {
		event.HasTime = *req.HasTime
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		event.DueDate = *req.DueDate
	}
	if req.StartTime != nil {
		event.StartTime = req.StartTime
	}
	if req.DueTime != nil {
		event.DueTime = req.DueTime
	}
	if !event.HasTime {
		event.StartTime = nil
		event.DueTime = nil
	}

	if err := validateInterval(event.HasTime, event.StartDate, event.DueDate, event.StartTime, event.DueTime); err != nil {
		return nil, err
	}

	if err := s.events.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(channelID, eventID, principalID uint64) error {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return err
	}
	if !s.policy.CanWriteContent(ch, principalID) {
		return common.ErrForbidden
	}

	event, err := s.events.FindByID(eventID)
	if err != nil {
		return err
	}
	if event.ChannelID != channelID {
		return common.ErrEventNotFound
	}
	return s.events.Delete(eventID)
}

// ListMine 구독 중인 모든 채널의 일정
func (s *eventService) ListMine(principalID uint64, date, month string) ([]*domain.Event, error) {
	channelIDs, err := s.channels.SubscribedChannelIDs(principalID)
	if err != nil {
		return nil, err
	}

	from, to, err := s.resolveRange(date, month)
	if err != nil {
		return nil, err
	}
	return s.events.ListInRange(channelIDs, from, to)
}
