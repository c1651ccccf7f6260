package service

import (
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
)

const recentNoticeCount = 3

// NoticeService 채널 공지 CRUD와 검색
type NoticeService interface {
	Create(channelID, principalID uint64, req *domain.CreateNoticeRequest) (*domain.Notice, error)
	List(channelID, principalID uint64, recent bool, page, limit int) ([]*domain.Notice, *common.Meta, error)
	Get(channelID, noticeID, principalID uint64) (*domain.Notice, error)
	Update(channelID, noticeID, principalID uint64, req *domain.UpdateNoticeRequest) (*domain.Notice, error)
	Delete(channelID, noticeID, principalID uint64) error
	Search(channelID, principalID uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, *common.Meta, error)
	ListMine(principalID uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, *common.Meta, error)
}

type noticeService struct {
	notices  repository.NoticeRepository
	channels repository.ChannelRepository
	policy   *VisibilityPolicy
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(
	notices repository.NoticeRepository,
	channels repository.ChannelRepository,
	policy *VisibilityPolicy,
) NoticeService {
	return &noticeService{notices: notices, channels: channels, policy: policy}
}

// requireReadableChannel 채널 존재 + 열람 권한 확인
func (s *noticeService) requireReadableChannel(channelID, principalID uint64) (*domain.Channel, error) {
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
	return ch, nil
}

// Create 공지 작성. 매니저만 가능.
func (s *noticeService) Create(channelID, principalID uint64, req *domain.CreateNoticeRequest) (*domain.Notice, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanWriteContent(ch, principalID) {
		return nil, common.ErrForbidden
	}

	writerID := principalID
	notice := &domain.Notice{
		Title:     req.Title,
		Contents:  req.Contents,
		ChannelID: channelID,
		WriterID:  &writerID,
	}
	if err := s.notices.Create(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// List 공지 목록, 최신순. recent가 켜지면 페이지네이션 없이 최근 3건.
func (s *noticeService) List(channelID, principalID uint64, recent bool, page, limit int) ([]*domain.Notice, *common.Meta, error) {
	if _, err := s.requireReadableChannel(channelID, principalID); err != nil {
		return nil, nil, err
	}

	if recent {
		notices, err := s.notices.Recent(channelID, recentNoticeCount)
		if err != nil {
			return nil, nil, err
		}
		return notices, nil, nil
	}

	page, limit = normalizePagination(page, limit)
	notices, total, err := s.notices.ListByChannel(channelID, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return notices, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

func (s *noticeService) Get(channelID, noticeID, principalID uint64) (*domain.Notice, error) {
	if _, err := s.requireReadableChannel(channelID, principalID); err != nil {
		return nil, err
	}

	notice, err := s.notices.FindByID(noticeID)
	if err != nil {
		return nil, err
	}
	if notice.ChannelID != channelID {
		return nil, common.ErrNoticeNotFound
	}
	return notice, nil
}

func (s *noticeService) Update(channelID, noticeID, principalID uint64, req *domain.UpdateNoticeRequest) (*domain.Notice, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanWriteContent(ch, principalID) {
		return nil, common.ErrForbidden
	}

	notice, err := s.notices.FindByID(noticeID)
	if err != nil {
		return nil, err
	}
	if notice.ChannelID != channelID {
		return nil, common.ErrNoticeNotFound
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Contents != nil {
		notice.Contents = *req.Contents
	}
	if err := s.notices.Update(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *noticeService) Delete(channelID, noticeID, principalID uint64) error {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return err
	}
	if !s.policy.CanWriteContent(ch, principalID) {
		return common.ErrForbidden
	}

	notice, err := s.notices.FindByID(noticeID)
	if err != nil {
		return err
	}
	if notice.ChannelID != channelID {
		return common.ErrNoticeNotFound
	}
	return s.notices.Delete(noticeID)
}

// Search 단일 채널 범위 공지 검색
func (s *noticeService) Search(channelID, principalID uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, *common.Meta, error) {
	if len([]rune(keyword)) < 2 {
		return nil, nil, common.ErrQueryTooShort
	}
	if _, err := s.requireReadableChannel(channelID, principalID); err != nil {
		return nil, nil, err
	}

	page, limit = normalizePagination(page, limit)
	notices, total, err := s.notices.Search([]uint64{channelID}, searchType, keyword, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return notices, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// ListMine 구독 중인 모든 채널의 공지. keyword가 있으면 같은 검색 경로를 탄다.
func (s *noticeService) ListMine(principalID uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, *common.Meta, error) {
	channelIDs, err := s.channels.SubscribedChannelIDs(principalID)
	if err != nil {
		return nil, nil, err
	}
	page, limit = normalizePagination(page, limit)

	if keyword != "" {
		if len([]rune(keyword)) < 2 {
			return nil, nil, common.ErrQueryTooShort
		}
		notices, total, err := s.notices.Search(channelIDs, searchType, keyword, page, limit)
		if err != nil {
			return nil, nil, err
		}
		return notices, &common.Meta{Page: page, Limit: limit, Total: total}, nil
	}

	notices, total, err := s.notices.ListByChannels(channelIDs, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return notices, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}
