package service

import (
	"context"
	"errors"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
	"github.com/wafflestudio/SNUDAY-server/pkg/cache"
	"github.com/wafflestudio/SNUDAY-server/pkg/logger"
)

const recommendSize = 5

// ChannelService 채널 생성/수정/삭제와 구독 상태 전이를 담당한다.
type ChannelService interface {
	Create(principalID uint64, req *domain.CreateChannelRequest) (*domain.ChannelResponse, error)
	Get(channelID, principalID uint64) (*domain.ChannelResponse, error)
	List(page, limit int) ([]*domain.ChannelResponse, *common.Meta, error)
	Update(channelID, principalID uint64, req *domain.UpdateChannelRequest) (*domain.ChannelResponse, error)
	Delete(ctx context.Context, channelID, principalID uint64) error

	Subscribe(channelID, principalID uint64) error
	Unsubscribe(channelID, principalID uint64) error
	ListAwaiters(channelID, principalID uint64) ([]*domain.UserResponse, error)
	Allow(channelID, principalID, targetID uint64) error
	Disallow(channelID, principalID, targetID uint64) error

	Recommend(ctx context.Context) ([]*domain.ChannelResponse, error)
	Search(searchType, keyword string, page, limit int) ([]*domain.ChannelResponse, *common.Meta, error)

	GetColor(channelID, principalID uint64) (*domain.ColorResponse, error)
	SetColor(channelID, principalID uint64, color string) (*domain.ColorResponse, error)

	ListSubscribing(principalID uint64) ([]*domain.ChannelResponse, error)
	ListManaging(principalID uint64) ([]*domain.ChannelResponse, error)
	ListAwaiting(principalID uint64) ([]*domain.ChannelResponse, error)
}

type channelService struct {
	channels repository.ChannelRepository
	users    repository.UserRepository
	policy   *VisibilityPolicy
	cache    cache.Service
}

// NewChannelService creates a new ChannelService. cache may be nil.
func NewChannelService(
	channels repository.ChannelRepository,
	users repository.UserRepository,
	policy *VisibilityPolicy,
	cacheService cache.Service,
) ChannelService {
	return &channelService{
		channels: channels,
		users:    users,
		policy:   policy,
		cache:    cacheService,
	}
}

// Create 채널 생성. 매니저 후보가 주어지면 해당 사용자, 아니면 생성자가
// 매니저가 되며 매니저는 곧바로 구독자로 추가된다.
func (s *channelService) Create(principalID uint64, req *domain.CreateChannelRequest) (*domain.ChannelResponse, error) {
	if _, err := s.channels.FindByName(req.Name); err == nil {
		return nil, common.ErrDuplicateName
	} else if !errors.Is(err, common.ErrChannelNotFound) {
		return nil, err
	}

	managerID := principalID
	if req.ManagerUsername != "" {
		manager, err := s.users.FindByUsername(req.ManagerUsername)
		if err != nil {
			if errors.Is(err, common.ErrUserNotFound) {
				return nil, common.ErrManagerNotFound
			}
			return nil, err
		}
		managerID = manager.ID
	}

	ch := &domain.Channel{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		IsOfficial:  req.IsOfficial,
		IsPersonal:  req.IsPersonal,
		ManagerID:   managerID,
	}
	if err := s.channels.CreateWithManager(ch, domain.RandomColor()); err != nil {
		return nil, err
	}

	created, err := s.channels.FindByID(ch.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

// Get 채널 조회. 비공개 채널은 구독자/매니저가 아니면 400.
func (s *channelService) Get(channelID, principalID uint64) (*domain.ChannelResponse, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}

	if ch.IsPrivate {
		ok, err := s.policy.CanRead(ch, principalID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, common.ErrPrivateChannel
		}
	}
	return ch.ToResponse(), nil
}

func (s *channelService) List(page, limit int) ([]*domain.ChannelResponse, *common.Meta, error) {
	page, limit = normalizePagination(page, limit)

	channels, total, err := s.channels.List(page, limit)
	if err != nil {
		return nil, nil, err
	}
	return toChannelResponses(channels), &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// Update 채널 부분 수정. 이름이 바뀔 때만 중복을 다시 확인한다.
// 매니저 교체 시 이전 매니저의 권한은 회수되고 새 매니저는 구독자로 추가된다.
// 매니저 없는 채널은 허용하지 않는다.
func (s *channelService) Update(channelID, principalID uint64, req *domain.UpdateChannelRequest) (*domain.ChannelResponse, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanModifyChannel(ch, principalID) {
		return nil, common.ErrForbidden
	}

	if req.Name != nil && *req.Name != ch.Name {
		if _, err := s.channels.FindByName(*req.Name); err == nil {
			return nil, common.ErrDuplicateName
		} else if !errors.Is(err, common.ErrChannelNotFound) {
			return nil, err
		}
		ch.Name = *req.Name
	}
	if req.Description != nil {
		ch.Description = *req.Description
	}
	if req.IsPrivate != nil {
		ch.IsPrivate = *req.IsPrivate
	}
	if req.IsOfficial != nil {
		ch.IsOfficial = *req.IsOfficial
	}

	// 매니저 검증은 저장 전에 끝낸다. 검증 실패 시 아무것도 쓰지 않는다.
	var newManagerID uint64
	if req.ManagerUsername != nil {
		if *req.ManagerUsername == "" {
			return nil, common.ErrManagerRequired
		}
		newManager, err := s.users.FindByUsername(*req.ManagerUsername)
		if err != nil {
			if errors.Is(err, common.ErrUserNotFound) {
				return nil, common.ErrManagerNotFound
			}
			return nil, err
		}
		if newManager.ID != ch.ManagerID {
			newManagerID = newManager.ID
		}
	}

	if newManagerID != 0 {
		if err := s.channels.UpdateWithManager(ch, newManagerID, domain.RandomColor()); err != nil {
			return nil, err
		}
	} else if err := s.channels.Update(ch); err != nil {
		return nil, err
	}

	updated, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *channelService) Delete(ctx context.Context, channelID, principalID uint64) error {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return err
	}
	if !s.policy.CanModifyChannel(ch, principalID) {
		return common.ErrForbidden
	}

	if err := s.channels.Delete(channelID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateRecommend(ctx); err != nil {
			logger.Warn("recommend cache invalidation failed: %v", err)
		}
	}
	return nil
}

// Subscribe 구독. 비공개 채널이면 대기자 명단에 올라간다.
func (s *channelService) Subscribe(channelID, principalID uint64) error {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return err
	}

	subscribed, err := s.channels.IsSubscriber(channelID, principalID)
	if err != nil {
		return err
	}
	if subscribed {
		return common.ErrAlreadySubscribed
	}

	if ch.IsPrivate {
		return s.channels.AddAwaiter(channelID, principalID)
	}
	return s.channels.AddSubscriber(channelID, principalID, domain.RandomColor())
}

// Unsubscribe 구독 취소. 대기 중이면 신청 철회로 동작한다.
func (s *channelService) Unsubscribe(channelID, principalID uint64) error {
	if _, err := s.channels.FindByID(channelID); err != nil {
		return err
	}

	subscribed, err := s.channels.IsSubscriber(channelID, principalID)
	if err != nil {
		return err
	}
	awaiting, err := s.channels.IsAwaiter(channelID, principalID)
	if err != nil {
		return err
	}

	if !subscribed && !awaiting {
		return common.ErrNotSubscribed
	}
	if awaiting {
		return s.channels.RemoveAwaiter(channelID, principalID)
	}
	return s.channels.RemoveSubscriber(channelID, principalID)
}

func (s *channelService) ListAwaiters(channelID, principalID uint64) ([]*domain.UserResponse, error) {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanModifyChannel(ch, principalID) {
		return nil, common.ErrForbidden
	}

	awaiters, err := s.channels.ListAwaiters(channelID)
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.UserResponse, len(awaiters))
	for i, u := range awaiters {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// Allow 매니저가 대기자의 구독을 수락한다.
func (s *channelService) Allow(channelID, principalID, targetID uint64) error {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return err
	}
	if !s.policy.CanModifyChannel(ch, principalID) {
		return common.ErrForbidden
	}
	if _, err := s.users.FindByID(targetID); err != nil {
		return err
	}

	subscribed, err := s.channels.IsSubscriber(channelID, targetID)
	if err != nil {
		return err
	}
	if subscribed {
		return common.ErrTargetSubscribed
	}

	return s.channels.PromoteAwaiter(channelID, targetID, domain.RandomColor())
}

// Disallow 매니저가 대기자의 구독을 거절한다. 구독자 명단은 건드리지 않는다.
func (s *channelService) Disallow(channelID, principalID, targetID uint64) error {
	ch, err := s.channels.FindByID(channelID)
	if err != nil {
		return err
	}
	if !s.policy.CanModifyChannel(ch, principalID) {
		return common.ErrForbidden
	}
	if _, err := s.users.FindByID(targetID); err != nil {
		return err
	}

	subscribed, err := s.channels.IsSubscriber(channelID, targetID)
	if err != nil {
		return err
	}
	if subscribed {
		return common.ErrTargetSubscribed
	}

	awaiting, err := s.channels.IsAwaiter(channelID, targetID)
	if err != nil {
		return err
	}
	if !awaiting {
		return common.ErrNeverRequested
	}

	return s.channels.RemoveAwaiter(channelID, targetID)
}

// Recommend 구독자 수 상위 5개 공개 채널. 짧은 TTL로 캐시한다.
func (s *channelService) Recommend(ctx context.Context) ([]*domain.ChannelResponse, error) {
	if s.cache != nil {
		var cached []*domain.ChannelResponse
		if err := s.cache.GetRecommend(ctx, &cached); err == nil {
			return cached, nil
		}
	}

	channels, err := s.channels.Recommend(recommendSize)
	if err != nil {
		return nil, err
	}
	responses := toChannelResponses(channels)

	if s.cache != nil {
		if err := s.cache.SetRecommend(ctx, responses); err != nil {
			logger.Warn("recommend cache store failed: %v", err)
		}
	}
	return responses, nil
}

func (s *channelService) Search(searchType, keyword string, page, limit int) ([]*domain.ChannelResponse, *common.Meta, error) {
	if len([]rune(keyword)) < 2 {
		return nil, nil, common.ErrQueryTooShort
	}
	page, limit = normalizePagination(page, limit)

	channels, total, err := s.channels.Search(searchType, keyword, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return toChannelResponses(channels), &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// GetColor 구독 테마 색상 조회. 구독자가 아니면 팔레트에서 무작위 색을 돌려준다.
func (s *channelService) GetColor(channelID, principalID uint64) (*domain.ColorResponse, error) {
	if _, err := s.channels.FindByID(channelID); err != nil {
		return nil, err
	}

	sub, err := s.channels.GetSubscription(channelID, principalID)
	if err != nil {
		if errors.Is(err, common.ErrNotSubscribed) {
			return &domain.ColorResponse{Color: domain.RandomColor()}, nil
		}
		return nil, err
	}
	return &domain.ColorResponse{Color: sub.Color}, nil
}

// SetColor 구독 테마 색상 변경. 팔레트 밖의 색과 비구독자는 400.
func (s *channelService) SetColor(channelID, principalID uint64, color string) (*domain.ColorResponse, error) {
	if _, err := s.channels.FindByID(channelID); err != nil {
		return nil, err
	}

	themeColor := domain.ThemeColor(color)
	if !themeColor.IsValid() {
		return nil, common.ErrInvalidColor
	}

	if err := s.channels.UpdateColor(channelID, principalID, themeColor); err != nil {
		return nil, err
	}
	return &domain.ColorResponse{Color: themeColor}, nil
}

func (s *channelService) ListSubscribing(principalID uint64) ([]*domain.ChannelResponse, error) {
	channels, err := s.channels.ListSubscribing(principalID)
	if err != nil {
		return nil, err
	}
	return toChannelResponses(channels), nil
}

func (s *channelService) ListManaging(principalID uint64) ([]*domain.ChannelResponse, error) {
	channels, err := s.channels.ListManaging(principalID)
	if err != nil {
		return nil, err
	}

	// 매니저 화면에는 대기자 수를 함께 내려준다
	responses := make([]*domain.ChannelResponse, len(channels))
	for i, ch := range channels {
		responses[i] = ch.ToAwaiterResponse()
	}
	return responses, nil
}

func (s *channelService) ListAwaiting(principalID uint64) ([]*domain.ChannelResponse, error) {
	channels, err := s.channels.ListAwaiting(principalID)
	if err != nil {
		return nil, err
	}
	return toChannelResponses(channels), nil
}

func toChannelResponses(channels []*domain.Channel) []*domain.ChannelResponse {
	responses := make([]*domain.ChannelResponse, len(channels))
	for i, ch := range channels {
		responses[i] = ch.ToResponse()
	}
	return responses
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
