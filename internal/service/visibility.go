package service

import (
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
)

// VisibilityPolicy decides read/write access for channel-scoped content.
// 대기자(awaiter)는 승인 전까지 아무 열람 권한도 갖지 않는다.
type VisibilityPolicy struct {
	channels repository.ChannelRepository
}

// NewVisibilityPolicy creates a new VisibilityPolicy
func NewVisibilityPolicy(channels repository.ChannelRepository) *VisibilityPolicy {
	return &VisibilityPolicy{channels: channels}
}

// CanRead reports whether the user may read content scoped to the channel.
// 공개 채널은 누구나, 비공개 채널은 구독자와 매니저만.
func (p *VisibilityPolicy) CanRead(ch *domain.Channel, userID uint64) (bool, error) {
	if !ch.IsPrivate {
		return true, nil
	}
	if ch.ManagerID == userID {
		return true, nil
	}
	return p.channels.IsSubscriber(ch.ID, userID)
}

// CanWriteContent reports whether the user may create/edit/delete notices and
// events in the channel. 구독자라도 매니저가 아니면 쓸 수 없다.
func (p *VisibilityPolicy) CanWriteContent(ch *domain.Channel, userID uint64) bool {
	return ch.ManagerID == userID
}

// CanModifyChannel reports whether the user may delete/update the channel or
// manage its awaiters.
func (p *VisibilityPolicy) CanModifyChannel(ch *domain.Channel, userID uint64) bool {
	return ch.ManagerID == userID
}
