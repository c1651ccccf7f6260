package repository

import (
	"errors"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"gorm.io/gorm"
)

// ChannelRepository 채널과 구독/대기 관계 저장소.
// 여러 행을 건드리는 상태 전이는 모두 단일 트랜잭션으로 묶는다.
type ChannelRepository interface {
	FindByID(id uint64) (*domain.Channel, error)
	FindByName(name string) (*domain.Channel, error)
	List(page, limit int) ([]*domain.Channel, int64, error)
	Search(searchType, keyword string, page, limit int) ([]*domain.Channel, int64, error)
	Recommend(limit int) ([]*domain.Channel, error)

	CreateWithManager(ch *domain.Channel, color domain.ThemeColor) error
	Update(ch *domain.Channel) error
	UpdateWithManager(ch *domain.Channel, newManagerID uint64, color domain.ThemeColor) error
	Delete(channelID uint64) error

	IsSubscriber(channelID, userID uint64) (bool, error)
	IsAwaiter(channelID, userID uint64) (bool, error)
	AddSubscriber(channelID, userID uint64, color domain.ThemeColor) error
	RemoveSubscriber(channelID, userID uint64) error
	AddAwaiter(channelID, userID uint64) error
	RemoveAwaiter(channelID, userID uint64) error
	PromoteAwaiter(channelID, userID uint64, color domain.ThemeColor) error
	ListAwaiters(channelID uint64) ([]*domain.User, error)

	GetSubscription(channelID, userID uint64) (*domain.UserChannel, error)
	UpdateColor(channelID, userID uint64, color domain.ThemeColor) error

	SubscribedChannelIDs(userID uint64) ([]uint64, error)
	ListSubscribing(userID uint64) ([]*domain.Channel, error)
	ListManaging(userID uint64) ([]*domain.Channel, error)
	ListAwaiting(userID uint64) ([]*domain.Channel, error)
}

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new ChannelRepository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

// withCounts attaches subscriber/awaiter counts as subquery columns
func (r *channelRepository) withCounts(db *gorm.DB) *gorm.DB {
	return db.Model(&domain.Channel{}).
		Select("channels.*," +
			" (SELECT COUNT(*) FROM user_channels uc WHERE uc.channel_id = channels.id) AS subscribers_count," +
			" (SELECT COUNT(*) FROM channel_awaiters ca WHERE ca.channel_id = channels.id) AS awaiters_count").
		Preload("Manager")
}

func (r *channelRepository) FindByID(id uint64) (*domain.Channel, error) {
	var ch domain.Channel
	if err := r.withCounts(r.db).Where("channels.id = ?", id).First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrChannelNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func (r *channelRepository) FindByName(name string) (*domain.Channel, error) {
	var ch domain.Channel
	if err := r.withCounts(r.db).Where("channels.name = ?", name).First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrChannelNotFound
		}
		return nil, err
	}
	return &ch, nil
}

// List 개인 채널을 제외한 전체 채널 목록, id 역순
func (r *channelRepository) List(page, limit int) ([]*domain.Channel, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Channel{}).
		Where("is_personal = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var channels []*domain.Channel
	err := r.withCounts(r.db).
		Where("channels.is_personal = ?", false).
		Order("channels.id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&channels).Error
	return channels, total, err
}

// Search 이름/설명 부분 일치 검색, 개인 채널 제외
func (r *channelRepository) Search(searchType, keyword string, page, limit int) ([]*domain.Channel, int64, error) {
	base := r.db.Model(&domain.Channel{}).Where("is_personal = ?", false)
	pattern := "%" + keyword + "%"

	switch searchType {
	case "name":
		base = base.Where("name LIKE ?", pattern)
	case "description":
		base = base.Where("description LIKE ?", pattern)
	default: // "all"
		base = base.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var channels []*domain.Channel
	err := r.withCounts(base.Session(&gorm.Session{})).
		Order("channels.id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&channels).Error
	return channels, total, err
}

// Recommend 구독자 수 내림차순 상위 채널. 동률은 id 순.
func (r *channelRepository) Recommend(limit int) ([]*domain.Channel, error) {
	var channels []*domain.Channel
	err := r.withCounts(r.db).
		Where("channels.is_private = ? AND channels.is_personal = ?", false, false).
		Order("subscribers_count DESC, channels.id ASC").
		Limit(limit).
		Find(&channels).Error
	return channels, err
}

// CreateWithManager creates the channel and subscribes its manager atomically.
// 비공개 채널이 구독자 없이 만들어지는 일이 없도록 트랜잭션 안에서 확인한다.
func (r *channelRepository) CreateWithManager(ch *domain.Channel, color domain.ThemeColor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ch).Error; err != nil {
			if isDuplicateEntry(err) {
				return common.ErrDuplicateName
			}
			return err
		}

		sub := &domain.UserChannel{
			ChannelID: ch.ID,
			UserID:    ch.ManagerID,
			Color:     color,
		}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.UserChannel{}).
			Where("channel_id = ?", ch.ID).Count(&count).Error; err != nil {
			return err
		}
		if ch.IsPrivate && count == 0 {
			return common.ErrPrivateNoSub
		}
		ch.SubscribersCount = count
		return nil
	})
}

func (r *channelRepository) Update(ch *domain.Channel) error {
	err := r.db.Model(&domain.Channel{}).Where("id = ?", ch.ID).
		Updates(map[string]interface{}{
			"name":        ch.Name,
			"description": ch.Description,
			"is_private":  ch.IsPrivate,
			"is_official": ch.IsOfficial,
		}).Error
	if err != nil && isDuplicateEntry(err) {
		return common.ErrDuplicateName
	}
	return err
}

// UpdateWithManager persists the field changes and the manager reassignment
// in one transaction, and ensures the new manager is a subscriber.
// 도중에 실패하면 필드 변경까지 전부 롤백된다.
func (r *channelRepository) UpdateWithManager(ch *domain.Channel, newManagerID uint64, color domain.ThemeColor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Channel{}).Where("id = ?", ch.ID).
			Updates(map[string]interface{}{
				"name":        ch.Name,
				"description": ch.Description,
				"is_private":  ch.IsPrivate,
				"is_official": ch.IsOfficial,
				"manager_id":  newManagerID,
			}).Error
		if err != nil {
			if isDuplicateEntry(err) {
				return common.ErrDuplicateName
			}
			return err
		}

		sub := &domain.UserChannel{
			ChannelID: ch.ID,
			UserID:    newManagerID,
			Color:     color,
		}
		if err := tx.Create(sub).Error; err != nil && !isDuplicateEntry(err) {
			return err
		}
		ch.ManagerID = newManagerID
		return nil
	})
}

// Delete cascades to notices, events and membership rows in one transaction
func (r *channelRepository) Delete(channelID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", channelID).Delete(&domain.Notice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("channel_id = ?", channelID).Delete(&domain.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("channel_id = ?", channelID).Delete(&domain.UserChannel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("channel_id = ?", channelID).Delete(&domain.ChannelAwaiter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Channel{}, channelID).Error
	})
}

func (r *channelRepository) IsSubscriber(channelID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.UserChannel{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *channelRepository) IsAwaiter(channelID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ChannelAwaiter{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *channelRepository) AddSubscriber(channelID, userID uint64, color domain.ThemeColor) error {
	sub := &domain.UserChannel{ChannelID: channelID, UserID: userID, Color: color}
	if err := r.db.Create(sub).Error; err != nil {
		if isDuplicateEntry(err) {
			return common.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (r *channelRepository) RemoveSubscriber(channelID, userID uint64) error {
	return r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).
		Delete(&domain.UserChannel{}).Error
}

func (r *channelRepository) AddAwaiter(channelID, userID uint64) error {
	awaiter := &domain.ChannelAwaiter{ChannelID: channelID, UserID: userID}
	if err := r.db.Create(awaiter).Error; err != nil {
		if isDuplicateEntry(err) {
			return common.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (r *channelRepository) RemoveAwaiter(channelID, userID uint64) error {
	return r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).
		Delete(&domain.ChannelAwaiter{}).Error
}

// PromoteAwaiter moves a user from awaiters to subscribers atomically.
// 두 상태가 동시에 관측되는 일이 없도록 한 트랜잭션으로 처리한다.
func (r *channelRepository) PromoteAwaiter(channelID, userID uint64, color domain.ThemeColor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("channel_id = ? AND user_id = ?", channelID, userID).
			Delete(&domain.ChannelAwaiter{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNeverRequested
		}

		sub := &domain.UserChannel{ChannelID: channelID, UserID: userID, Color: color}
		if err := tx.Create(sub).Error; err != nil {
			if isDuplicateEntry(err) {
				return common.ErrTargetSubscribed
			}
			return err
		}
		return nil
	})
}

func (r *channelRepository) ListAwaiters(channelID uint64) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Model(&domain.User{}).
		Joins("JOIN channel_awaiters ca ON ca.user_id = users.id").
		Where("ca.channel_id = ?", channelID).
		Order("ca.created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *channelRepository) GetSubscription(channelID, userID uint64) (*domain.UserChannel, error) {
	var sub domain.UserChannel
	err := r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotSubscribed
		}
		return nil, err
	}
	return &sub, nil
}

func (r *channelRepository) UpdateColor(channelID, userID uint64, color domain.ThemeColor) error {
	res := r.db.Model(&domain.UserChannel{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Update("color", color)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotSubscribed
	}
	return nil
}

func (r *channelRepository) SubscribedChannelIDs(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&domain.UserChannel{}).
		Where("user_id = ?", userID).
		Pluck("channel_id", &ids).Error
	return ids, err
}

func (r *channelRepository) ListSubscribing(userID uint64) ([]*domain.Channel, error) {
	var channels []*domain.Channel
	err := r.withCounts(r.db).
		Joins("JOIN user_channels uc_me ON uc_me.channel_id = channels.id").
		Where("uc_me.user_id = ? AND channels.is_personal = ?", userID, false).
		Order("channels.id DESC").
		Find(&channels).Error
	return channels, err
}

func (r *channelRepository) ListManaging(userID uint64) ([]*domain.Channel, error) {
	var channels []*domain.Channel
	err := r.withCounts(r.db).
		Where("channels.manager_id = ? AND channels.is_personal = ?", userID, false).
		Order("channels.id DESC").
		Find(&channels).Error
	return channels, err
}

func (r *channelRepository) ListAwaiting(userID uint64) ([]*domain.Channel, error) {
	var channels []*domain.Channel
	err := r.withCounts(r.db).
		Joins("JOIN channel_awaiters ca_me ON ca_me.channel_id = channels.id").
		Where("ca_me.user_id = ?", userID).
		Order("channels.id DESC").
		Find(&channels).Error
	return channels, err
}
