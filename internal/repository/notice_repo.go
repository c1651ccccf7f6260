package repository

import (
	"errors"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"gorm.io/gorm"
)

// NoticeRepository 공지 저장소.
// 검색은 채널 id 목록을 받아 단일 채널 조회와 사용자 범위 조회가
// 같은 질의 경로를 타도록 한다.
type NoticeRepository interface {
	Create(n *domain.Notice) error
	FindByID(id uint64) (*domain.Notice, error)
	ListByChannel(channelID uint64, page, limit int) ([]*domain.Notice, int64, error)
	Recent(channelID uint64, n int) ([]*domain.Notice, error)
	Update(n *domain.Notice) error
	Delete(id uint64) error
	Search(channelIDs []uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, int64, error)
	ListByChannels(channelIDs []uint64, page, limit int) ([]*domain.Notice, int64, error)
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(n *domain.Notice) error {
	return r.db.Create(n).Error
}

func (r *noticeRepository) FindByID(id uint64) (*domain.Notice, error) {
	var notice domain.Notice
	if err := r.db.First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) ListByChannel(channelID uint64, page, limit int) ([]*domain.Notice, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Notice{}).
		Where("channel_id = ?", channelID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notices []*domain.Notice
	err := r.db.Where("channel_id = ?", channelID).
		Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&notices).Error
	return notices, total, err
}

func (r *noticeRepository) Recent(channelID uint64, n int) ([]*domain.Notice, error) {
	var notices []*domain.Notice
	err := r.db.Where("channel_id = ?", channelID).
		Order("id DESC").
		Limit(n).
		Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) Update(n *domain.Notice) error {
	return r.db.Save(n).Error
}

func (r *noticeRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Notice{}, id).Error
}

func (r *noticeRepository) Search(channelIDs []uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, int64, error) {
	if len(channelIDs) == 0 {
		return []*domain.Notice{}, 0, nil
	}
	base := r.db.Model(&domain.Notice{}).Where("notices.channel_id IN ?", channelIDs)
	pattern := "%" + keyword + "%"

	switch searchType {
	case "title":
		base = base.Where("notices.title LIKE ?", pattern)
	case "contents":
		base = base.Where("notices.contents LIKE ?", pattern)
	default: // "all"
		base = base.Where("notices.title LIKE ? OR notices.contents LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notices []*domain.Notice
	err := base.Session(&gorm.Session{}).
		Select("notices.*, channels.name AS channel_name").
		Joins("JOIN channels ON channels.id = notices.channel_id").
		Order("notices.id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&notices).Error
	return notices, total, err
}

func (r *noticeRepository) ListByChannels(channelIDs []uint64, page, limit int) ([]*domain.Notice, int64, error) {
	if len(channelIDs) == 0 {
		return []*domain.Notice{}, 0, nil
	}
	var total int64
	if err := r.db.Model(&domain.Notice{}).
		Where("channel_id IN ?", channelIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notices []*domain.Notice
	err := r.db.Model(&domain.Notice{}).
		Select("notices.*, channels.name AS channel_name").
		Joins("JOIN channels ON channels.id = notices.channel_id").
		Where("notices.channel_id IN ?", channelIDs).
		Order("notices.id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&notices).Error
	return notices, total, err
}
