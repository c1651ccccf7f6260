package repository

import (
	"errors"
	"fmt"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"gorm.io/gorm"
)

// UserRepository 사용자 저장소
type UserRepository interface {
	FindByID(id uint64) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	SearchByUsername(keyword string, limit int) ([]*domain.User, error)
	Register(user *domain.User, personalChannelName string) (*domain.Channel, error)
	Update(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint64) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SearchByUsername(keyword string, limit int) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.
		Where("username LIKE ?", "%"+keyword+"%").
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// Register creates the user, their personal channel and the initial
// subscription in one transaction. admin이 관리하는 채널이 있으면
// 신규 사용자를 자동으로 구독시킨다.
func (r *userRepository) Register(user *domain.User, personalChannelName string) (*domain.Channel, error) {
	var personal *domain.Channel

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isDuplicateEntry(err) {
				return common.ErrDuplicateUsername
			}
			return err
		}

		personal = &domain.Channel{
			Name:       personalChannelName,
			IsPrivate:  true,
			IsPersonal: true,
			ManagerID:  user.ID,
		}
		if err := tx.Create(personal).Error; err != nil {
			if isDuplicateEntry(err) {
				return common.ErrDuplicateName
			}
			return err
		}

		sub := &domain.UserChannel{
			ChannelID: personal.ID,
			UserID:    user.ID,
			Color:     domain.RandomColor(),
		}
		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("subscribe personal channel: %w", err)
		}

		// admin 관리 채널 자동 구독
		var admin domain.User
		if err := tx.Where("username = ?", "admin").First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var managed []domain.Channel
		if err := tx.Where("manager_id = ? AND is_personal = ?", admin.ID, false).
			Find(&managed).Error; err != nil {
			return err
		}
		for _, ch := range managed {
			auto := &domain.UserChannel{
				ChannelID: ch.ID,
				UserID:    user.ID,
				Color:     domain.RandomColor(),
			}
			if err := tx.Create(auto).Error; err != nil && !isDuplicateEntry(err) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return personal, nil
}

func (r *userRepository) Update(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return common.ErrDuplicateEmail
		}
		return err
	}
	return nil
}
