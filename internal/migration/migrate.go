package migration

import (
	"os"

	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all tables and seeds the admin account if missing.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 skip
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Channel{},
		&domain.UserChannel{},
		&domain.ChannelAwaiter{},
		&domain.Notice{},
		&domain.Event{},
		&domain.Feedback{},
	); err != nil {
		return err
	}

	// 2. Seed - admin 계정이 없을 때만 생성.
	// admin이 관리하는 공개 채널은 신규 가입자에게 자동 구독된다.
	var count int64
	db.Model(&domain.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		return seedAdmin(db)
	}

	return nil
}

func seedAdmin(db *gorm.DB) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &domain.User{
			Username:  "admin",
			Email:     "snuday@wafflestudio.com",
			Password:  string(hashed),
			FirstName: "운영",
			LastName:  "스누데이",
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		channel := &domain.Channel{
			Name:        "스누데이 공지",
			Description: "스누데이 서비스 공지 채널입니다.",
			IsOfficial:  true,
			ManagerID:   admin.ID,
		}
		if err := tx.Create(channel).Error; err != nil {
			return err
		}

		return tx.Create(&domain.UserChannel{
			ChannelID: channel.ID,
			UserID:    admin.ID,
			Color:     domain.RandomColor(),
		}).Error
	})
}
