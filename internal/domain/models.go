package domain

import (
	"time"
)

// User 사용자 계정
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(50);uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(254);uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	FirstName string    `gorm:"column:first_name;type:varchar(50)" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(50)" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Channel 채널. 매니저는 단일 사용자 (ForeignKey).
type Channel struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsPrivate   bool      `gorm:"column:is_private;default:false" json:"is_private"`
	IsOfficial  bool      `gorm:"column:is_official;default:false" json:"is_official"`
	IsPersonal  bool      `gorm:"column:is_personal;default:false" json:"is_personal"`
	ManagerID   uint64    `gorm:"column:manager_id;index" json:"-"`
	Manager     *User     `gorm:"foreignKey:ManagerID" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// 조회 시에만 서브쿼리로 채워짐
	SubscribersCount int64 `gorm:"column:subscribers_count;->;-:migration" json:"-"`
	AwaitersCount    int64 `gorm:"column:awaiters_count;->;-:migration" json:"-"`
}

func (Channel) TableName() string { return "channels" }

// UserChannel 구독 관계. (channel, user) 유니크 제약이 중복 구독을 막는다.
type UserChannel struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ChannelID uint64     `gorm:"column:channel_id;uniqueIndex:idx_subscription" json:"channel_id"`
	UserID    uint64     `gorm:"column:user_id;uniqueIndex:idx_subscription" json:"user_id"`
	Color     ThemeColor `gorm:"column:color;type:varchar(20)" json:"color"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserChannel) TableName() string { return "user_channels" }

// ChannelAwaiter 비공개 채널 구독 신청 대기 관계
type ChannelAwaiter struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ChannelID uint64    `gorm:"column:channel_id;uniqueIndex:idx_awaiter" json:"channel_id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:idx_awaiter" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChannelAwaiter) TableName() string { return "channel_awaiters" }

// Notice 채널 공지
type Notice struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(100)" json:"title"`
	Contents  string    `gorm:"column:contents;type:text" json:"contents"`
	ChannelID uint64    `gorm:"column:channel_id;index" json:"channel"`
	WriterID  *uint64   `gorm:"column:writer_id" json:"writer"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// 사용자 범위 목록 조회 시에만 join으로 채워짐
	ChannelName string `gorm:"column:channel_name;->;-:migration" json:"channel_name,omitempty"`
}

func (Notice) TableName() string { return "notices" }

// Event 채널 일정.
// 날짜는 "2006-01-02", 시각은 "15:04:05" 문자열로 저장한다.
// 두 형식 모두 사전순 비교가 시간순 비교와 일치하므로 범위 질의에 그대로 쓴다.
type Event struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(100)" json:"title"`
	Memo      string    `gorm:"column:memo;type:text" json:"memo"`
	ChannelID uint64    `gorm:"column:channel_id;index" json:"channel"`
	WriterID  *uint64   `gorm:"column:writer_id" json:"writer"`
	HasTime   bool      `gorm:"column:has_time" json:"has_time"`
	StartDate string    `gorm:"column:start_date;type:date" json:"start_date"`
	DueDate   string    `gorm:"column:due_date;type:date" json:"due_date"`
	StartTime *string   `gorm:"column:start_time;type:time" json:"start_time"`
	DueTime   *string   `gorm:"column:due_time;type:time" json:"due_time"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// 사용자 범위 목록 조회 시에만 join으로 채워짐
	ChannelName string `gorm:"column:channel_name;->;-:migration" json:"channel_name,omitempty"`
}

func (Event) TableName() string { return "events" }

// Feedback 서비스 피드백. 탈퇴한 사용자의 피드백은 작성자 없이 남는다.
type Feedback struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    *uint64   `gorm:"column:user_id" json:"user"`
	Content   string    `gorm:"column:content;type:varchar(300)" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
