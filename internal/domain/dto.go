package domain

import "time"

// === 요청 ===

// CreateChannelRequest 채널 생성 요청.
// managers_id에는 매니저로 지정할 사용자의 username을 넣는다. 비우면 생성자 본인.
type CreateChannelRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	IsPrivate       bool   `json:"is_private"`
	IsOfficial      bool   `json:"is_official"`
	IsPersonal      bool   `json:"is_personal"`
	ManagerUsername string `json:"managers_id"`
}

// UpdateChannelRequest 채널 부분 수정 요청
type UpdateChannelRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	IsPrivate       *bool   `json:"is_private"`
	IsOfficial      *bool   `json:"is_official"`
	ManagerUsername *string `json:"managers_id"`
}

// ColorRequest 테마 색상 변경 요청
type ColorRequest struct {
	Color string `json:"color" binding:"required"`
}

// CreateNoticeRequest 공지 작성 요청
type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Contents string `json:"contents" binding:"required"`
}

// UpdateNoticeRequest 공지 부분 수정 요청
type UpdateNoticeRequest struct {
	Title    *string `json:"title"`
	Contents *string `json:"contents"`
}

// CreateEventRequest 일정 생성 요청
type CreateEventRequest struct {
	Title     string  `json:"title" binding:"required"`
	Memo      string  `json:"memo"`
	HasTime   bool    `json:"has_time"`
	StartDate string  `json:"start_date" binding:"required"`
	DueDate   string  `json:"due_date" binding:"required"`
	StartTime *string `json:"start_time"`
	DueTime   *string `json:"due_time"`
}

// CreateFeedbackRequest 피드백 등록 요청
type CreateFeedbackRequest struct {
	Content string `json:"content" binding:"required,max=300"`
}

// UpdateEventRequest 일정 부분 수정 요청
type UpdateEventRequest struct {
	Title     *string `json:"title"`
	Memo      *string `json:"memo"`
	HasTime   *bool   `json:"has_time"`
	StartDate *string `json:"start_date"`
	DueDate   *string `json:"due_date"`
	StartTime *string `json:"start_time"`
	DueTime   *string `json:"due_time"`
}

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 토큰 갱신 요청
type RefreshRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

// UpdateMeRequest 내 정보 수정 요청
type UpdateMeRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
}

// ChangePasswordRequest 비밀번호 변경 요청
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// EmailRequest 이메일 인증코드 발송/아이디·비밀번호 찾기 요청
type EmailRequest struct {
	EmailPrefix string `json:"email_prefix" binding:"required"`
}

// VerifyEmailRequest 이메일 인증코드 확인 요청
type VerifyEmailRequest struct {
	EmailPrefix string `json:"email_prefix" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// === 응답 ===

// UserResponse 사용자 응답
type UserResponse struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToResponse converts a User to its API representation
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ChannelResponse 채널 응답. managers는 단일 매니저를 담는다.
type ChannelResponse struct {
	ID               uint64        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	IsPrivate        bool          `json:"is_private"`
	IsOfficial       bool          `json:"is_official"`
	IsPersonal       bool          `json:"is_personal"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	SubscribersCount int64         `json:"subscribers_count"`
	AwaitersCount    *int64        `json:"awaiters_count,omitempty"`
	Managers         *UserResponse `json:"managers"`
}

// ToResponse converts a Channel to its API representation
func (ch *Channel) ToResponse() *ChannelResponse {
	resp := &ChannelResponse{
		ID:               ch.ID,
		Name:             ch.Name,
		Description:      ch.Description,
		IsPrivate:        ch.IsPrivate,
		IsOfficial:       ch.IsOfficial,
		IsPersonal:       ch.IsPersonal,
		CreatedAt:        ch.CreatedAt,
		UpdatedAt:        ch.UpdatedAt,
		SubscribersCount: ch.SubscribersCount,
	}
	if ch.Manager != nil {
		resp.Managers = ch.Manager.ToResponse()
	}
	return resp
}

// ToAwaiterResponse converts a Channel to the manager-facing representation
// with the pending awaiter count included.
func (ch *Channel) ToAwaiterResponse() *ChannelResponse {
	resp := ch.ToResponse()
	count := ch.AwaitersCount
	resp.AwaitersCount = &count
	return resp
}

// LoginResponse 로그인 응답
type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access"`
	RefreshToken string        `json:"refresh"`
}

// ColorResponse 테마 색상 응답
type ColorResponse struct {
	Color ThemeColor `json:"color"`
}
