package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
	"github.com/wafflestudio/SNUDAY-server/internal/repository"
	"github.com/wafflestudio/SNUDAY-server/pkg/cache"
	"github.com/wafflestudio/SNUDAY-server/pkg/jwt"
	"github.com/wafflestudio/SNUDAY-server/pkg/logger"
	"github.com/wafflestudio/SNUDAY-server/pkg/mailer"
	"golang.org/x/crypto/bcrypt"
)

const emailDomain = "snu.ac.kr"

// AuthService 회원가입/로그인/내 정보/이메일 인증
type AuthService interface {
	Register(req *domain.RegisterRequest) (*domain.UserResponse, error)
	Login(req *domain.LoginRequest) (*domain.LoginResponse, error)
	Refresh(refreshToken string) (*domain.LoginResponse, error)
	GetMe(userID uint64) (*domain.UserResponse, error)
	UpdateMe(userID uint64, req *domain.UpdateMeRequest) (*domain.UserResponse, error)
	ChangePassword(userID uint64, req *domain.ChangePasswordRequest) error
	SearchUsers(keyword string) ([]*domain.UserResponse, error)

	SendVerificationEmail(ctx context.Context, emailPrefix string) error
	VerifyEmail(ctx context.Context, emailPrefix, code string) error
	FindUsername(emailPrefix string) error
	FindPassword(emailPrefix string) error
}

type authService struct {
	users      repository.UserRepository
	jwtManager *jwt.Manager
	cache      cache.Service
	mail       mailer.Sender
}

// NewAuthService creates a new AuthService. cache와 mail은 nil일 수 있다.
func NewAuthService(
	users repository.UserRepository,
	jwtManager *jwt.Manager,
	cacheService cache.Service,
	mail mailer.Sender,
) AuthService {
	if mail == nil {
		mail = mailer.NoopSender{}
	}
	return &authService{users: users, jwtManager: jwtManager, cache: cacheService, mail: mail}
}

// Register 회원가입. 개인 채널 생성까지 한 트랜잭션으로 처리된다.
func (s *authService) Register(req *domain.RegisterRequest) (*domain.UserResponse, error) {
	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return nil, common.ErrDuplicateUsername
	} else if !errors.Is(err, common.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	personalName := fmt.Sprintf("%s의 개인 채널", req.Username)
	if _, err := s.users.Register(user, personalName); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *authService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*domain.LoginResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *domain.User) (*domain.LoginResponse, error) {
	userIDStr := strconv.FormatUint(user.ID, 10)
	access, err := s.jwtManager.GenerateAccessToken(userIDStr, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &domain.LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *authService) GetMe(userID uint64) (*domain.UserResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateMe 내 정보 수정. 비밀번호는 이 경로로 바꿀 수 없다.
func (s *authService) UpdateMe(userID uint64, req *domain.UpdateMeRequest) (*domain.UserResponse, error) {
	if req.Password != nil {
		return nil, common.ErrInvalidInput
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *authService) ChangePassword(userID uint64, req *domain.ChangePasswordRequest) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return common.ErrWrongPassword
	}
	if req.OldPassword == req.NewPassword {
		return common.ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)
	return s.users.Update(user)
}

func (s *authService) SearchUsers(keyword string) ([]*domain.UserResponse, error) {
	if len([]rune(keyword)) < 2 {
		return nil, common.ErrQueryTooShort
	}
	users, err := s.users.SearchByUsername(keyword, 5)
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// SendVerificationEmail 인증코드를 만들어 redis에 TTL과 함께 저장하고 발송한다
func (s *authService) SendVerificationEmail(ctx context.Context, emailPrefix string) error {
	if s.cache == nil {
		return common.ErrInvalidInput
	}

	code := randomDigits(6)
	if err := s.cache.SetVerificationCode(ctx, emailPrefix, code); err != nil {
		return err
	}

	to := fmt.Sprintf("%s@%s", emailPrefix, emailDomain)
	if err := s.mail.Send([]string{to}, "SNUDAY 이메일 인증", code); err != nil {
		logger.Error("verification mail send failed: %v", err)
		return err
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, emailPrefix, code string) error {
	if s.cache == nil {
		return common.ErrInvalidInput
	}

	stored, err := s.cache.GetVerificationCode(ctx, emailPrefix)
	if err != nil {
		return common.ErrInvalidInput
	}
	if stored != code {
		return common.ErrInvalidInput
	}
	return s.cache.DeleteVerificationCode(ctx, emailPrefix)
}

// FindUsername 가입 메일로 아이디를 발송한다
func (s *authService) FindUsername(emailPrefix string) error {
	email := fmt.Sprintf("%s@%s", emailPrefix, emailDomain)
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}
	return s.mail.Send([]string{email}, "SNUDAY 아이디 찾기", user.Username)
}

// FindPassword 임시 비밀번호를 발급해 메일로 발송한다
func (s *authService) FindPassword(emailPrefix string) error {
	email := fmt.Sprintf("%s@%s", emailPrefix, emailDomain)
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}

	temp := randomString(12)
	hashed, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)
	if err := s.users.Update(user); err != nil {
		return err
	}
	return s.mail.Send([]string{email}, "SNUDAY 임시 비밀번호", temp)
}

const (
	digitRunes  = "0123456789"
	stringRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func randomDigits(n int) string {
	return randomFrom(digitRunes, n)
}

func randomString(n int) string {
	return randomFrom(stringRunes, n)
}

func randomFrom(alphabet string, n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			out[i] = alphabet[0]
			continue
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out)
}
