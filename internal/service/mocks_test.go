package service

import (
	"github.com/stretchr/testify/mock"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
)

// --- Mock ChannelRepository ---

type mockChannelRepo struct {
	mock.Mock
}

func (m *mockChannelRepo) FindByID(id uint64) (*domain.Channel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) FindByName(name string) (*domain.Channel, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) List(page, limit int) ([]*domain.Channel, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Channel), args.Get(1).(int64), args.Error(2)
}

func (m *mockChannelRepo) Search(searchType, keyword string, page, limit int) ([]*domain.Channel, int64, error) {
	args := m.Called(searchType, keyword, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Channel), args.Get(1).(int64), args.Error(2)
}

func (m *mockChannelRepo) Recommend(limit int) ([]*domain.Channel, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) CreateWithManager(ch *domain.Channel, color domain.ThemeColor) error {
	return m.Called(ch, color).Error(0)
}

func (m *mockChannelRepo) Update(ch *domain.Channel) error {
	return m.Called(ch).Error(0)
}

func (m *mockChannelRepo) UpdateWithManager(ch *domain.Channel, newManagerID uint64, color domain.ThemeColor) error {
	return m.Called(ch, newManagerID, color).Error(0)
}

func (m *mockChannelRepo) Delete(channelID uint64) error {
	return m.Called(channelID).Error(0)
}

func (m *mockChannelRepo) IsSubscriber(channelID, userID uint64) (bool, error) {
	args := m.Called(channelID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockChannelRepo) IsAwaiter(channelID, userID uint64) (bool, error) {
	args := m.Called(channelID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockChannelRepo) AddSubscriber(channelID, userID uint64, color domain.ThemeColor) error {
	return m.Called(channelID, userID, color).Error(0)
}

func (m *mockChannelRepo) RemoveSubscriber(channelID, userID uint64) error {
	return m.Called(channelID, userID).Error(0)
}

func (m *mockChannelRepo) AddAwaiter(channelID, userID uint64) error {
	return m.Called(channelID, userID).Error(0)
}

func (m *mockChannelRepo) RemoveAwaiter(channelID, userID uint64) error {
	return m.Called(channelID, userID).Error(0)
}

func (m *mockChannelRepo) PromoteAwaiter(channelID, userID uint64, color domain.ThemeColor) error {
	return m.Called(channelID, userID, color).Error(0)
}

func (m *mockChannelRepo) ListAwaiters(channelID uint64) ([]*domain.User, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockChannelRepo) GetSubscription(channelID, userID uint64) (*domain.UserChannel, error) {
	args := m.Called(channelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserChannel), args.Error(1)
}

func (m *mockChannelRepo) UpdateColor(channelID, userID uint64, color domain.ThemeColor) error {
	return m.Called(channelID, userID, color).Error(0)
}

func (m *mockChannelRepo) SubscribedChannelIDs(userID uint64) ([]uint64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *mockChannelRepo) ListSubscribing(userID uint64) ([]*domain.Channel, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) ListManaging(userID uint64) ([]*domain.Channel, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Channel), args.Error(1)
}

func (m *mockChannelRepo) ListAwaiting(userID uint64) ([]*domain.Channel, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Channel), args.Error(1)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) SearchByUsername(keyword string, limit int) ([]*domain.User, error) {
	args := m.Called(keyword, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) Register(user *domain.User, personalChannelName string) (*domain.Channel, error) {
	args := m.Called(user, personalChannelName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockUserRepo) Update(user *domain.User) error {
	return m.Called(user).Error(0)
}

// --- Mock NoticeRepository ---

type mockNoticeRepo struct {
	mock.Mock
}

func (m *mockNoticeRepo) Create(n *domain.Notice) error {
	return m.Called(n).Error(0)
}

func (m *mockNoticeRepo) FindByID(id uint64) (*domain.Notice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *mockNoticeRepo) ListByChannel(channelID uint64, page, limit int) ([]*domain.Notice, int64, error) {
	args := m.Called(channelID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Notice), args.Get(1).(int64), args.Error(2)
}

func (m *mockNoticeRepo) Recent(channelID uint64, n int) ([]*domain.Notice, error) {
	args := m.Called(channelID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notice), args.Error(1)
}

func (m *mockNoticeRepo) Update(n *domain.Notice) error {
	return m.Called(n).Error(0)
}

func (m *mockNoticeRepo) Delete(id uint64) error {
	return m.Called(id).Error(0)
}

func (m *mockNoticeRepo) Search(channelIDs []uint64, searchType, keyword string, page, limit int) ([]*domain.Notice, int64, error) {
	args := m.Called(channelIDs, searchType, keyword, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Notice), args.Get(1).(int64), args.Error(2)
}

func (m *mockNoticeRepo) ListByChannels(channelIDs []uint64, page, limit int) ([]*domain.Notice, int64, error) {
	args := m.Called(channelIDs, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Notice), args.Get(1).(int64), args.Error(2)
}

// --- Mock EventRepository ---

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(e *domain.Event) error {
	return m.Called(e).Error(0)
}

func (m *mockEventRepo) FindByID(id uint64) (*domain.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepo) Update(e *domain.Event) error {
	return m.Called(e).Error(0)
}

func (m *mockEventRepo) Delete(id uint64) error {
	return m.Called(id).Error(0)
}

func (m *mockEventRepo) ListInRange(channelIDs []uint64, from, to string) ([]*domain.Event, error) {
	args := m.Called(channelIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) Create(f *domain.Feedback) error {
	return m.Called(f).Error(0)
}
