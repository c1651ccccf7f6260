package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
)

func newChannelService(channels *mockChannelRepo, users *mockUserRepo) ChannelService {
	return NewChannelService(channels, users, NewVisibilityPolicy(channels), nil)
}

func TestChannelCreate_Success(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByName", "공대 소식").Return(nil, common.ErrChannelNotFound)
	channels.On("CreateWithManager", mock.AnythingOfType("*domain.Channel"), mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Channel).ID = 7
		}).Return(nil)
	channels.On("FindByID", uint64(7)).Return(&domain.Channel{ID: 7, Name: "공대 소식", ManagerID: 1}, nil)

	result, err := svc.Create(1, &domain.CreateChannelRequest{Name: "공대 소식"})

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), result.ID)
	assert.Equal(t, "공대 소식", result.Name)
	channels.AssertExpectations(t)
}

func TestChannelCreate_DuplicateName(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByName", "공대 소식").Return(&domain.Channel{ID: 1, Name: "공대 소식"}, nil)

	result, err := svc.Create(1, &domain.CreateChannelRequest{Name: "공대 소식"})

	assert.ErrorIs(t, err, common.ErrDuplicateName)
	assert.Nil(t, result)
}

func TestChannelCreate_ManagerNotFound(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByName", "새 채널").Return(nil, common.ErrChannelNotFound)
	users.On("FindByUsername", "ghost").Return(nil, common.ErrUserNotFound)

	result, err := svc.Create(1, &domain.CreateChannelRequest{Name: "새 채널", ManagerUsername: "ghost"})

	assert.ErrorIs(t, err, common.ErrManagerNotFound)
	assert.Nil(t, result)
}

func TestChannelGet_PrivateNonSubscriber(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)

	result, err := svc.Get(3, 9)

	assert.ErrorIs(t, err, common.ErrPrivateChannel)
	assert.Nil(t, result)
}

func TestChannelGet_PrivateSubscriber(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(true, nil)

	result, err := svc.Get(3, 9)

	assert.NoError(t, err)
	assert.Equal(t, uint64(3), result.ID)
}

func TestChannelUpdate_NotManager(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)

	name := "새 이름"
	result, err := svc.Update(3, 2, &domain.UpdateChannelRequest{Name: &name})

	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Nil(t, result)
}

func TestChannelUpdate_EmptyManagerRejected(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)

	empty := ""
	result, err := svc.Update(3, 1, &domain.UpdateChannelRequest{ManagerUsername: &empty})

	assert.ErrorIs(t, err, common.ErrManagerRequired)
	assert.Nil(t, result)
	channels.AssertNotCalled(t, "Update", mock.Anything)
}

func TestChannelUpdate_TransferManager(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)
	users.On("FindByUsername", "newboss").Return(&domain.User{ID: 5, Username: "newboss"}, nil)
	channels.On("UpdateWithManager", mock.AnythingOfType("*domain.Channel"), uint64(5), mock.Anything).Return(nil)

	username := "newboss"
	_, err := svc.Update(3, 1, &domain.UpdateChannelRequest{ManagerUsername: &username})

	assert.NoError(t, err)
	channels.AssertCalled(t, "UpdateWithManager", mock.AnythingOfType("*domain.Channel"), uint64(5), mock.Anything)
	channels.AssertNotCalled(t, "Update", mock.Anything)
}

// 이름 변경과 잘못된 매니저 지정이 함께 들어오면 아무것도 저장되지 않아야 한다.
func TestChannelUpdate_InvalidManagerWritesNothing(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, Name: "원래", ManagerID: 1}, nil)
	channels.On("FindByName", "바뀐 이름").Return(nil, common.ErrChannelNotFound)
	users.On("FindByUsername", "ghost").Return(nil, common.ErrUserNotFound)

	name := "바뀐 이름"
	username := "ghost"
	result, err := svc.Update(3, 1, &domain.UpdateChannelRequest{Name: &name, ManagerUsername: &username})

	assert.ErrorIs(t, err, common.ErrManagerNotFound)
	assert.Nil(t, result)
	channels.AssertNotCalled(t, "Update", mock.Anything)
	channels.AssertNotCalled(t, "UpdateWithManager", mock.Anything, mock.Anything, mock.Anything)
}

func TestChannelDelete_NotManager(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)

	err := svc.Delete(context.Background(), 3, 2)

	assert.ErrorIs(t, err, common.ErrForbidden)
	channels.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestSubscribe_PublicChannel(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: false}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("AddSubscriber", uint64(3), uint64(9), mock.Anything).Return(nil)

	err := svc.Subscribe(3, 9)

	assert.NoError(t, err)
	channels.AssertNotCalled(t, "AddAwaiter", mock.Anything, mock.Anything)
}

func TestSubscribe_PrivateChannelBecomesAwaiter(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("AddAwaiter", uint64(3), uint64(9)).Return(nil)

	err := svc.Subscribe(3, 9)

	assert.NoError(t, err)
	channels.AssertNotCalled(t, "AddSubscriber", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(true, nil)

	err := svc.Subscribe(3, 9)

	assert.ErrorIs(t, err, common.ErrAlreadySubscribed)
}

func TestUnsubscribe_Awaiter(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("IsAwaiter", uint64(3), uint64(9)).Return(true, nil)
	channels.On("RemoveAwaiter", uint64(3), uint64(9)).Return(nil)

	err := svc.Unsubscribe(3, 9)

	assert.NoError(t, err)
	channels.AssertNotCalled(t, "RemoveSubscriber", mock.Anything, mock.Anything)
}

func TestUnsubscribe_NeverSubscribed(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("IsAwaiter", uint64(3), uint64(9)).Return(false, nil)

	err := svc.Unsubscribe(3, 9)

	assert.ErrorIs(t, err, common.ErrNotSubscribed)
}

func TestListAwaiters_ManagerOnly(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)

	result, err := svc.ListAwaiters(3, 2)

	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Nil(t, result)
}

func TestAllow_Success(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	users.On("FindByID", uint64(9)).Return(&domain.User{ID: 9}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("PromoteAwaiter", uint64(3), uint64(9), mock.Anything).Return(nil)

	err := svc.Allow(3, 1, 9)

	assert.NoError(t, err)
	channels.AssertExpectations(t)
}

func TestAllow_TargetAlreadySubscriber(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	users.On("FindByID", uint64(9)).Return(&domain.User{ID: 9}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(true, nil)

	err := svc.Allow(3, 1, 9)

	assert.ErrorIs(t, err, common.ErrTargetSubscribed)
}

func TestAllow_NeverRequested(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	users.On("FindByID", uint64(9)).Return(&domain.User{ID: 9}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("PromoteAwaiter", uint64(3), uint64(9), mock.Anything).Return(common.ErrNeverRequested)

	err := svc.Allow(3, 1, 9)

	assert.ErrorIs(t, err, common.ErrNeverRequested)
}

func TestDisallow_Success(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	users.On("FindByID", uint64(9)).Return(&domain.User{ID: 9}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("IsAwaiter", uint64(3), uint64(9)).Return(true, nil)
	channels.On("RemoveAwaiter", uint64(3), uint64(9)).Return(nil)

	err := svc.Disallow(3, 1, 9)

	assert.NoError(t, err)
	channels.AssertExpectations(t)
}

func TestDisallow_NeverRequested(t *testing.T) {
	channels := new(mockChannelRepo)
	users := new(mockUserRepo)
	svc := newChannelService(channels, users)

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, IsPrivate: true, ManagerID: 1}, nil)
	users.On("FindByID", uint64(9)).Return(&domain.User{ID: 9}, nil)
	channels.On("IsSubscriber", uint64(3), uint64(9)).Return(false, nil)
	channels.On("IsAwaiter", uint64(3), uint64(9)).Return(false, nil)

	err := svc.Disallow(3, 1, 9)

	assert.ErrorIs(t, err, common.ErrNeverRequested)
}

func TestSearch_KeywordTooShort(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	_, _, err := svc.Search("all", "감", 1, 10)

	assert.ErrorIs(t, err, common.ErrQueryTooShort)
}

func TestSearch_MultibyteKeywordCountsRunes(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("Search", "all", "감자", 1, 10).
		Return([]*domain.Channel{{ID: 1, Name: "감자 동아리"}}, int64(1), nil)

	result, meta, err := svc.Search("all", "감자", 1, 10)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(1), meta.Total)
}

func TestRecommend_NoCache(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("Recommend", 5).Return([]*domain.Channel{
		{ID: 1, Name: "인기 채널"},
		{ID: 2, Name: "두번째"},
	}, nil)

	result, err := svc.Recommend(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "인기 채널", result[0].Name)
}

func TestGetColor_NonSubscriberGetsRandom(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	channels.On("GetSubscription", uint64(3), uint64(9)).Return(nil, common.ErrNotSubscribed)

	result, err := svc.GetColor(3, 9)

	assert.NoError(t, err)
	assert.True(t, result.Color.IsValid())
}

func TestGetColor_Subscriber(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	channels.On("GetSubscription", uint64(3), uint64(9)).
		Return(&domain.UserChannel{ChannelID: 3, UserID: 9, Color: domain.ColorLavender}, nil)

	result, err := svc.GetColor(3, 9)

	assert.NoError(t, err)
	assert.Equal(t, domain.ColorLavender, result.Color)
}

func TestSetColor_InvalidColor(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)

	result, err := svc.SetColor(3, 9, "NEON_PINK")

	assert.ErrorIs(t, err, common.ErrInvalidColor)
	assert.Nil(t, result)
}

func TestSetColor_NotSubscribed(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	channels.On("UpdateColor", uint64(3), uint64(9), domain.ColorLavender).Return(common.ErrNotSubscribed)

	result, err := svc.SetColor(3, 9, string(domain.ColorLavender))

	assert.ErrorIs(t, err, common.ErrNotSubscribed)
	assert.Nil(t, result)
}

func TestListManaging_IncludesAwaitersCount(t *testing.T) {
	channels := new(mockChannelRepo)
	svc := newChannelService(channels, new(mockUserRepo))

	ch := &domain.Channel{ID: 3, Name: "내 채널", ManagerID: 1, AwaitersCount: 4}
	channels.On("ListManaging", uint64(1)).Return([]*domain.Channel{ch}, nil)

	result, err := svc.ListManaging(1)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	if assert.NotNil(t, result[0].AwaitersCount) {
		assert.Equal(t, int64(4), *result[0].AwaitersCount)
	}
}
