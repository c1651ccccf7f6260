package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/internal/domain"
)

func newEventService(events *mockEventRepo, channels *mockChannelRepo, now time.Time) EventService {
	svc := NewEventService(events, channels, NewVisibilityPolicy(channels)).(*eventService)
	svc.now = func() time.Time { return now }
	return svc
}

func strPtr(s string) *string { return &s }

func TestValidateInterval(t *testing.T) {
	cases := []struct {
		name      string
		hasTime   bool
		startDate string
		dueDate   string
		startTime *string
		dueTime   *string
		wantErr   error
	}{
		{"날짜만 정상", false, "2021-03-02", "2021-03-05", nil, nil, nil},
		{"같은 날 허용", false, "2021-03-02", "2021-03-02", nil, nil, nil},
		{"역순 거부", false, "2021-03-05", "2021-03-02", nil, nil, common.ErrInvalidInterval},
		{"잘못된 날짜 형식", false, "03/02/2021", "2021-03-05", nil, nil, common.ErrInvalidInput},
		{"has_time인데 시각 없음", true, "2021-03-02", "2021-03-02", strPtr("10:00:00"), nil, common.ErrTimeRequired},
		{"같은 날 시각 역순", true, "2021-03-02", "2021-03-02", strPtr("14:00:00"), strPtr("10:00:00"), common.ErrInvalidInterval},
		{"같은 날 시각 정상", true, "2021-03-02", "2021-03-02", strPtr("10:00:00"), strPtr("14:00:00"), nil},
		{"다른 날이면 시각 역순 허용", true, "2021-03-02", "2021-03-03", strPtr("14:00:00"), strPtr("10:00:00"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateInterval(tc.hasTime, tc.startDate, tc.dueDate, tc.startTime, tc.dueTime)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestEventList_DateFilter(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	events.On("ListInRange", []uint64{3}, "2021-03-02", "2021-03-02").
		Return([]*domain.Event{{ID: 1, ChannelID: 3}}, nil)

	result, err := svc.List(3, 9, "2021-03-02", "")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestEventList_MonthFilterUsesCalendarBounds(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	events.On("ListInRange", []uint64{3}, "2021-02-01", "2021-02-28").
		Return([]*domain.Event{}, nil)

	_, err := svc.List(3, 9, "", "2021-02")

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestEventList_DefaultsToCurrentMonth(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Date(2021, 12, 25, 10, 0, 0, 0, time.UTC))

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	events.On("ListInRange", []uint64{3}, "2021-12-01", "2021-12-31").
		Return([]*domain.Event{}, nil)

	_, err := svc.List(3, 9, "", "")

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestEventList_InvalidMonth(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Now())

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)

	_, err := svc.List(3, 9, "", "2021/02")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestEventCreate_ManagerOnly(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Now())

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)

	result, err := svc.Create(3, 2, &domain.CreateEventRequest{
		Title: "종강", StartDate: "2021-06-18", DueDate: "2021-06-18",
	})

	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Nil(t, result)
}

func TestEventCreate_ClearsTimesWithoutHasTime(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Now())

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)
	events.On("Create", mock.AnythingOfType("*domain.Event")).Return(nil)

	result, err := svc.Create(3, 1, &domain.CreateEventRequest{
		Title:     "축제",
		StartDate: "2021-05-10",
		DueDate:   "2021-05-12",
		HasTime:   false,
		StartTime: strPtr("10:00:00"),
		DueTime:   strPtr("18:00:00"),
	})

	assert.NoError(t, err)
	assert.Nil(t, result.StartTime)
	assert.Nil(t, result.DueTime)
}

func TestEventUpdate_TurningOffHasTimeDropsTimes(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Now())

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)
	events.On("FindByID", uint64(10)).Return(&domain.Event{
		ID: 10, ChannelID: 3, HasTime: true,
		StartDate: "2021-05-10", DueDate: "2021-05-10",
		StartTime: strPtr("10:00:00"), DueTime: strPtr("12:00:00"),
	}, nil)
	events.On("Update", mock.AnythingOfType("*domain.Event")).Return(nil)

	hasTime := false
	result, err := svc.Update(3, 10, 1, &domain.UpdateEventRequest{HasTime: &hasTime})

	assert.NoError(t, err)
	assert.False(t, result.HasTime)
	assert.Nil(t, result.StartTime)
	assert.Nil(t, result.DueTime)
}

func TestEventUpdate_RevalidatesInterval(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Now())

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3, ManagerID: 1}, nil)
	events.On("FindByID", uint64(10)).Return(&domain.Event{
		ID: 10, ChannelID: 3, StartDate: "2021-05-10", DueDate: "2021-05-12",
	}, nil)

	due := "2021-05-01"
	result, err := svc.Update(3, 10, 1, &domain.UpdateEventRequest{DueDate: &due})

	assert.ErrorIs(t, err, common.ErrInvalidInterval)
	assert.Nil(t, result)
	events.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEventGet_ChannelMismatch(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Now())

	channels.On("FindByID", uint64(3)).Return(&domain.Channel{ID: 3}, nil)
	events.On("FindByID", uint64(10)).Return(&domain.Event{ID: 10, ChannelID: 8}, nil)

	result, err := svc.Get(3, 10, 9)

	assert.ErrorIs(t, err, common.ErrEventNotFound)
	assert.Nil(t, result)
}

func TestEventListMine_UsesSubscribedChannels(t *testing.T) {
	events := new(mockEventRepo)
	channels := new(mockChannelRepo)
	svc := newEventService(events, channels, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC))

	channels.On("SubscribedChannelIDs", uint64(9)).Return([]uint64{3, 4}, nil)
	events.On("ListInRange", []uint64{3, 4}, "2021-03-01", "2021-03-31").
		Return([]*domain.Event{{ID: 1, ChannelID: 4}}, nil)

	result, err := svc.ListMine(9, "", "")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
