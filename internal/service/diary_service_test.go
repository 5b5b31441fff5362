package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
)

func newDiaryFixture() (*fakeStore, IDiaryService) {
	store := &fakeStore{
		diaries: []*entity.DiaryEntry{
			{
				Id:      testDiaryId,
				UserId:  testUser,
				Date:    time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
				Content: "오늘은 친구들과 한강에 갔다.",
				Mood:    "happy",
			},
		},
	}
	svc := NewDiaryService(&fakeFactory{store: store}, nil, nopLogger{})
	return store, svc
}

func TestDiaryCreate(t *testing.T) {
	store, svc := newDiaryFixture()

	res, err := svc.Create(context.Background(), testUser, &dto.CreateDiaryRequest{
		Date:    "2025-07-15",
		Content: "비가 와서 집에 있었다.",
		Mood:    "calm",
	})
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Len(t, store.diaries, 2)
}

func TestDiaryCreateDuplicateDate(t *testing.T) {
	_, svc := newDiaryFixture()

	_, err := svc.Create(context.Background(), testUser, &dto.CreateDiaryRequest{
		Date: "2025-07-14",
	})

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestDiaryCreateSameDateOtherUser(t *testing.T) {
	store, svc := newDiaryFixture()

	_, err := svc.Create(context.Background(), "other-user", &dto.CreateDiaryRequest{
		Date: "2025-07-14",
	})
	require.NoError(t, err, "the uniqueness is per user, not global")
	assert.Len(t, store.diaries, 2)
}

func TestDiaryShow(t *testing.T) {
	store, svc := newDiaryFixture()
	store.photos = []*entity.Photo{
		{Id: 1, DiaryId: testDiaryId, Path: "/uploads/photos/a.jpg", Description: "한강의 노을"},
	}
	store.people = []*entity.Person{
		{Id: 1, DiaryId: testDiaryId, Name: "민수", Relation: "친구"},
		{Id: 2, DiaryId: 99, Name: "다른 일기의 인물"},
	}
	store.locations = []*entity.LocationLog{
		{Id: 1, DiaryId: testDiaryId, Address: "서울 한강공원", Lat: 37.52, Lng: 126.93},
	}

	res, err := svc.Show(context.Background(), testUser, testDiaryId)
	require.NoError(t, err)

	assert.Equal(t, "2025-07-14", res.Date)
	assert.Equal(t, "happy", res.Mood)
	require.Len(t, res.Photos, 1)
	assert.Equal(t, "/uploads/photos/a.jpg", res.Photos[0].Path)
	require.Len(t, res.People, 1, "only this diary's people are returned")
	assert.Equal(t, "민수", res.People[0].Name)
	assert.Equal(t, "친구", res.People[0].Relation)
	require.Len(t, res.Locations, 1)
	assert.Equal(t, "서울 한강공원", res.Locations[0].Address)
}

func TestDiaryShowForeignUser(t *testing.T) {
	_, svc := newDiaryFixture()

	_, err := svc.Show(context.Background(), "other-user", testDiaryId)

	var nfErr *apperror.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestDiaryExistsByDate(t *testing.T) {
	_, svc := newDiaryFixture()

	exists, err := svc.ExistsByDate(context.Background(), testUser,
		time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByDate(context.Background(), testUser,
		time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDiaryDaysInMonth(t *testing.T) {
	store, svc := newDiaryFixture()
	store.photos = []*entity.Photo{
		{Id: 1, DiaryId: testDiaryId, Path: "/uploads/photos/thumb.jpg"},
	}

	res, err := svc.DaysInMonth(context.Background(), testUser, 2025, time.July)
	require.NoError(t, err)

	require.Len(t, res.DiaryDays, 31)

	day14 := res.DiaryDays[13]
	assert.Equal(t, 14, day14.Day)
	assert.True(t, day14.HasDiary)
	require.NotNil(t, day14.DiaryId)
	assert.Equal(t, testDiaryId, *day14.DiaryId)
	require.NotNil(t, day14.Thumbnail)
	assert.Equal(t, "/uploads/photos/thumb.jpg", *day14.Thumbnail)

	day15 := res.DiaryDays[14]
	assert.False(t, day15.HasDiary)
	assert.Nil(t, day15.DiaryId)
	assert.Nil(t, day15.Thumbnail)
}

func TestDiaryDaysInMonthEmpty(t *testing.T) {
	_, svc := newDiaryFixture()

	res, err := svc.DaysInMonth(context.Background(), testUser, 2025, time.February)
	require.NoError(t, err)

	assert.Len(t, res.DiaryDays, 28)
	for _, d := range res.DiaryDays {
		assert.False(t, d.HasDiary)
	}
}
