package service

import (
	"context"
	"fmt"
	"time"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/internal/pkg/logger"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
	"my-diary-be/pkg/events"
	pktNats "my-diary-be/pkg/nats"
)

type IDiaryService interface {
	Create(ctx context.Context, userId string, req *dto.CreateDiaryRequest) (*dto.CreateDiaryResponse, error)
	Show(ctx context.Context, userId string, id uint) (*dto.ShowDiaryResponse, error)
	ExistsByDate(ctx context.Context, userId string, date time.Time) (bool, error)
	DaysInMonth(ctx context.Context, userId string, year int, month time.Month) (*dto.DiaryMonthResponse, error)
	UpdateContent(ctx context.Context, userId string, id uint, text string) error
	Delete(ctx context.Context, userId string, id uint) error
}

type diaryService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewDiaryService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDiaryService {
	return &diaryService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *diaryService) Create(ctx context.Context, userId string, req *dto.CreateDiaryRequest) (*dto.CreateDiaryResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// One diary per (user, date). The unique index backs this up, but a
	// friendly conflict beats a raw duplicate-key error.
	count, err := uow.DiaryRepository().Count(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByDate{Date: date},
	)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.NewConflict(fmt.Sprintf("diary already exists for %s", req.Date))
	}

	diary := entity.DiaryEntry{
		UserId:    userId,
		Date:      date,
		Content:   req.Content,
		Mood:      req.Mood,
		CreatedAt: time.Now(),
	}
	if err := uow.DiaryRepository().Create(ctx, &diary); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeDiaryCreated, map[string]interface{}{
		"diary_id": diary.Id,
		"user_id":  userId,
		"date":     req.Date,
	})

	return &dto.CreateDiaryResponse{
		DiaryId: diary.Id,
	}, nil
}

func (s *diaryService) Show(ctx context.Context, userId string, id uint) (*dto.ShowDiaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	diary, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, apperror.NewNotFound("diary", id)
	}

	photos, err := uow.PhotoRepository().FindAll(ctx, specification.ByDiaryID{DiaryID: id})
	if err != nil {
		return nil, err
	}
	people, err := uow.PersonRepository().FindAll(ctx, specification.ByDiaryID{DiaryID: id})
	if err != nil {
		return nil, err
	}
	locations, err := uow.LocationLogRepository().FindAll(ctx, specification.ByDiaryID{DiaryID: id})
	if err != nil {
		return nil, err
	}

	res := dto.ShowDiaryResponse{
		Id:        diary.Id,
		Date:      diary.Date.Format("2006-01-02"),
		Content:   diary.Content,
		Mood:      diary.Mood,
		Photos:    make([]dto.PhotoDTO, 0, len(photos)),
		People:    make([]dto.PersonDTO, 0, len(people)),
		Locations: make([]dto.LocationLogDTO, 0, len(locations)),
		CreatedAt: diary.CreatedAt,
		UpdatedAt: diary.UpdatedAt,
	}
	for _, p := range photos {
		res.Photos = append(res.Photos, dto.PhotoDTO{
			Id:          p.Id,
			Path:        p.Path,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}
	for _, p := range people {
		res.People = append(res.People, dto.PersonDTO{
			Id:        p.Id,
			Name:      p.Name,
			Relation:  p.Relation,
			CreatedAt: p.CreatedAt,
		})
	}
	for _, l := range locations {
		res.Locations = append(res.Locations, dto.LocationLogDTO{
			Id:        l.Id,
			Address:   l.Address,
			Lat:       l.Lat,
			Lng:       l.Lng,
			CreatedAt: l.CreatedAt,
		})
	}

	return &res, nil
}

func (s *diaryService) ExistsByDate(ctx context.Context, userId string, date time.Time) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.DiaryRepository().Count(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByDate{Date: date},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *diaryService) DaysInMonth(ctx context.Context, userId string, year int, month time.Month) (*dto.DiaryMonthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.DiaryRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByYearMonth{Year: year, Month: month},
	)
	if err != nil {
		return nil, err
	}

	type dayInfo struct {
		diaryId   uint
		thumbnail *string
	}
	diaryMap := make(map[int]dayInfo, len(entries))
	for _, entry := range entries {
		// First photo of the day doubles as the calendar thumbnail.
		photo, err := uow.PhotoRepository().FindOne(ctx, specification.ByDiaryID{DiaryID: entry.Id})
		if err != nil {
			return nil, err
		}
		info := dayInfo{diaryId: entry.Id}
		if photo != nil {
			path := photo.Path
			info.thumbnail = &path
		}
		diaryMap[entry.Date.Day()] = info
	}

	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]dto.DiaryDayDTO, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		d := dto.DiaryDayDTO{Day: day}
		if info, ok := diaryMap[day]; ok {
			id := info.diaryId
			d.HasDiary = true
			d.DiaryId = &id
			d.Thumbnail = info.thumbnail
		}
		days = append(days, d)
	}

	return &dto.DiaryMonthResponse{DiaryDays: days}, nil
}

func (s *diaryService) UpdateContent(ctx context.Context, userId string, id uint, text string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	diary, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if diary == nil {
		return apperror.NewNotFound("diary", id)
	}

	diary.Content = text
	return uow.DiaryRepository().Update(ctx, diary)
}

func (s *diaryService) Delete(ctx context.Context, userId string, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	diary, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if diary == nil {
		return apperror.NewNotFound("diary", id)
	}

	// Photos, people, locations and chat turns go with it via FK cascade.
	if err := uow.DiaryRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeDiaryDeleted, map[string]interface{}{
		"diary_id": id,
		"user_id":  userId,
	})

	return nil
}

func (s *diaryService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	// Events feed auxiliary consumers; a publish failure never fails the request.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("DiaryService", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
