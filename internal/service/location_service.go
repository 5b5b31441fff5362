package service

import (
	"context"
	"time"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
)

type ILocationService interface {
	Create(ctx context.Context, userId string, diaryId uint, req *dto.CreateLocationLogRequest) (*dto.CreateLocationLogResponse, error)
	Delete(ctx context.Context, userId string, diaryId, locationId uint) error
}

type locationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLocationService(uowFactory unitofwork.RepositoryFactory) ILocationService {
	return &locationService{uowFactory: uowFactory}
}

func (s *locationService) Create(ctx context.Context, userId string, diaryId uint, req *dto.CreateLocationLogRequest) (*dto.CreateLocationLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	diary, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: diaryId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, apperror.NewNotFound("diary", diaryId)
	}

	location := entity.LocationLog{
		DiaryId:   diaryId,
		Address:   req.Address,
		Lat:       req.Lat,
		Lng:       req.Lng,
		CreatedAt: time.Now(),
	}
	if err := uow.LocationLogRepository().Create(ctx, &location); err != nil {
		return nil, err
	}

	return &dto.CreateLocationLogResponse{LocationId: location.Id}, nil
}

func (s *locationService) Delete(ctx context.Context, userId string, diaryId, locationId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	diary, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: diaryId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if diary == nil {
		return apperror.NewNotFound("diary", diaryId)
	}

	location, err := uow.LocationLogRepository().FindOne(ctx,
		specification.ByID{ID: locationId},
		specification.ByDiaryID{DiaryID: diaryId},
	)
	if err != nil {
		return err
	}
	if location == nil {
		return apperror.NewNotFound("location", locationId)
	}

	return uow.LocationLogRepository().Delete(ctx, locationId)
}
