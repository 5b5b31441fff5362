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

type IPersonService interface {
	Create(ctx context.Context, userId string, diaryId uint, req *dto.CreatePersonRequest) (*dto.CreatePersonResponse, error)
	Delete(ctx context.Context, userId string, diaryId, personId uint) error
}

type personService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPersonService(uowFactory unitofwork.RepositoryFactory) IPersonService {
	return &personService{uowFactory: uowFactory}
}

func (s *personService) Create(ctx context.Context, userId string, diaryId uint, req *dto.CreatePersonRequest) (*dto.CreatePersonResponse, error) {
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

	person := entity.Person{
		DiaryId:   diaryId,
		Name:      req.Name,
		Relation:  req.Relation,
		CreatedAt: time.Now(),
	}
	if err := uow.PersonRepository().Create(ctx, &person); err != nil {
		return nil, err
	}

	return &dto.CreatePersonResponse{PersonId: person.Id}, nil
}

func (s *personService) Delete(ctx context.Context, userId string, diaryId, personId uint) error {
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

	person, err := uow.PersonRepository().FindOne(ctx,
		specification.ByID{ID: personId},
		specification.ByDiaryID{DiaryID: diaryId},
	)
	if err != nil {
		return err
	}
	if person == nil {
		return apperror.NewNotFound("person", personId)
	}

	return uow.PersonRepository().Delete(ctx, personId)
}
