package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"my-diary-be/internal/constant"
	"my-diary-be/internal/dto"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/internal/pkg/logger"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
)

type IPhotoService interface {
	Upload(ctx context.Context, userId string, diaryId uint, file *multipart.FileHeader) (*dto.UploadPhotoResponse, error)
	Delete(ctx context.Context, userId string, diaryId, photoId uint) error
}

type photoService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	uploadDir  string
	logger     logger.ILogger
}

func NewPhotoService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	uploadDir string,
	log logger.ILogger,
) IPhotoService {
	return &photoService{
		uowFactory: uowFactory,
		publisher:  publisher,
		uploadDir:  uploadDir,
		logger:     log,
	}
}

func (s *photoService) Upload(ctx context.Context, userId string, diaryId uint, file *multipart.FileHeader) (*dto.UploadPhotoResponse, error) {
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

	// The random prefix keeps same-named uploads from clobbering each other.
	filename := fmt.Sprintf("%s_%s",
		strings.ReplaceAll(uuid.New().String(), "-", ""),
		filepath.Base(file.Filename),
	)
	photoDir := filepath.Join(s.uploadDir, "photos")
	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		return nil, apperror.NewPersistence("save photo", err)
	}
	if err := saveMultipartFile(file, filepath.Join(photoDir, filename)); err != nil {
		return nil, apperror.NewPersistence("save photo", err)
	}

	photo := entity.Photo{
		DiaryId:     diaryId,
		Path:        "/uploads/photos/" + filename,
		Description: constant.PhotoDefaultDescription,
		CreatedAt:   time.Now(),
	}
	if err := uow.PhotoRepository().Create(ctx, &photo); err != nil {
		return nil, err
	}

	s.enqueueCaptionJob(ctx, photo.Id)

	return &dto.UploadPhotoResponse{
		PhotoId:          photo.Id,
		PhotoSrc:         photo.Path,
		PhotoDescription: photo.Description,
	}, nil
}

func (s *photoService) Delete(ctx context.Context, userId string, diaryId, photoId uint) error {
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

	photo, err := uow.PhotoRepository().FindOne(ctx,
		specification.ByID{ID: photoId},
		specification.ByDiaryID{DiaryID: diaryId},
	)
	if err != nil {
		return err
	}
	if photo == nil {
		return apperror.NewNotFound("photo", photoId)
	}

	if err := uow.PhotoRepository().Delete(ctx, photoId); err != nil {
		return err
	}

	// The record is gone; a leftover file on disk is only worth a warning.
	localPath := filepath.Join(s.uploadDir, strings.TrimPrefix(photo.Path, "/uploads/"))
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("PhotoService", "failed to remove photo file", map[string]interface{}{
			"path":  localPath,
			"error": err.Error(),
		})
	}

	return nil
}

// enqueueCaptionJob schedules a caption generation for the photo. The upload
// response already carries the placeholder description, so a full bus never
// fails the upload.
func (s *photoService) enqueueCaptionJob(ctx context.Context, photoId uint) {
	payload, err := json.Marshal(dto.CaptionPhotoMessage{PhotoId: photoId})
	if err != nil {
		s.logger.Error("PhotoService", "failed to marshal caption job", map[string]interface{}{
			"photo_id": photoId,
			"error":    err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("PhotoService", "failed to enqueue caption job", map[string]interface{}{
			"photo_id": photoId,
			"error":    err.Error(),
		})
	}
}

func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return err
	}
	return nil
}
