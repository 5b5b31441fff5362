package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"my-diary-be/internal/constant"
	"my-diary-be/internal/dto"
	"my-diary-be/internal/pkg/logger"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
	"my-diary-be/pkg/events"
	pktNats "my-diary-be/pkg/nats"
	"my-diary-be/pkg/vision"
)

// IConsumerService drains caption jobs from the pub/sub bus.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type captionConsumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	captioner      vision.Captioner
	uploadDir      string
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCaptionConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	captioner vision.Captioner,
	uploadDir string,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &captionConsumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		captioner:      captioner,
		uploadDir:      uploadDir,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *captionConsumerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.process(ctx, msg)
			// Captioning is best-effort; the placeholder description stays
			// if a job fails, so there is nothing to redeliver.
			msg.Ack()
		}
	}()

	return nil
}

func (s *captionConsumerService) process(ctx context.Context, msg *message.Message) {
	var job dto.CaptionPhotoMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		s.logger.Error("CaptionConsumer", "malformed caption job", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	photo, err := uow.PhotoRepository().FindOne(ctx, specification.ByID{ID: job.PhotoId})
	if err != nil {
		s.logger.Error("CaptionConsumer", "failed to load photo", map[string]interface{}{
			"photo_id": job.PhotoId,
			"error":    err.Error(),
		})
		return
	}
	if photo == nil {
		// Deleted between upload and captioning.
		return
	}

	localPath := filepath.Join(s.uploadDir, strings.TrimPrefix(photo.Path, "/uploads/"))
	imageData, err := os.ReadFile(localPath)
	if err != nil {
		s.logger.Error("CaptionConsumer", "failed to read photo file", map[string]interface{}{
			"photo_id": job.PhotoId,
			"path":     localPath,
			"error":    err.Error(),
		})
		return
	}

	caption, err := s.captioner.Caption(ctx, constant.PhotoCaptionPrompt, imageData, mimeTypeForFile(localPath))
	if err != nil {
		s.logger.Warn("CaptionConsumer", "caption generation failed", map[string]interface{}{
			"photo_id": job.PhotoId,
			"error":    err.Error(),
		})
		return
	}
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return
	}

	if err := uow.PhotoRepository().UpdateDescription(ctx, job.PhotoId, caption); err != nil {
		s.logger.Error("CaptionConsumer", "failed to store caption", map[string]interface{}{
			"photo_id": job.PhotoId,
			"error":    err.Error(),
		})
		return
	}

	s.logger.Info("CaptionConsumer", "photo captioned", map[string]interface{}{
		"photo_id": job.PhotoId,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypePhotoCaptioned,
			Data: map[string]interface{}{
				"photo_id": job.PhotoId,
				"diary_id": photo.DiaryId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CaptionConsumer", "failed to publish event", map[string]interface{}{
				"photo_id": job.PhotoId,
				"error":    err.Error(),
			})
		}
	}
}

func mimeTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
