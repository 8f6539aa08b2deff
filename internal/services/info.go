package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bmcquade/lifedesk-backend/internal/apierr"
	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/repos"
	"github.com/bmcquade/lifedesk-backend/internal/types"
)

type InfoInput struct {
	User        uuid.UUID
	Title       string
	Description string
}

type InfoService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.InfoWithUser, error)
	Create(ctx context.Context, tx *gorm.DB, input InfoInput) (string, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, title, description string) (string, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (string, error)
}

type infoService struct {
	db       *gorm.DB
	log      *logger.Logger
	infoRepo repos.RecordRepo[types.Info]
	userRepo repos.UserRepo
}

func NewInfoService(
	db *gorm.DB,
	baseLog *logger.Logger,
	infoRepo repos.RecordRepo[types.Info],
	userRepo repos.UserRepo,
) InfoService {
	return &infoService{
		db:       db,
		log:      baseLog.With("service", "InfoService"),
		infoRepo: infoRepo,
		userRepo: userRepo,
	}
}

func (s *infoService) List(ctx context.Context, tx *gorm.DB) ([]*types.InfoWithUser, error) {
	info, err := s.infoRepo.GetAll(ctx, tx)
	if err != nil {
		s.log.Warn("List: load info failed", "error", err)
		return nil, err
	}
	if len(info) == 0 {
		return nil, apierr.NotFound("No info found")
	}

	usernames, err := resolveOwners(ctx, tx, s.userRepo, info)
	if err != nil {
		s.log.Warn("List: resolve owners failed", "error", err)
		return nil, err
	}

	enriched := make([]*types.InfoWithUser, 0, len(info))
	for _, note := range info {
		enriched = append(enriched, &types.InfoWithUser{
			Info:     *note,
			Username: usernameFor(usernames, note.UserID),
		})
	}
	return enriched, nil
}

func (s *infoService) Create(ctx context.Context, tx *gorm.DB, input InfoInput) (string, error) {
	if input.User == uuid.Nil || input.Title == "" || input.Description == "" {
		return "", apierr.Validation("All fields are required")
	}

	note := &types.Info{
		UserID:      input.User,
		Title:       input.Title,
		Description: input.Description,
	}
	if _, err := s.infoRepo.Create(ctx, tx, note); err != nil {
		s.log.Warn("Create: store write failed", "error", err)
		return "", err
	}
	return "New info created", nil
}

// Update replaces title and description only; the owner set at create time
// is kept.
func (s *infoService) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, title, description string) (string, error) {
	if id == uuid.Nil || title == "" || description == "" {
		return "", apierr.Validation("All fields are required")
	}

	note, err := s.infoRepo.GetByID(ctx, tx, id)
	if err != nil {
		s.log.Warn("Update: load info failed", "error", err, "info_id", id)
		return "", err
	}
	if note == nil {
		return "", apierr.NotFound("Info not found")
	}

	note.Title = title
	note.Description = description

	updated, err := s.infoRepo.Save(ctx, tx, note)
	if err != nil {
		s.log.Warn("Update: store write failed", "error", err, "info_id", id)
		return "", err
	}
	return fmt.Sprintf("'%s' updated", updated.Title), nil
}

func (s *infoService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", apierr.Validation("Info ID required")
	}

	note, err := s.infoRepo.GetByID(ctx, tx, id)
	if err != nil {
		s.log.Warn("Delete: load info failed", "error", err, "info_id", id)
		return "", err
	}
	if note == nil {
		return "", apierr.NotFound("Info not found")
	}

	if err := s.infoRepo.Delete(ctx, tx, note); err != nil {
		s.log.Warn("Delete: store delete failed", "error", err, "info_id", id)
		return "", err
	}
	return fmt.Sprintf("Info '%s' with ID %s deleted", note.Title, note.ID), nil
}
