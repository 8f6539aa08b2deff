package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bmcquade/lifedesk-backend/internal/apierr"
	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/repos"
	"github.com/bmcquade/lifedesk-backend/internal/types"
)

type IncomeInput struct {
	User        uuid.UUID
	Amount      float64
	Title       string
	Description string
}

// complete treats a zero amount as missing, matching the required-field
// semantics of the wire contract.
func (in IncomeInput) complete() bool {
	return in.User != uuid.Nil && in.Amount != 0 && in.Title != "" && in.Description != ""
}

type IncomeService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.IncomeWithUser, error)
	Create(ctx context.Context, tx *gorm.DB, input IncomeInput) (string, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, input IncomeInput) (string, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (string, error)
}

type incomeService struct {
	db         *gorm.DB
	log        *logger.Logger
	incomeRepo repos.RecordRepo[types.Income]
	userRepo   repos.UserRepo
}

func NewIncomeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	incomeRepo repos.RecordRepo[types.Income],
	userRepo repos.UserRepo,
) IncomeService {
	return &incomeService{
		db:         db,
		log:        baseLog.With("service", "IncomeService"),
		incomeRepo: incomeRepo,
		userRepo:   userRepo,
	}
}

func (s *incomeService) List(ctx context.Context, tx *gorm.DB) ([]*types.IncomeWithUser, error) {
	income, err := s.incomeRepo.GetAll(ctx, tx)
	if err != nil {
		s.log.Warn("List: load income failed", "error", err)
		return nil, err
	}
	if len(income) == 0 {
		return nil, apierr.NotFound("No income found")
	}

	usernames, err := resolveOwners(ctx, tx, s.userRepo, income)
	if err != nil {
		s.log.Warn("List: resolve owners failed", "error", err)
		return nil, err
	}

	enriched := make([]*types.IncomeWithUser, 0, len(income))
	for _, entry := range income {
		enriched = append(enriched, &types.IncomeWithUser{
			Income:   *entry,
			Username: usernameFor(usernames, entry.UserID),
		})
	}
	return enriched, nil
}

func (s *incomeService) Create(ctx context.Context, tx *gorm.DB, input IncomeInput) (string, error) {
	if !input.complete() {
		return "", apierr.Validation("All fields are required")
	}

	// Case-sensitive exact match on title.
	duplicate, err := s.incomeRepo.GetByField(ctx, tx, "title", input.Title)
	if err != nil {
		s.log.Warn("Create: duplicate check failed", "error", err)
		return "", err
	}
	if duplicate != nil {
		return "", apierr.Conflict("Duplicate income title")
	}

	entry := &types.Income{
		UserID:      input.User,
		Amount:      input.Amount,
		Title:       input.Title,
		Description: input.Description,
	}
	if _, err := s.incomeRepo.Create(ctx, tx, entry); err != nil {
		// The unique index backstops the pre-check when two creates race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apierr.Conflict("Duplicate income title")
		}
		s.log.Warn("Create: store write failed", "error", err)
		return "", err
	}
	return "New income created", nil
}

func (s *incomeService) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, input IncomeInput) (string, error) {
	if id == uuid.Nil || !input.complete() {
		return "", apierr.Validation("All fields are required")
	}

	entry, err := s.incomeRepo.GetByID(ctx, tx, id)
	if err != nil {
		s.log.Warn("Update: load income failed", "error", err, "income_id", id)
		return "", err
	}
	if entry == nil {
		return "", apierr.NotFound("Income not found")
	}

	// A record may keep its own title; only a different record holding it is
	// a conflict.
	duplicate, err := s.incomeRepo.GetByField(ctx, tx, "title", input.Title)
	if err != nil {
		s.log.Warn("Update: duplicate check failed", "error", err, "income_id", id)
		return "", err
	}
	if duplicate != nil && duplicate.ID != id {
		return "", apierr.Conflict("Duplicate income title")
	}

	entry.UserID = input.User
	entry.Amount = input.Amount
	entry.Title = input.Title
	entry.Description = input.Description

	updated, err := s.incomeRepo.Save(ctx, tx, entry)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apierr.Conflict("Duplicate income title")
		}
		s.log.Warn("Update: store write failed", "error", err, "income_id", id)
		return "", err
	}
	return fmt.Sprintf("'%s' updated", updated.Title), nil
}

func (s *incomeService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", apierr.Validation("Income ID required")
	}

	entry, err := s.incomeRepo.GetByID(ctx, tx, id)
	if err != nil {
		s.log.Warn("Delete: load income failed", "error", err, "income_id", id)
		return "", err
	}
	if entry == nil {
		return "", apierr.NotFound("Income not found")
	}

	if err := s.incomeRepo.Delete(ctx, tx, entry); err != nil {
		s.log.Warn("Delete: store delete failed", "error", err, "income_id", id)
		return "", err
	}
	return fmt.Sprintf("Income '%s' with ID %s deleted", entry.Title, entry.ID), nil
}
