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

type ContactInput struct {
	User        uuid.UUID
	Name        string
	Phone       string
	Email       string
	Description string
}

func (in ContactInput) complete() bool {
	return in.User != uuid.Nil && in.Name != "" && in.Phone != "" && in.Email != "" && in.Description != ""
}

type ContactService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.ContactWithUser, error)
	Create(ctx context.Context, tx *gorm.DB, input ContactInput) (string, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, input ContactInput) (string, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (string, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.RecordRepo[types.Contact]
	userRepo    repos.UserRepo
}

func NewContactService(
	db *gorm.DB,
	baseLog *logger.Logger,
	contactRepo repos.RecordRepo[types.Contact],
	userRepo repos.UserRepo,
) ContactService {
	return &contactService{
		db:          db,
		log:         baseLog.With("service", "ContactService"),
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

func (s *contactService) List(ctx context.Context, tx *gorm.DB) ([]*types.ContactWithUser, error) {
	contacts, err := s.contactRepo.GetAll(ctx, tx)
	if err != nil {
		s.log.Warn("List: load contacts failed", "error", err)
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, apierr.NotFound("No contacts found")
	}

	usernames, err := resolveOwners(ctx, tx, s.userRepo, contacts)
	if err != nil {
		s.log.Warn("List: resolve owners failed", "error", err)
		return nil, err
	}

	enriched := make([]*types.ContactWithUser, 0, len(contacts))
	for _, contact := range contacts {
		enriched = append(enriched, &types.ContactWithUser{
			Contact:  *contact,
			Username: usernameFor(usernames, contact.UserID),
		})
	}
	return enriched, nil
}

func (s *contactService) Create(ctx context.Context, tx *gorm.DB, input ContactInput) (string, error) {
	if !input.complete() {
		return "", apierr.Validation("All fields are required")
	}

	contact := &types.Contact{
		UserID:      input.User,
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Description: input.Description,
	}
	if _, err := s.contactRepo.Create(ctx, tx, contact); err != nil {
		s.log.Warn("Create: store write failed", "error", err)
		return "", err
	}
	return "New contact created", nil
}

func (s *contactService) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, input ContactInput) (string, error) {
	if id == uuid.Nil || !input.complete() {
		return "", apierr.Validation("All fields are required")
	}

	contact, err := s.contactRepo.GetByID(ctx, tx, id)
	if err != nil {
		s.log.Warn("Update: load contact failed", "error", err, "contact_id", id)
		return "", err
	}
	if contact == nil {
		return "", apierr.NotFound("Contact not found")
	}

	contact.UserID = input.User
	contact.Name = input.Name
	contact.Phone = input.Phone
	contact.Email = input.Email
	contact.Description = input.Description

	updated, err := s.contactRepo.Save(ctx, tx, contact)
	if err != nil {
		s.log.Warn("Update: store write failed", "error", err, "contact_id", id)
		return "", err
	}
	return fmt.Sprintf("'%s' updated", updated.Name), nil
}

func (s *contactService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", apierr.Validation("Contact ID required")
	}

	contact, err := s.contactRepo.GetByID(ctx, tx, id)
	if err != nil {
		s.log.Warn("Delete: load contact failed", "error", err, "contact_id", id)
		return "", err
	}
	if contact == nil {
		return "", apierr.NotFound("Contact not found")
	}

	if err := s.contactRepo.Delete(ctx, tx, contact); err != nil {
		s.log.Warn("Delete: store delete failed", "error", err, "contact_id", id)
		return "", err
	}
	// Message fields come from the record loaded before deletion, not from
	// the delete result.
	return fmt.Sprintf("Contact '%s' with ID %s deleted", contact.Name, contact.ID), nil
}
