package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bmcquade/lifedesk-backend/internal/apierr"
	"github.com/bmcquade/lifedesk-backend/internal/repos"
	"github.com/bmcquade/lifedesk-backend/internal/types"
)

func newInfoService(t *testing.T) (InfoService, repos.RecordRepo[types.Info], *types.User) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	infoRepo := repos.NewRecordRepo[types.Info](db, log, "InfoRepo")
	userRepo := repos.NewUserRepo(db, log)
	owner := seedUser(t, db, "kpatel")
	return NewInfoService(db, log, infoRepo, userRepo), infoRepo, owner
}

func TestInfoCreateValidation(t *testing.T) {
	svc, infoRepo, owner := newInfoService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input InfoInput
	}{
		{name: "missing_user", input: InfoInput{Title: "T", Description: "D"}},
		{name: "missing_title", input: InfoInput{User: owner.ID, Description: "D"}},
		{name: "missing_description", input: InfoInput{User: owner.ID, Title: "T"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, nil, tc.input)

			var apiErr *apierr.Error
			if !errors.As(err, &apiErr) || apiErr.Code != apierr.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	all, err := infoRepo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store after failed creates, got %d records", len(all))
	}
}

// Full lifecycle: create, list with enrichment, update, delete, empty listing.
func TestInfoLifecycle(t *testing.T) {
	svc, infoRepo, owner := newInfoService(t)
	ctx := context.Background()

	msg, err := svc.Create(ctx, nil, InfoInput{User: owner.ID, Title: "T", Description: "D"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg != "New info created" {
		t.Fatalf("unexpected create message: %q", msg)
	}

	listed, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 note, got %d", len(listed))
	}
	if listed[0].Username != "kpatel" {
		t.Fatalf("expected username %q, got %q", "kpatel", listed[0].Username)
	}
	id := listed[0].ID

	msg, err = svc.Update(ctx, nil, id, "T2", "D2")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if msg != "'T2' updated" {
		t.Fatalf("unexpected update message: %q", msg)
	}

	// Owner survives a title/description update.
	stored, err := infoRepo.GetByID(ctx, nil, id)
	if err != nil || stored == nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.UserID != owner.ID {
		t.Fatalf("owner changed on update: %s", stored.UserID)
	}

	msg, err = svc.Delete(ctx, nil, id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !strings.Contains(msg, "'T2'") || !strings.Contains(msg, id.String()) {
		t.Fatalf("delete message should carry title and id, got %q", msg)
	}

	_, err = svc.List(ctx, nil)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Code != apierr.CodeNotFound {
		t.Fatalf("expected not-found on empty listing, got %v", err)
	}
	if apiErr.Error() != "No info found" {
		t.Fatalf("unexpected message: %q", apiErr.Error())
	}
}

func TestInfoListUnknownOwner(t *testing.T) {
	svc, _, _ := newInfoService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, nil, InfoInput{User: uuid.New(), Title: "T", Description: "D"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	listed, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listed[0].Username != UnknownUsername {
		t.Fatalf("expected %q, got %q", UnknownUsername, listed[0].Username)
	}
}

func TestInfoUpdateNotFound(t *testing.T) {
	svc, _, _ := newInfoService(t)

	_, err := svc.Update(context.Background(), nil, uuid.New(), "T", "D")

	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Code != apierr.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestInfoDeleteValidation(t *testing.T) {
	svc, _, _ := newInfoService(t)

	_, err := svc.Delete(context.Background(), nil, uuid.Nil)

	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Code != apierr.CodeValidation {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
	if apiErr.Error() != "Info ID required" {
		t.Fatalf("unexpected message: %q", apiErr.Error())
	}
}
