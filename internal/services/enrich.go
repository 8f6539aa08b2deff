package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bmcquade/lifedesk-backend/internal/repos"
	"github.com/bmcquade/lifedesk-backend/internal/types"
)

// UnknownUsername is attached to a record whose owner is absent or does not
// resolve; enrichment never fails a list request.
const UnknownUsername = "Unknown"

// resolveOwners batches the distinct owner set of a record listing into a
// single user query and returns an id -> username map. Owners missing from
// the map fall back to UnknownUsername at the call site.
func resolveOwners[R types.Record](ctx context.Context, tx *gorm.DB, userRepo repos.UserRepo, records []R) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(records))
	ids := make([]uuid.UUID, 0, len(records))
	for _, record := range records {
		ownerID := record.OwnerID()
		if ownerID == uuid.Nil {
			continue
		}
		if _, ok := seen[ownerID]; ok {
			continue
		}
		seen[ownerID] = struct{}{}
		ids = append(ids, ownerID)
	}

	usernames := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	users, err := userRepo.GetByIDs(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user == nil {
			continue
		}
		usernames[user.ID] = user.Username
	}
	return usernames, nil
}

func usernameFor(usernames map[uuid.UUID]string, ownerID uuid.UUID) string {
	if ownerID == uuid.Nil {
		return UnknownUsername
	}
	if name, ok := usernames[ownerID]; ok && name != "" {
		return name
	}
	return UnknownUsername
}
