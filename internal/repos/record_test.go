package repos

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.Contact{}, &types.Income{}, &types.Info{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestRecordRepoRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepo[types.Info](db, newTestLogger(), "InfoRepo")
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Info{
		UserID:      uuid.New(),
		Title:       "Gate code",
		Description: "#4821",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected id assigned on create")
	}

	fetched, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched == nil || fetched.Title != "Gate code" {
		t.Fatalf("unexpected fetch result: %+v", fetched)
	}

	fetched.Description = "#9913"
	if _, err := repo.Save(ctx, nil, fetched); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].Description != "#9913" {
		t.Fatalf("save not persisted: %+v", all)
	}

	if err := repo.Delete(ctx, nil, fetched); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if gone != nil {
		t.Fatalf("record survived delete: %+v", gone)
	}
}

func TestRecordRepoGetByIDMiss(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepo[types.Contact](db, newTestLogger(), "ContactRepo")

	// A miss is a nil record, not an error.
	record, err := repo.GetByID(context.Background(), nil, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record, got %+v", record)
	}
}

func TestRecordRepoGetByField(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepo[types.Income](db, newTestLogger(), "IncomeRepo")
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, &types.Income{
		UserID:      uuid.New(),
		Amount:      900,
		Title:       "Consulting",
		Description: "Q3 retainer",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	hit, err := repo.GetByField(ctx, nil, "title", "Consulting")
	if err != nil {
		t.Fatalf("GetByField: %v", err)
	}
	if hit == nil || hit.Title != "Consulting" {
		t.Fatalf("unexpected hit: %+v", hit)
	}

	miss, err := repo.GetByField(ctx, nil, "title", "consulting")
	if err != nil {
		t.Fatalf("GetByField miss: %v", err)
	}
	if miss != nil {
		t.Fatalf("case-sensitive match expected, got %+v", miss)
	}
}

func TestRecordRepoDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepo[types.Income](db, newTestLogger(), "IncomeRepo")
	ctx := context.Background()

	entry := types.Income{
		UserID:      uuid.New(),
		Amount:      100,
		Title:       "Dividends",
		Description: "Broker payout",
	}
	first := entry
	if _, err := repo.Create(ctx, nil, &first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := entry
	_, err := repo.Create(ctx, nil, &second)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey from the unique title index, got %v", err)
	}
}

func TestUserRepoGetByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db, newTestLogger())
	ctx := context.Background()

	alice := &types.User{ID: uuid.New(), Username: "alice"}
	bob := &types.User{ID: uuid.New(), Username: "bob"}
	for _, user := range []*types.User{alice, bob} {
		if err := db.Create(user).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	users, err := repo.GetByIDs(ctx, nil, []uuid.UUID{alice.ID, uuid.New()})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("unexpected result: %+v", users)
	}

	none, err := repo.GetByIDs(ctx, nil, nil)
	if err != nil {
		t.Fatalf("GetByIDs empty: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no users for empty id set, got %+v", none)
	}
}
