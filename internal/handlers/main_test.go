package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/repos"
	"github.com/bmcquade/lifedesk-backend/internal/services"
	"github.com/bmcquade/lifedesk-backend/internal/types"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	owner  *types.User
}

func newTestEnv(t *testing.T, statusCfg StatusConfig) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.Contact{}, &types.Income{}, &types.Info{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	contactRepo := repos.NewRecordRepo[types.Contact](db, log, "ContactRepo")
	incomeRepo := repos.NewRecordRepo[types.Income](db, log, "IncomeRepo")
	infoRepo := repos.NewRecordRepo[types.Info](db, log, "InfoRepo")
	userRepo := repos.NewUserRepo(db, log)

	contactHandler := NewContactHandler(log, services.NewContactService(db, log, contactRepo, userRepo), statusCfg)
	incomeHandler := NewIncomeHandler(log, services.NewIncomeService(db, log, incomeRepo, userRepo), statusCfg)
	infoHandler := NewInfoHandler(log, services.NewInfoService(db, log, infoRepo, userRepo), statusCfg)

	router := gin.New()
	router.GET("/contact", contactHandler.List)
	router.POST("/contact", contactHandler.Create)
	router.PATCH("/contact", contactHandler.Update)
	router.DELETE("/contact", contactHandler.Delete)
	router.GET("/income", incomeHandler.List)
	router.POST("/income", incomeHandler.Create)
	router.PATCH("/income", incomeHandler.Update)
	router.DELETE("/income", incomeHandler.Delete)
	router.GET("/info", infoHandler.List)
	router.POST("/info", infoHandler.Create)
	router.PATCH("/info", infoHandler.Update)
	router.DELETE("/info", infoHandler.Delete)

	owner := &types.User{ID: uuid.New(), Username: "u1"}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	return &testEnv{db: db, router: router, owner: owner}
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode message body %q: %v", rec.Body.String(), err)
	}
	return body.Message
}

func decodeText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var text string
	if err := json.Unmarshal(rec.Body.Bytes(), &text); err != nil {
		t.Fatalf("decode text body %q: %v", rec.Body.String(), err)
	}
	return text
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: want=%d got=%d body=%s", want, rec.Code, rec.Body.String())
	}
}
