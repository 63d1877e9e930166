package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/handler"
	"github.com/clubhub/clubhub-backend/internal/migration"
	"github.com/clubhub/clubhub-backend/internal/repository"
	"github.com/clubhub/clubhub-backend/internal/routes"
	"github.com/clubhub/clubhub-backend/internal/service"
	"github.com/clubhub/clubhub-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ContentAPISuite exercises the content engine through the HTTP surface.
type ContentAPISuite struct {
	suite.Suite
	db          *gorm.DB
	router      *gin.Engine
	jwtManager  *jwt.Manager
	adminToken  string
	memberToken string
}

func TestContentAPISuite(t *testing.T) {
	suite.Run(t, new(ContentAPISuite))
}

func (s *ContentAPISuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.db = db
	s.Require().NoError(migration.Run(db))

	s.jwtManager = jwt.NewManager("test-secret-key-for-integration-tests", 900, 86400)

	blockRepo := repository.NewContentBlockRepository(db)
	revRepo := repository.NewContentRevisionRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	faqRepo := repository.NewFaqRepository(db)
	eventRepo := repository.NewEventRepository(db)
	joinRepo := repository.NewJoinRequestRepository(db)

	contentSvc := service.NewContentService(db, blockRepo, revRepo, nil)
	authSvc := service.NewAuthService(memberRepo, s.jwtManager)
	faqSvc := service.NewFaqService(faqRepo, nil)
	eventSvc := service.NewEventService(eventRepo, nil)
	joinSvc := service.NewJoinRequestService(joinRepo)

	s.router = gin.New()
	routes.Setup(s.router, &routes.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Public:  handler.NewPublicHandler(contentSvc, faqSvc, eventSvc, joinSvc),
		Content: handler.NewContentHandler(contentSvc),
		Faq:     handler.NewFaqHandler(faqSvc),
		Event:   handler.NewEventHandler(eventSvc),
		Join:    handler.NewJoinRequestHandler(joinSvc),
	}, s.jwtManager)

	s.seedMembers()
}

func (s *ContentAPISuite) seedMembers() {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	admin := &domain.Member{
		Username: "admin", Email: "admin@example.com",
		Password: string(hashed), Nickname: "Admin",
		Level: 10, Status: domain.MemberStatusActive,
	}
	s.db.Create(admin)
	member := &domain.Member{
		Username: "member", Email: "member@example.com",
		Password: string(hashed), Nickname: "Member",
		Level: 1, Status: domain.MemberStatusActive,
	}
	s.db.Create(member)

	var err error
	s.adminToken, err = s.jwtManager.GenerateAccessToken(fmt.Sprint(admin.ID), admin.Nickname, int(admin.Level))
	s.Require().NoError(err)
	s.memberToken, err = s.jwtManager.GenerateAccessToken(fmt.Sprint(member.ID), member.Nickname, int(member.Level))
	s.Require().NoError(err)
}

func (s *ContentAPISuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ContentAPISuite) decodeData(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func (s *ContentAPISuite) TestDraftPublishRollbackFlow() {
	key := "landing.hero.primary"

	// Create draft
	w := s.request(http.MethodPut, "/api/v1/admin/content/blocks/"+key, s.adminToken, gin.H{
		"page": "landing", "section": "hero", "title": "Hero", "body": "first body",
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(1), s.decodeData(w)["version"])

	// Not public yet
	w = s.request(http.MethodGet, "/api/v1/pages/landing/blocks", "", nil)
	s.Equal(http.StatusOK, w.Code)
	var listResp struct {
		Data []map[string]interface{} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	s.Empty(listResp.Data)

	// Publish
	w = s.request(http.MethodPost, "/api/v1/admin/content/blocks/"+key+"/publish", s.adminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(2), s.decodeData(w)["version"])

	// Public now, body only — no draft leakage
	w = s.request(http.MethodGet, "/api/v1/pages/landing/blocks", "", nil)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	s.Require().Len(listResp.Data, 1)
	s.Equal("first body", listResp.Data[0]["body"])
	s.NotContains(listResp.Data[0], "draft_body")

	// New draft does not change the live page
	w = s.request(http.MethodPut, "/api/v1/admin/content/blocks/"+key, s.adminToken, gin.H{
		"body": "second body",
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(3), s.decodeData(w)["version"])

	w = s.request(http.MethodGet, "/api/v1/pages/landing/blocks", "", nil)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	s.Require().Len(listResp.Data, 1)
	s.Equal("first body", listResp.Data[0]["body"])

	// History lists three revisions, newest first
	w = s.request(http.MethodGet, "/api/v1/admin/content/blocks/"+key+"/revisions", s.adminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	s.Require().Len(listResp.Data, 3)
	s.Equal(float64(3), listResp.Data[0]["version"])

	// Rollback to version 1
	w = s.request(http.MethodPost, "/api/v1/admin/content/blocks/"+key+"/rollback", s.adminToken, gin.H{
		"version": 1,
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(4), s.decodeData(w)["version"])

	w = s.request(http.MethodGet, "/api/v1/pages/landing/blocks", "", nil)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	s.Require().Len(listResp.Data, 1)
	s.Equal("first body", listResp.Data[0]["body"])

	// Unpublish hides it again without bumping the version
	w = s.request(http.MethodPost, "/api/v1/admin/content/blocks/"+key+"/unpublish", s.adminToken, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/v1/admin/content/blocks/"+key, s.adminToken, nil)
	data := s.decodeData(w)
	s.Equal(float64(4), data["version"])
	s.Equal("draft", data["status"])
	s.Nil(data["published_body"])
}

func (s *ContentAPISuite) TestAdminGate() {
	// No token
	w := s.request(http.MethodPut, "/api/v1/admin/content/blocks/x.y.z", "", gin.H{"body": "b"})
	s.Equal(http.StatusUnauthorized, w.Code)

	// Non-admin token
	w = s.request(http.MethodPut, "/api/v1/admin/content/blocks/x.y.z", s.memberToken, gin.H{"body": "b"})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ContentAPISuite) TestValidationAndNotFound() {
	// Creation without classification fields
	w := s.request(http.MethodPut, "/api/v1/admin/content/blocks/new.block.key", s.adminToken, gin.H{
		"body": "b",
	})
	s.Equal(http.StatusBadRequest, w.Code)

	// Publish of unknown key
	w = s.request(http.MethodPost, "/api/v1/admin/content/blocks/no.such.key/publish", s.adminToken, nil)
	s.Equal(http.StatusNotFound, w.Code)

	// Rollback to unknown revision
	w = s.request(http.MethodPut, "/api/v1/admin/content/blocks/val.test.key", s.adminToken, gin.H{
		"page": "val", "section": "test", "title": "t", "body": "b",
	})
	s.Equal(http.StatusOK, w.Code)
	w = s.request(http.MethodPost, "/api/v1/admin/content/blocks/val.test.key/rollback", s.adminToken, gin.H{
		"version": 99,
	})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ContentAPISuite) TestLoginAndMe() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "admin", "password": "password123",
	})
	s.Equal(http.StatusOK, w.Code)
	data := s.decodeData(w)
	s.NotEmpty(data["access_token"])

	w = s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "admin", "password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/api/v1/auth/me", s.adminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("admin", s.decodeData(w)["username"])
}

func (s *ContentAPISuite) TestJoinRequestFlow() {
	w := s.request(http.MethodPost, "/api/v1/join-requests", "", gin.H{
		"name": "Jo Doe", "email": "jo@example.com", "message": "let me in",
	})
	s.Equal(http.StatusCreated, w.Code)
	id := s.decodeData(w)["id"]

	w = s.request(http.MethodPost, fmt.Sprintf("/api/v1/admin/join-requests/%v/review", id), s.adminToken, gin.H{
		"approve": true,
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal("approved", s.decodeData(w)["status"])

	// Second review of the same request conflicts
	w = s.request(http.MethodPost, fmt.Sprintf("/api/v1/admin/join-requests/%v/review", id), s.adminToken, gin.H{
		"approve": false,
	})
	s.Equal(http.StatusConflict, w.Code)
}
