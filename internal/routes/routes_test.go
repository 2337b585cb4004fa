package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hirehub/backend/internal/handlers"
	"github.com/hirehub/backend/internal/models"
	"github.com/hirehub/backend/internal/services"
	"github.com/hirehub/backend/internal/storage"
	"github.com/hirehub/backend/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testJWTSecret      = "test-jwt-secret"
	testIdentitySecret = "test-identity-secret"
)

type okVerifier struct{}

func (okVerifier) Verify(_ []byte, _ http.Header) error { return nil }

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.JobApplication{},
	))

	uploader, err := storage.NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	companyService := services.NewCompanyService(db, uploader)
	jobService := services.NewJobService(db)
	userService := services.NewUserService(db, uploader)

	router := SetupRoutes(Options{
		DB:                db,
		CompanyHandler:    handlers.NewCompanyHandler(companyService, jobService, testJWTSecret),
		JobHandler:        handlers.NewJobHandler(jobService),
		UserHandler:       handlers.NewUserHandler(userService),
		WebhookHandler:    handlers.NewWebhookHandler(okVerifier{}, webhook.NewSyncer(db)),
		JWTSecret:         testJWTSecret,
		IdentityJWTSecret: testIdentitySecret,
	})
	return router, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Jobs    json.RawMessage `json:"jobs"`
	Job     json.RawMessage `json:"job"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func registerCompany(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", name))
	require.NoError(t, mw.WriteField("email", email))
	require.NoError(t, mw.WriteField("password", "hunter2"))
	fw, err := mw.CreateFormFile("image", "logo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("logo-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/company/register", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	env := decode(t, w)
	require.True(t, env.Success, "register failed: %s", env.Message)
	require.NotEmpty(t, env.Token)
	return env.Token
}

func identityToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testIdentitySecret))
	require.NoError(t, err)
	return token
}

func postJSON(router *gin.Engine, method, path, token, bearer string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("token", token)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router, _ := newTestServer(t)
	registerCompany(t, router, "Acme", "acme@example.com")

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("name", "Imposter")
	_ = mw.WriteField("email", "acme@example.com")
	_ = mw.WriteField("password", "other")
	fw, _ := mw.CreateFormFile("image", "logo.png")
	_, _ = fw.Write([]byte("x"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/company/register", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Company already registered", env.Message)
}

func TestLoginMessages(t *testing.T) {
	router, _ := newTestServer(t)
	registerCompany(t, router, "Acme", "acme@example.com")

	w := postJSON(router, http.MethodPost, "/api/company/login", "", "", gin.H{
		"email": "acme@example.com", "password": "wrong",
	})
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Incorrect password. Please try again.", env.Message)

	w = postJSON(router, http.MethodPost, "/api/company/login", "", "", gin.H{
		"email": "ghost@example.com", "password": "hunter2",
	})
	env = decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "No account found with this email. Please sign up first.", env.Message)

	w = postJSON(router, http.MethodPost, "/api/company/login", "", "", gin.H{
		"email": "acme@example.com", "password": "hunter2",
	})
	env = decode(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Token)
}

func TestPublicJobListHidesInvisible(t *testing.T) {
	router, db := newTestServer(t)
	token := registerCompany(t, router, "Acme", "acme@example.com")

	w := postJSON(router, http.MethodPost, "/api/company/post-job", token, "", gin.H{
		"title": "Backend Engineer", "description": "Build APIs", "location": "Berlin", "salary": 90000,
	})
	require.True(t, decode(t, w).Success)

	w = postJSON(router, http.MethodPost, "/api/company/post-job", token, "", gin.H{
		"title": "Hidden Role", "description": "Secret", "salary": 1,
	})
	require.True(t, decode(t, w).Success)

	var hidden models.Job
	require.NoError(t, db.First(&hidden, "title = ?", "Hidden Role").Error)
	w = postJSON(router, http.MethodPost, "/api/company/change-visibility", token, "", gin.H{"id": hidden.ID})
	require.True(t, decode(t, w).Success)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	env := decode(t, rec)
	require.True(t, env.Success)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(env.Jobs, &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0]["title"])
}

func TestApplyFlow(t *testing.T) {
	router, db := newTestServer(t)
	token := registerCompany(t, router, "Acme", "acme@example.com")

	w := postJSON(router, http.MethodPost, "/api/company/post-job", token, "", gin.H{
		"title": "Backend Engineer", "description": "Build APIs", "salary": 90000,
	})
	require.True(t, decode(t, w).Success)

	var job models.Job
	require.NoError(t, db.First(&job, "title = ?", "Backend Engineer").Error)
	require.NoError(t, db.Create(&models.User{ID: "user_1", Name: "Ada", Email: "ada@example.com"}).Error)

	bearer := identityToken(t, "user_1")

	w = postJSON(router, http.MethodPost, "/api/users/apply-job", "", bearer, gin.H{"jobId": job.ID})
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Job Application Submitted Successfully", env.Message)

	var app models.JobApplication
	require.NoError(t, db.First(&app, "user_id = ?", "user_1").Error)
	assert.Equal(t, models.StatusPending, app.Status)

	// Second attempt: failure envelope, still exactly one record.
	w = postJSON(router, http.MethodPost, "/api/users/apply-job", "", bearer, gin.H{"jobId": job.ID})
	env = decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "You have already applied for this job", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.JobApplication{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRoutesRequireBearerToken(t *testing.T) {
	router, _ := newTestServer(t)

	w := postJSON(router, http.MethodPost, "/api/users/apply-job", "", "", gin.H{"jobId": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users/applications", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompanyRoutesRequireToken(t *testing.T) {
	router, _ := newTestServer(t)

	w := postJSON(router, http.MethodPost, "/api/company/post-job", "", "", gin.H{
		"title": "x", "description": "y",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(router, http.MethodPost, "/api/company/post-job", "garbage-token", "", gin.H{
		"title": "x", "description": "y",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetJobByID(t *testing.T) {
	router, db := newTestServer(t)
	token := registerCompany(t, router, "Acme", "acme@example.com")

	w := postJSON(router, http.MethodPost, "/api/company/post-job", token, "", gin.H{
		"title": "Backend Engineer", "description": "Build APIs",
	})
	require.True(t, decode(t, w).Success)

	var job models.Job
	require.NoError(t, db.First(&job, "title = ?", "Backend Engineer").Error)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+strconv.FormatUint(uint64(job.ID), 10), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	env := decode(t, rec)
	assert.True(t, env.Success)

	req = httptest.NewRequest(http.MethodGet, "/api/jobs/99999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	env = decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Job not found", env.Message)
}
