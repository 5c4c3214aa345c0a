package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jawhara/restaurant-backend/internal/models"
	"github.com/jawhara/restaurant-backend/internal/recommend"
	"github.com/jawhara/restaurant-backend/internal/service"
)

// testEnv bundles the router and services backing a handler test.
type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Auth   *service.AuthService
}

// fakeUploader satisfies ImageUploader without touching S3.
type fakeUploader struct {
	lastFilename string
	url          string
	err          error
}

func (f *fakeUploader) UploadImage(_ context.Context, _ []byte, filename, _ string) (string, error) {
	f.lastFilename = filename
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func setupTest(t *testing.T, images ImageUploader) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.MealCategory{},
		&models.Meal{},
		&models.Order{},
		&models.Table{},
		&models.Reservation{},
	))

	log := zap.NewNop()
	auth := service.NewAuthService(db, "test-secret")
	recs := service.NewRecommendationService(db, recommend.DefaultRules(), nil, 5, log)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(auth, log).RegisterRoutes(v1)
	NewMealHandler(service.NewMealService(db), auth, images, recs, log).RegisterRoutes(v1)
	NewCustomerHandler(service.NewCustomerService(db), auth, images, log).RegisterRoutes(v1)
	NewOrderHandler(service.NewOrderService(db), auth, recs, log).RegisterRoutes(v1)
	NewTableHandler(service.NewTableService(db), auth, log).RegisterRoutes(v1)
	NewReservationHandler(service.NewReservationService(db), auth, log).RegisterRoutes(v1)
	NewRecommendHandler(recs, nil, log).RegisterRoutes(v1)

	return &testEnv{Router: router, DB: db, Auth: auth}
}

// registerCustomer creates an account and returns its bearer token and id.
func (e *testEnv) registerCustomer(t *testing.T, email string) (string, uint) {
	t.Helper()
	token, customer, err := e.Auth.Register(service.RegisterInput{
		FirstName: "Test",
		Email:     email,
		Password:  "pass1234",
	})
	require.NoError(t, err)
	return token, customer.ID
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doForm(t *testing.T, method, path, token string, fields map[string]string, fileField, filename string, fileData []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
