package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tourism-backend/configs"
	"tourism-backend/entity"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "api.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Favorite{},
		&entity.ScenicCategory{}, &entity.ScenicSpot{}, &entity.ScenicImage{},
		&entity.RouteCategory{}, &entity.Route{}, &entity.RouteItinerary{},
		&entity.Hotel{}, &entity.RoomType{},
		&entity.FoodCategory{}, &entity.Food{}, &entity.FoodImage{},
		&entity.NewsCategory{}, &entity.News{},
		&entity.Comment{},
		&entity.CheckIn{}, &entity.CheckInPhoto{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.PlanQuery{},
	))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	RegisterRoutes(r, db, nil, cfg) // nil redis: cache middleware passes through

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	w, _ := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "password": "secret123", "nickname": "测试用户",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func staffLogin(t *testing.T, r *gin.Engine, db *gorm.DB) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Email: "staff@example.com", Password: string(hash), Nickname: "运营", Role: "staff",
	}).Error)

	w, out := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "staff@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	return out["token"].(string)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	r, db := setupServer(t)

	spot := entity.ScenicSpot{Name: "白石山", TicketPrice: decimal.NewFromInt(120)}
	require.NoError(t, db.Create(&spot).Error)

	token := registerAndLogin(t, r, "buyer@example.com")

	// unauthenticated order creation is rejected
	w, _ := doJSON(t, r, http.MethodPost, "/orders", "", gin.H{})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, out := doJSON(t, r, http.MethodPost, "/orders", token, gin.H{
		"itemType": "scenic", "itemId": spot.ID, "quantity": 2,
		"contactName": "张三", "contactPhone": "13800000000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := out["data"].(map[string]any)
	sn := data["orderSn"].(string)
	payURL := data["payUrl"].(string)
	require.Equal(t, "/orders/"+sn+"/pay", payURL)

	// callback without the success flag confirms nothing
	w, _ = doJSON(t, r, http.MethodGet, payURL, token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, payURL+"?success=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// duplicate callback delivery stays a success
	w, _ = doJSON(t, r, http.MethodGet, payURL+"?success=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// a paid order can no longer be cancelled
	w, _ = doJSON(t, r, http.MethodPost, "/orders/"+sn+"/cancel", token, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w, out = doJSON(t, r, http.MethodGet, "/orders/"+sn, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "paid", out["data"].(map[string]any)["status"])

	// another account cannot read the order
	other := registerAndLogin(t, r, "other@example.com")
	w, _ = doJSON(t, r, http.MethodGet, "/orders/"+sn, other, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffGate(t *testing.T) {
	r, db := setupServer(t)

	user := registerAndLogin(t, r, "user@example.com")
	w, _ := doJSON(t, r, http.MethodGet, "/admin/dashboard", user, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	staff := staffLogin(t, r, db)
	w, out := doJSON(t, r, http.MethodGet, "/admin/dashboard", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["ok"])
}

func TestPublicCatalogAndAssistant(t *testing.T) {
	r, db := setupServer(t)

	require.NoError(t, db.Create(&entity.ScenicSpot{Name: "野三坡", IsHot: true}).Error)

	w, out := doJSON(t, r, http.MethodGet, "/scenic/spots", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["ok"])

	// assistant accepts anonymous callers
	w, out = doJSON(t, r, http.MethodPost, "/assistant/plan", "", gin.H{
		"scenicSpots": []string{"野三坡"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := out["data"].(map[string]any)
	require.NotEmpty(t, data["fullResponse"])
}
