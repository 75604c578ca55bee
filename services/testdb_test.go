package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tourism-backend/entity"
)

// openTestDB opens a throwaway file-backed sqlite database. _txlock=immediate
// makes every transaction take the write lock up front, so concurrent booking
// transactions queue on busy_timeout instead of deadlocking mid-transaction.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "test.db"))
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
	return db
}
