package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tourism-backend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
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
	)
}
