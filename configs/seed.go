package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"tourism-backend/entity"
)

// SeedStaff creates the first staff account from env vars, once.
func SeedStaff() error {
	db := DB()
	email := getEnv("STAFF_EMAIL", "")
	pass := getEnv("STAFF_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding staff: missing STAFF_EMAIL/STAFF_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("staff already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	staff := entity.User{
		Email:    email,
		Password: string(hash),
		Nickname: "Staff",
		Role:     "staff",
	}
	return db.Create(&staff).Error
}

// SeedLookups inserts the default catalog categories.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.ScenicCategory{}, entity.ScenicCategory{Name: "自然景观"})
	db.FirstOrCreate(&entity.ScenicCategory{}, entity.ScenicCategory{Name: "人文古迹"})
	db.FirstOrCreate(&entity.ScenicCategory{}, entity.ScenicCategory{Name: "红色旅游"})

	db.FirstOrCreate(&entity.RouteCategory{}, entity.RouteCategory{Name: "一日游"})
	db.FirstOrCreate(&entity.RouteCategory{}, entity.RouteCategory{Name: "多日游"})
	db.FirstOrCreate(&entity.RouteCategory{}, entity.RouteCategory{Name: "主题游"})

	db.FirstOrCreate(&entity.FoodCategory{}, entity.FoodCategory{Name: "传统名吃"})
	db.FirstOrCreate(&entity.FoodCategory{}, entity.FoodCategory{Name: "特色小吃"})

	db.FirstOrCreate(&entity.NewsCategory{}, entity.NewsCategory{Name: "旅游攻略"})
	db.FirstOrCreate(&entity.NewsCategory{}, entity.NewsCategory{Name: "新闻动态"})

	log.Println("lookup tables seeded")
	return nil
}
