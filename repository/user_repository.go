package repository

import (
	"errors"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UpdateProfile(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// ---------------- Favorites ----------------

func (r *UserRepository) AddFavorite(f *entity.Favorite) error {
	// idempotent per the unique (user, type, id) index
	return r.DB.Where(entity.Favorite{
		UserID:     f.UserID,
		TargetType: f.TargetType,
		TargetID:   f.TargetID,
	}).FirstOrCreate(f).Error
}

func (r *UserRepository) RemoveFavorite(userID uint, targetType string, targetID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID).Delete(&entity.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) ListFavorites(userID uint) ([]entity.Favorite, error) {
	var favs []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&favs).Error
	return favs, err
}
