package repository

import (
	"errors"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	return r.DB.Create(c).Error
}

func (r *CommentRepository) Get(id uint) (*entity.Comment, error) {
	var c entity.Comment
	err := r.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByTarget returns live comments for one catalog entry, newest first,
// with the commenter's display fields joined in.
type CommentRow struct {
	entity.Comment
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func (r *CommentRepository) ListByTarget(targetType string, targetID uint, page, limit int) ([]CommentRow, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	base := r.DB.Model(&entity.Comment{}).
		Where("target_type = ? AND target_id = ? AND is_deleted = ?", targetType, targetID, false)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []CommentRow
	err := r.DB.Table("comments AS c").
		Select("c.*, u.nickname, u.avatar").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.target_type = ? AND c.target_id = ? AND c.is_deleted = ? AND c.deleted_at IS NULL",
			targetType, targetID, false).
		Order("c.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&rows).Error
	return rows, total, err
}

// SoftDelete hides a comment but keeps the row for moderation audit.
func (r *CommentRepository) SoftDelete(id uint) error {
	return r.DB.Model(&entity.Comment{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// AverageRating of live comments for one target; ok is false when there are
// none.
func (r *CommentRepository) AverageRating(targetType string, targetID uint) (float64, bool, error) {
	var row struct {
		Avg float64
		N   int64
	}
	err := r.DB.Model(&entity.Comment{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS n").
		Where("target_type = ? AND target_id = ? AND is_deleted = ?", targetType, targetID, false).
		Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	return row.Avg, row.N > 0, nil
}
