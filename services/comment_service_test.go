package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/repository"
)

func newCommentService(t *testing.T) (*CommentService, *gorm.DB) {
	db := openTestDB(t)
	svc := NewCommentService(
		db,
		repository.NewCommentRepository(db),
		repository.NewScenicRepository(db),
		repository.NewHotelRepository(db),
		repository.NewFoodRepository(db),
		repository.NewRouteRepository(db),
		repository.NewNewsRepository(db),
	)
	return svc, db
}

func TestCommentRefreshesRating(t *testing.T) {
	svc, db := newCommentService(t)

	user := entity.User{Email: "u@example.com", Role: "user"}
	require.NoError(t, db.Create(&user).Error)
	spot := entity.ScenicSpot{Name: "白石山", Rating: decimal.NewFromInt(5)}
	require.NoError(t, db.Create(&spot).Error)

	_, err := svc.Create(user.ID, &CreateCommentReq{
		TargetType: "scenic", TargetID: spot.ID, Content: "风景很好", Rating: 4,
	})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &CreateCommentReq{
		TargetType: "scenic", TargetID: spot.ID, Content: "还会再来", Rating: 5,
	})
	require.NoError(t, err)

	var got entity.ScenicSpot
	require.NoError(t, db.First(&got, spot.ID).Error)
	require.Equal(t, "4.5", got.Rating.String())
}

func TestCommentValidation(t *testing.T) {
	svc, db := newCommentService(t)

	user := entity.User{Email: "u@example.com", Role: "user"}
	require.NoError(t, db.Create(&user).Error)
	spot := entity.ScenicSpot{Name: "白石山"}
	require.NoError(t, db.Create(&spot).Error)

	_, err := svc.Create(user.ID, &CreateCommentReq{TargetType: "scenic", TargetID: spot.ID, Content: " ", Rating: 4})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(user.ID, &CreateCommentReq{TargetType: "scenic", TargetID: spot.ID, Content: "好", Rating: 6})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(user.ID, &CreateCommentReq{TargetType: "scenic", TargetID: spot.ID + 99, Content: "好", Rating: 4})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(user.ID, &CreateCommentReq{TargetType: "planet", TargetID: spot.ID, Content: "好", Rating: 4})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCommentDelete(t *testing.T) {
	svc, db := newCommentService(t)

	owner := entity.User{Email: "owner@example.com", Role: "user"}
	stranger := entity.User{Email: "other@example.com", Role: "user"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&stranger).Error)
	spot := entity.ScenicSpot{Name: "白石山"}
	require.NoError(t, db.Create(&spot).Error)

	c, err := svc.Create(owner.ID, &CreateCommentReq{
		TargetType: "scenic", TargetID: spot.ID, Content: "一般", Rating: 2,
	})
	require.NoError(t, err)

	// only the author or staff may remove it
	require.ErrorIs(t, svc.Delete(stranger.ID, false, c.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(stranger.ID, true, c.ID))

	// soft deleted rows disappear from listings but stay in the table
	rows, total, err := svc.ListByTarget("scenic", spot.ID, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, rows)

	var kept entity.Comment
	require.NoError(t, db.First(&kept, c.ID).Error)
	require.True(t, kept.IsDeleted)
}
