package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
	"tourism-backend/services"
)

// AdminController is the staff JSON API: dashboard numbers, catalog
// management and order handling. Routes are gated by the staff role.
type AdminController struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	OrderSvc  *services.OrderService
}

func NewAdminController(db *gorm.DB, orderRepo *repository.OrderRepository, orderSvc *services.OrderService) *AdminController {
	return &AdminController{DB: db, OrderRepo: orderRepo, OrderSvc: orderSvc}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	var totalUsers, totalSpots, totalRoutes, totalHotels int64
	if err := ac.DB.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		writeError(c, err)
		return
	}
	ac.DB.Model(&entity.ScenicSpot{}).Count(&totalSpots)
	ac.DB.Model(&entity.Route{}).Count(&totalRoutes)
	ac.DB.Model(&entity.Hotel{}).Count(&totalHotels)

	byStatus, err := ac.OrderRepo.CountByStatus()
	if err != nil {
		writeError(c, err)
		return
	}
	revenue, err := ac.OrderRepo.PaidRevenue()
	if err != nil {
		writeError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":     totalUsers,
		"totalSpots":     totalSpots,
		"totalRoutes":    totalRoutes,
		"totalHotels":    totalHotels,
		"ordersByStatus": byStatus,
		"paidRevenue":    revenue,
	})
}

// GET /admin/orders?status=&page=&limit=
func (ac *AdminController) Orders(c *gin.Context) {
	page, limit := parsePaging(c)
	items, total, err := ac.OrderRepo.ListAll(c.Query("status"), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page})
}

// PATCH /admin/orders/:sn/complete — paid→completed
func (ac *AdminController) CompleteOrder(c *gin.Context) {
	if err := ac.OrderSvc.Complete(c.Param("sn")); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderSn": c.Param("sn"), "status": entity.OrderStatusCompleted})
}

// ---------------- catalog management ----------------
//
// Create binds the entity JSON straight in; update loads the row first and
// lets the JSON body overwrite only the fields it carries.

func (ac *AdminController) CreateSpot(c *gin.Context)   { adminCreate[entity.ScenicSpot](ac, c) }
func (ac *AdminController) UpdateSpot(c *gin.Context)   { adminUpdate[entity.ScenicSpot](ac, c) }
func (ac *AdminController) DeleteSpot(c *gin.Context)   { adminDelete[entity.ScenicSpot](ac, c) }
func (ac *AdminController) CreateRoute(c *gin.Context)  { adminCreate[entity.Route](ac, c) }
func (ac *AdminController) UpdateRoute(c *gin.Context)  { adminUpdate[entity.Route](ac, c) }
func (ac *AdminController) DeleteRoute(c *gin.Context)  { adminDelete[entity.Route](ac, c) }
func (ac *AdminController) CreateHotel(c *gin.Context)  { adminCreate[entity.Hotel](ac, c) }
func (ac *AdminController) UpdateHotel(c *gin.Context)  { adminUpdate[entity.Hotel](ac, c) }
func (ac *AdminController) DeleteHotel(c *gin.Context)  { adminDelete[entity.Hotel](ac, c) }
func (ac *AdminController) CreateRoom(c *gin.Context)   { adminCreate[entity.RoomType](ac, c) }
func (ac *AdminController) UpdateRoom(c *gin.Context)   { adminUpdate[entity.RoomType](ac, c) }
func (ac *AdminController) DeleteRoom(c *gin.Context)   { adminDelete[entity.RoomType](ac, c) }
func (ac *AdminController) CreateFood(c *gin.Context)   { adminCreate[entity.Food](ac, c) }
func (ac *AdminController) UpdateFood(c *gin.Context)   { adminUpdate[entity.Food](ac, c) }
func (ac *AdminController) DeleteFood(c *gin.Context)   { adminDelete[entity.Food](ac, c) }
func (ac *AdminController) CreateNews(c *gin.Context)   { adminCreate[entity.News](ac, c) }
func (ac *AdminController) UpdateNews(c *gin.Context)   { adminUpdate[entity.News](ac, c) }
func (ac *AdminController) DeleteNews(c *gin.Context)   { adminDelete[entity.News](ac, c) }

func adminCreate[T any](ac *AdminController, c *gin.Context) {
	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.DB.Create(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, row)
}

func adminUpdate[T any](ac *AdminController, c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var row T
	if err := ac.DB.First(&row, id).Error; err != nil {
		resp.NotFound(c, "not found")
		return
	}
	if err := c.ShouldBindJSON(&row); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.DB.Save(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, row)
}

func adminDelete[T any](ac *AdminController, c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	res := ac.DB.Delete(new(T), id)
	if res.Error != nil {
		writeError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
