package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
)

// HomeController serves the aggregate the portal front page pulls in one
// request: hot spots, recommended routes and hotels, hot foods, latest
// news and the check-in leaderboard.
type HomeController struct {
	ScenicRepo  *repository.ScenicRepository
	RouteRepo   *repository.RouteRepository
	HotelRepo   *repository.HotelRepository
	FoodRepo    *repository.FoodRepository
	NewsRepo    *repository.NewsRepository
	CheckInRepo *repository.CheckInRepository
}

func NewHomeController(
	scenicRepo *repository.ScenicRepository,
	routeRepo *repository.RouteRepository,
	hotelRepo *repository.HotelRepository,
	foodRepo *repository.FoodRepository,
	newsRepo *repository.NewsRepository,
	checkInRepo *repository.CheckInRepository,
) *HomeController {
	return &HomeController{
		ScenicRepo:  scenicRepo,
		RouteRepo:   routeRepo,
		HotelRepo:   hotelRepo,
		FoodRepo:    foodRepo,
		NewsRepo:    newsRepo,
		CheckInRepo: checkInRepo,
	}
}

// GET /home
func (hc *HomeController) Home(c *gin.Context) {
	hotSpots, err := hc.ScenicRepo.Hot(6)
	if err != nil {
		writeError(c, err)
		return
	}
	routes, err := hc.RouteRepo.Recommended(4)
	if err != nil {
		writeError(c, err)
		return
	}
	hotels, err := hc.HotelRepo.Recommended(4)
	if err != nil {
		writeError(c, err)
		return
	}
	foods, err := hc.FoodRepo.Hot(6)
	if err != nil {
		writeError(c, err)
		return
	}
	news, err := hc.NewsRepo.Latest(5)
	if err != nil {
		writeError(c, err)
		return
	}
	leaderboard, err := hc.CheckInRepo.SpotLeaderboard(5)
	if err != nil {
		writeError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"hotSpots":           hotSpots,
		"recommendedRoutes":  routes,
		"recommendedHotels":  hotels,
		"hotFoods":           foods,
		"latestNews":         news,
		"checkinLeaderboard": leaderboard,
	})
}
