package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kajtekw/restaurant-manager/models"
	"github.com/kajtekw/restaurant-manager/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// menuItemRequest covers create and update; both are full-field writes.
// Values are taken as sent, only JSON type coercion applies.
type menuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// GetAllMenuItems
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem overwrites all fields of an existing item.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.Available = req.Available

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes an item. 404 on a missing id, matching get and
// update.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
