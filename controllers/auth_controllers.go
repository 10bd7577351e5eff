package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kajtekw/restaurant-manager/middlewares"
	"github.com/kajtekw/restaurant-manager/models"
	"github.com/kajtekw/restaurant-manager/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// publicUser is what auth endpoints return; the password hash never
// leaves the server.
func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

// Register creates a new user account.
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("user already exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)
	utils.RespondJSON(c, http.StatusCreated, "User registered", publicUser(&user))
}

// Login checks credentials and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(utils.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)

	utils.InfoLogger.Printf("Login successful for user: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", publicUser(&user))
}

// Logout clears the session cookie. Always succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the logged-in user, or 401 when the cookie did not resolve.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("not authorized"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", publicUser(user))
}
