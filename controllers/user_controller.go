package controllers

import (
	"strings"
	"time"

	"github.com/Rowan7401/dream-team/database"
	"github.com/Rowan7401/dream-team/dto"
	"github.com/Rowan7401/dream-team/middlewares"
	"github.com/Rowan7401/dream-team/models"
	"github.com/Rowan7401/dream-team/services"
	"github.com/Rowan7401/dream-team/utils"
	"github.com/gin-gonic/gin"
)

// --- Public endpoints ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !models.ValidUsername(username) {
		utils.Error(c, 1002, "Username can only contain lowercase letters, numbers, !, &, $, _, or -.")
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Username or email is already registered.")
		return
	}

	newUser := models.User{
		Username: username,
		Email:    email,
		Password: req.Password,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	// Sign the new account in right away, like the signup page does.
	token, err := utils.GenerateToken(newUser)
	if err != nil {
		utils.Error(c, 5002, "Failed to generate token")
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":       newUser.ID,
			"username": newUser.Username,
			"email":    newUser.Email,
		},
	})
}

func Login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	// The login form takes either an email or a username.
	var user models.User
	var err error
	if strings.Contains(req.Identifier, "@") {
		err = database.DB.Where("email = ?", strings.ToLower(req.Identifier)).First(&user).Error
	} else {
		err = database.DB.Where("username = ?", strings.ToLower(req.Identifier)).First(&user).Error
	}
	if err != nil {
		utils.Error(c, 2002, "User does not exist or password is incorrect")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "User does not exist or password is incorrect")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Failed to generate token")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// --- Authenticated endpoints ---

func GetProfile(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID, _ := userIDAny.(uint32)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}

	utils.Success(c, "success", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Logout revokes the presented token by parking its jti in redis until
// the token would have expired anyway.
func Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expAny, _ := c.Get("token_exp")
	exp, _ := expAny.(time.Time)

	if tokenID != "" {
		ttl := time.Until(exp)
		if ttl > 0 {
			if err := database.RDB.Set(database.Ctx, middlewares.RevokedTokenKey(tokenID), "1", ttl).Err(); err != nil {
				utils.Error(c, 5000, "Failed to revoke token")
				return
			}
		}
	}

	utils.Success(c, "Logged out", nil)
}

// SearchUsers looks up accounts by exact username and enriches each
// result with authored/co-signed dream team counts.
func SearchUsers(c *gin.Context) {
	username := strings.ToLower(strings.TrimSpace(c.Query("username")))
	if username == "" {
		utils.Error(c, 1003, "Invalid (empty) search")
		return
	}

	var users []models.User
	if err := database.DB.Where("username = ?", username).Find(&users).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	if len(users) == 0 {
		utils.Error(c, 4004, "No users found with that username.")
		return
	}

	results := make([]dto.UserSummaryResp, 0, len(users))
	for _, user := range users {
		authored, cosigned, err := services.TeamCounts(dreamStore, user.Username)
		if err != nil {
			utils.Error(c, 5000, "Failed to load dream team counts")
			return
		}
		results = append(results, dto.UserSummaryResp{
			ID:       user.ID,
			Username: user.Username,
			Authored: authored,
			Cosigned: cosigned,
		})
	}

	utils.Success(c, "success", gin.H{"users": results})
}
