package controllers

import (
	"github.com/Rowan7401/dream-team/database"
	"github.com/Rowan7401/dream-team/dto"
	"github.com/Rowan7401/dream-team/models"
	"github.com/Rowan7401/dream-team/services"
	"github.com/Rowan7401/dream-team/utils"
	"github.com/gin-gonic/gin"
)

func AddFriend(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID, _ := userIDAny.(uint32)

	var req struct {
		FriendID uint32 `json:"friend_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters")
		return
	}

	if req.FriendID == userID {
		utils.Error(c, 3101, "You cannot add yourself as a friend.")
		return
	}

	var friend models.User
	if err := database.DB.First(&friend, req.FriendID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}

	var existing models.Friendship
	if err := database.DB.Where("user_id = ? AND friend_id = ?", userID, req.FriendID).First(&existing).Error; err == nil {
		utils.Error(c, 3102, "This user is already your friend!")
		return
	}

	friendship := models.Friendship{
		UserID:   userID,
		FriendID: req.FriendID,
	}
	if err := database.DB.Create(&friendship).Error; err != nil {
		utils.Error(c, 5000, "Failed to add friend: "+err.Error())
		return
	}

	utils.Success(c, friend.Username+" has been added as a friend!", gin.H{
		"friend_id": friend.ID,
		"username":  friend.Username,
	})
}

// ListFriends returns the caller's friends, each enriched with their
// authored and co-signed dream team counts.
func ListFriends(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID, _ := userIDAny.(uint32)

	var friendships []models.Friendship
	if err := database.DB.Preload("Friend").Where("user_id = ?", userID).Order("created_at asc").Find(&friendships).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	friends := make([]dto.UserSummaryResp, 0, len(friendships))
	for _, friendship := range friendships {
		authored, cosigned, err := services.TeamCounts(dreamStore, friendship.Friend.Username)
		if err != nil {
			utils.Error(c, 5000, "Failed to load dream team counts")
			return
		}
		friends = append(friends, dto.UserSummaryResp{
			ID:       friendship.Friend.ID,
			Username: friendship.Friend.Username,
			Email:    friendship.Friend.Email,
			Authored: authored,
			Cosigned: cosigned,
		})
	}

	utils.Success(c, "success", gin.H{"friends": friends})
}
