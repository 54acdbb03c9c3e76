package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Rowan7401/dream-team/database"
	"github.com/Rowan7401/dream-team/dto"
	"github.com/Rowan7401/dream-team/mappers"
	"github.com/Rowan7401/dream-team/models"
	"github.com/Rowan7401/dream-team/services"
	"github.com/Rowan7401/dream-team/utils"
	"github.com/gin-gonic/gin"
)

var surrealDreams = services.SurrealDreamStore{}

var dreamStore services.DreamStore = surrealDreams

var dreamResolver = services.NewDreamResolver(dreamStore, services.GormProfileDirectory{})

// SubmitDream runs the create-or-co-sign flow for the authenticated
// caller and reports which outcome happened.
func SubmitDream(c *gin.Context) {
	var req dto.SubmitDreamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	userIDAny, _ := c.Get("user_id")
	userID, _ := userIDAny.(uint32)

	result, err := dreamResolver.SubmitTeam(
		req.Title, req.Pick1, req.Pick2, req.Pick3,
		req.Category, req.CustomCategory,
		services.Identity{UserID: userID},
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			utils.Error(c, 4001, "You must be logged in to create a dream team.")
		case errors.Is(err, services.ErrBlankTitle):
			utils.Error(c, 3002, "Blank Title. Please input a Title for your team.")
		case errors.Is(err, services.ErrBlankPicks):
			utils.Error(c, 3003, "There must be 3 picks. Please fill in blank field(s).")
		case errors.Is(err, services.ErrDuplicatePicks):
			utils.Error(c, 3004, "Duplicate picks found.")
		default:
			utils.Error(c, 5000, "An error occurred while creating the dream team.")
		}
		return
	}

	msg := "Dream team created"
	if result.Outcome == services.OutcomeCosigned {
		msg = "Co-signed existing dream team"
	}
	utils.Success(c, msg, dto.SubmitDreamResp{Outcome: result.Outcome, RecordID: result.RecordID})
}

// SearchDreams filters the collection by title substring (?q=) or by
// category key (?category=), where "most popular" is the virtual
// category sorted by co-signer count. No filter returns everything.
func SearchDreams(c *gin.Context) {
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		teams, err := services.DreamsByTitle(dreamStore, q)
		if err != nil {
			utils.Error(c, 5000, "Failed to search dream teams")
			return
		}
		utils.Success(c, "success", mappers.MapModelsToItemResps(teams))
		return
	}

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	if category == "" {
		teams, err := dreamStore.FetchAll()
		if err != nil {
			utils.Error(c, 5000, "Failed to list dream teams")
			return
		}
		utils.Success(c, "success", mappers.MapModelsToItemResps(teams))
		return
	}

	// The popular listing is read on every visit to the search page, so
	// it gets a short-lived cache in front of the collection scan.
	if category == models.CategoryMostPopular {
		cacheKey := "dreams:popular"
		val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var cached []dto.DreamItemResp
			if json.Unmarshal([]byte(val), &cached) == nil {
				utils.Success(c, "success (from cache)", cached)
				return
			}
		}

		teams, err := services.DreamsByCategory(dreamStore, category)
		if err != nil {
			utils.Error(c, 5000, "Failed to list dream teams")
			return
		}
		resps := mappers.MapModelsToItemResps(teams)
		if jsonData, err := json.Marshal(resps); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, jsonData, 30*time.Second)
		}
		utils.Success(c, "success", resps)
		return
	}

	teams, err := services.DreamsByCategory(dreamStore, category)
	if err != nil {
		utils.Error(c, 5000, "Failed to list dream teams")
		return
	}
	utils.Success(c, "success", mappers.MapModelsToItemResps(teams))
}

func GetDream(c *gin.Context) {
	id := c.Param("id")
	if !strings.Contains(id, ":") {
		id = "dreams:" + id
	}

	team, err := surrealDreams.FetchByID(id)
	if err != nil {
		utils.Error(c, 5000, "Failed to load dream team")
		return
	}
	if team == nil {
		utils.Error(c, 4004, "Dream team not found")
		return
	}
	utils.Success(c, "success", mappers.MapModelToItemResp(*team))
}

// ListMyDreams returns the authenticated caller's own records.
func ListMyDreams(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID, _ := userIDAny.(uint32)

	teams, err := surrealDreams.FetchByAuthorID(userID)
	if err != nil {
		utils.Error(c, 5000, "Failed to list dream teams")
		return
	}
	utils.Success(c, "success", mappers.MapModelsToItemResps(teams))
}

// ListDreamsByUsername backs the public per-user pages, keyed on the
// display name captured when each record was created.
func ListDreamsByUsername(c *gin.Context) {
	username := strings.ToLower(strings.TrimSpace(c.Param("username")))
	if username == "" {
		utils.Error(c, 1003, "Invalid (empty) username")
		return
	}

	teams, err := surrealDreams.FetchByAuthorName(username)
	if err != nil {
		utils.Error(c, 5000, "Failed to list dream teams")
		return
	}
	utils.Success(c, "success", mappers.MapModelsToItemResps(teams))
}
