package routes

import (
	"github.com/Rowan7401/dream-team/controllers"
	"github.com/Rowan7401/dream-team/middlewares"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
			usersPublic.GET("/search", controllers.SearchUsers)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/me", controllers.GetProfile)
			usersAuth.GET("/me/dreams", controllers.ListMyDreams)
			usersAuth.POST("/logout", controllers.Logout)
		}

		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			friendRoutes.GET("", controllers.ListFriends)
			friendRoutes.POST("", controllers.AddFriend)
		}

		dreamRoutes := apiV1.Group("/dreams")
		{
			// Discovery is public; creating or co-signing needs a login.
			dreamRoutes.GET("", controllers.SearchDreams)
			dreamRoutes.GET("/:id", controllers.GetDream)
			dreamRoutes.POST("", middlewares.JWTAuthMiddleware(), controllers.SubmitDream)
		}

		// Public per-user pages, keyed by username like the original
		// /userTeams/[username] routes.
		apiV1.GET("/user-teams/:username", controllers.ListDreamsByUsername)
	}

	return r
}
