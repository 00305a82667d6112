package routes

import (
	"context"

	"github.com/Kiptoos/alx-travel-app-0x01/config"
	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/controllers"
	middlewares "github.com/Kiptoos/alx-travel-app-0x01/middleware"

	"github.com/gin-gonic/gin"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {

	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/listings", controllers.GetAllListings)
	v1.POST("/listings", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleStaff), controllers.CreateListing)
	v1.GET("/listings/:id", controllers.GetListingDetail)
	v1.GET("/listings/:id/bookings", middlewares.AuthMiddleware(), controllers.GetListingBookings)
	v1.PUT("/listings", middlewares.AuthMiddleware(), controllers.UpdateListing)
	v1.PUT("/listingStatus", middlewares.AuthMiddleware(), controllers.ChangeListingStatus)

	v1.POST("/bookings", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(constants.RoleStaff), controllers.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(), controllers.ChangeBookingStatus)
	v1.GET("/my-bookings", middlewares.AuthMiddleware(), controllers.GetMyBookings)

	v1.GET("/reviews", controllers.GetAllReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.GET("/reviews/:id", controllers.GetReviewDetail)

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleStaff), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": "No file supplied"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(400, gin.H{"error": "Could not open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "listings"})
		if err != nil {
			c.JSON(500, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
