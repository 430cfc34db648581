package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripdeck/cmd/fx/catalog_fx"
	"tripdeck/cmd/fx/controllers_fx"
	"tripdeck/cmd/fx/cost_fx"
	"tripdeck/cmd/fx/db_fx"
	"tripdeck/cmd/fx/destination_fx"
	"tripdeck/cmd/fx/itinerary_fx"
	"tripdeck/cmd/fx/memcache_fx"
	"tripdeck/cmd/fx/snapshot_fx"
	"tripdeck/cmd/fx/weather_fx"
	"tripdeck/internal/api/controllers"
	"tripdeck/pkg/middleware"
	"tripdeck/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		snapshot_fx.Module,
		destination_fx.Module,
		weather_fx.Module,
		cost_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	destinationController *controllers.DestinationController,
	weatherController *controllers.WeatherController,
	costController *controllers.CostController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.SessionMiddleware(utils.SessionTTL()))

	RegisterRoutes(r, itineraryController, catalogController, destinationController, weatherController, costController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	destinationController *controllers.DestinationController,
	weatherController *controllers.WeatherController,
	costController *controllers.CostController) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.GET("", itineraryController.GetItinerary)
	itineraryGroup.POST("/days", itineraryController.AddDay)
	itineraryGroup.DELETE("/days/:dayId", itineraryController.RemoveDay)
	itineraryGroup.POST("/activities", itineraryController.AddActivity)
	itineraryGroup.DELETE("/activities/:activityId", itineraryController.RemoveActivity)
	itineraryGroup.PATCH("/activities/:activityId/time", itineraryController.UpdateActivityTime)
	itineraryGroup.POST("/reorder", itineraryController.Reorder)
	itineraryGroup.POST("/move", itineraryController.Move)
	itineraryGroup.POST("/drop", itineraryController.Drop)
	itineraryGroup.POST("/save", itineraryController.Save)
	itineraryGroup.POST("/load", itineraryController.Load)

	attractionsGroup := r.Group("/attractions")
	attractionsGroup.GET("", catalogController.GetAttractions)
	attractionsGroup.GET("/tips", catalogController.GetTravelTips)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("/search", destinationController.SearchDestinations)

	weatherGroup := r.Group("/weather")
	weatherGroup.GET("/:destination", weatherController.GetForecast)

	costGroup := r.Group("/cost")
	costGroup.GET("/estimate", costController.Estimate)
}
