package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"DocSpot/config"
	"DocSpot/jobs"
	"DocSpot/routes"
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if err := config.Load(); err != nil {
		log.Fatal("Error in loading the configuration: ", err)
	}
	if err := config.InitMongo(); err != nil {
		log.Fatal("Error in connecting to MongoDB: ", err)
	}
	config.InitRedis()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	jobs.StartDailyScheduler()

	if err := r.Run(":" + config.App.Port); err != nil {
		log.Fatal("Error in starting the server: ", err)
	}
}
