package main

import (
	"log"

	"github.com/joho/godotenv"

	"Planify/CronJobs"
	"Planify/FiberConfig"
	"Planify/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	Models.Connect()

	snapshotter := CronJobs.NewBookingSnapshotter("snapshots", false)
	if err := snapshotter.Start(); err != nil {
		log.Printf("Failed to start booking snapshotter: %v\n", err)
	}

	FiberConfig.FiberConfig()
}
