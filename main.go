package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studentapi/app/repository"
	"studentapi/app/service"
	"studentapi/config"
	"studentapi/database"
	"studentapi/route"
)

func main() {
	config.LoadEnv()

	mongoURI := config.MustGetEnv("MONGODB_URI")
	dbName := config.GetEnv("MONGODB_DB", "studentrecords")

	db, err := database.Connect(context.Background(), mongoURI, dbName)
	if err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}
	log.Println("Connected to MongoDB")

	students := db.Collection("students")

	// The unique email index is the authoritative uniqueness constraint;
	// the service-level check only fast-fails ahead of it.
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repository.EnsureStudentIndexes(indexCtx, students); err != nil {
		cancel()
		log.Fatal("MongoDB index setup failed: ", err)
	}
	cancel()

	studentSvc := service.NewStudentService(repository.NewMongoStudentRepository(students))

	app := config.NewFiberApp()
	route.SetupRoutes(app, studentSvc)

	port := config.GetEnv("PORT", "8000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("Server failed: ", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Println("Server shutdown error: ", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Close(closeCtx); err != nil {
		log.Println("MongoDB disconnect error: ", err)
	}
}
