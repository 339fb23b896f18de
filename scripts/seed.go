package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/halaleats/backend/internal/adapters/database"
	"github.com/halaleats/backend/internal/domain/entities"
	"github.com/halaleats/backend/internal/infrastructure/clients/postgres"
	"github.com/halaleats/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	restaurantRepo := database.NewRestaurantAdapter(pgClient)
	userRepo := database.NewUserAdapter(pgClient)
	reviewRepo := database.NewReviewAdapter(pgClient)
	friendRepo := database.NewFriendAdapter(pgClient)
	activityRepo := database.NewActivityAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				activity,
				friends,
				reviews,
				restaurants,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	// 1. Seed Users
	users := []entities.User{
		{ID: uuid.New().String(), Username: "amira", Email: "amira@example.com", ProfilePic: "https://example.com/avatars/amira.png", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Username: "yusuf", Email: "yusuf@example.com", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Username: "fatima", Email: "fatima@example.com", CreatedAt: time.Now()},
	}

	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Printf("Failed to create user %s: %v", users[i].Username, err)
		}
	}

	// 2. Seed Restaurants
	restaurants := []entities.Restaurant{
		{ID: uuid.New().String(), Name: "Kabul House", Location: "Dallas, TX", Cuisine: "Afghan", Rating: 4.5, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Saffron Grill", Location: "Austin, TX", Cuisine: "Persian", Rating: 4.2, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Mandi Palace", Location: "Houston, TX", Cuisine: "Yemeni", Rating: 4.8, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Bosphorus Kitchen", Location: "Plano, TX", Cuisine: "Turkish", Rating: 4.0, CreatedAt: time.Now()},
	}

	for i := range restaurants {
		if err := restaurantRepo.Create(ctx, &restaurants[i]); err != nil {
			log.Printf("Failed to create restaurant %s: %v", restaurants[i].Name, err)
		}
	}

	// 3. Seed Reviews
	reviews := []entities.Review{
		{ID: uuid.New().String(), UserID: users[0].ID, RestaurantID: restaurants[0].ID, Rating: 5, Comment: "Best lamb karahi in town.", CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: users[1].ID, RestaurantID: restaurants[0].ID, Rating: 4, Comment: "Great bread, slow service.", CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: users[2].ID, RestaurantID: restaurants[2].ID, Rating: 5, Comment: "The mandi is unreal.", CreatedAt: time.Now()},
	}

	for i := range reviews {
		if err := reviewRepo.Create(ctx, &reviews[i]); err != nil {
			log.Printf("Failed to create review: %v", err)
		}
	}

	// 4. Seed Friend links
	friends := []entities.Friend{
		{ID: uuid.New().String(), UserID: users[0].ID, FriendID: users[1].ID, CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: users[1].ID, FriendID: users[0].ID, CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: users[0].ID, FriendID: users[2].ID, CreatedAt: time.Now()},
	}

	for i := range friends {
		if err := friendRepo.Create(ctx, &friends[i]); err != nil {
			log.Printf("Failed to create friend link: %v", err)
		}
	}

	// 5. Seed Activity
	activity := []entities.Activity{
		{ID: uuid.New().String(), UserID: users[0].ID, RestaurantID: restaurants[0].ID, Action: "reviewed", CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: users[2].ID, RestaurantID: restaurants[2].ID, Action: "reviewed", CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: users[1].ID, RestaurantID: restaurants[3].ID, Action: "bookmarked", CreatedAt: time.Now()},
	}

	for i := range activity {
		if err := activityRepo.Create(ctx, &activity[i]); err != nil {
			log.Printf("Failed to create activity entry: %v", err)
		}
	}

	log.Printf("Seeding complete: %d users, %d restaurants, %d reviews, %d friend links, %d activity entries",
		len(users), len(restaurants), len(reviews), len(friends), len(activity))
}
