package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"readiness/internal/model"
	"readiness/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("readiness")
	repo := repository.NewQuestionnaireRepo(db)

	q := model.DefaultQuestionnaire()
	if err := repo.Upsert(ctx, q); err != nil {
		log.Fatalf("Failed to seed questionnaire: %v", err)
	}

	total := 0
	for _, section := range q.Sections {
		total += len(section.Questions)
	}
	fmt.Printf("Seeded questionnaire %q: %d sections, %d questions\n", q.Title, len(q.Sections), total)
}
