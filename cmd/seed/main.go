package main

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"myflix-api/internal/config"
	"myflix-api/internal/database"
	"myflix-api/internal/models"
	"myflix-api/internal/repository"
	"myflix-api/internal/storage"
	"myflix-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// The API exposes no movie writes; this seeder is the out-of-band source
// of the catalog. It also creates a demo user for manual testing.

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	seedMovies(ctx, mongoDB.Database, s3Client)
	seedDemoUser(ctx, mongoDB.Database)

	log.Println("Seed completed successfully!")
}

func seedMovies(ctx context.Context, db *mongo.Database, posters storage.PosterStore) {
	collection := db.Collection("movies")

	// Clear existing movies
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear movies: %v", err)
	}

	movies := catalogMovies()

	docs := make([]interface{}, 0, len(movies))
	for i := range movies {
		key := fmt.Sprintf("posters/%s.svg", slugify(movies[i].Title))
		if err := posters.PutPoster(ctx, key, placeholderPoster(movies[i].Title), "image/svg+xml"); err != nil {
			log.Fatalf("Failed to upload poster for %q: %v", movies[i].Title, err)
		}
		movies[i].ImagePath = key
		docs = append(docs, movies[i])
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert movies: %v", err)
	}
	log.Printf("Seeded %d movies", len(result.InsertedIDs))
}

func seedDemoUser(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{"username": "demouser"}); err != nil {
		log.Fatalf("Failed to clear demo user: %v", err)
	}

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	// Insert through the repository so the document has the same shape as
	// a registered user (favoriteMovies starts as an empty array, not null).
	users := repository.NewUserRepository(db)
	err = users.Create(ctx, &models.User{
		Username: "demouser",
		Password: hashed,
		Email:    "demo@example.com",
	})
	if err != nil {
		log.Fatalf("Failed to insert demo user: %v", err)
	}
	log.Println("Seeded demo user (demouser / password123)")
}

func catalogMovies() []models.Movie {
	return []models.Movie{
		{
			Title:       "12 Angry Men",
			Description: "A jury holdout attempts to prevent a miscarriage of justice by forcing his colleagues to reconsider the evidence.",
			Genre:       models.Genre{Name: "Drama", Description: "Serious, plot-driven stories portraying realistic characters in conflict."},
			Director:    models.Director{Name: "Sidney Lumet", Bio: "American director known for courtroom and social dramas.", Birth: "1924", Death: "2011"},
			Featured:    true,
		},
		{
			Title:       "Alien",
			Description: "The crew of a commercial spacecraft encounters a deadly lifeform after investigating an unknown transmission.",
			Genre:       models.Genre{Name: "Science Fiction", Description: "Speculative stories built on imagined scientific or technological advances."},
			Director:    models.Director{Name: "Ridley Scott", Bio: "English director and producer, a defining voice in science fiction cinema.", Birth: "1937"},
			Featured:    true,
		},
		{
			Title:       "The Silence of the Lambs",
			Description: "A young FBI cadet must receive the help of an incarcerated killer to catch another serial killer.",
			Genre:       models.Genre{Name: "Thriller", Description: "Suspense-driven stories that keep audiences on the edge of their seats."},
			Director:    models.Director{Name: "Jonathan Demme", Bio: "American director celebrated for intimate character studies.", Birth: "1944", Death: "2017"},
			Featured:    false,
		},
		{
			Title:       "Spirited Away",
			Description: "A ten-year-old girl wanders into a world ruled by spirits and witches, where humans are changed into beasts.",
			Genre:       models.Genre{Name: "Animation", Description: "Stories told through animated imagery across every genre."},
			Director:    models.Director{Name: "Hayao Miyazaki", Bio: "Japanese animator and co-founder of Studio Ghibli.", Birth: "1941"},
			Featured:    true,
		},
		{
			Title:       "Network",
			Description: "A television network cynically exploits a deranged anchor's ravings and revelations about the news media.",
			Genre:       models.Genre{Name: "Drama", Description: "Serious, plot-driven stories portraying realistic characters in conflict."},
			Director:    models.Director{Name: "Sidney Lumet", Bio: "American director known for courtroom and social dramas.", Birth: "1924", Death: "2011"},
			Featured:    false,
		},
	}
}

// placeholderPoster renders a minimal SVG with the movie title so the
// bucket has a real object behind every imagePath.
func placeholderPoster(title string) *bytes.Buffer {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="450"><rect width="100%%" height="100%%" fill="#1a1a2e"/><text x="150" y="225" fill="#eee" text-anchor="middle" font-family="sans-serif">%s</text></svg>`,
		title,
	)
	return bytes.NewBufferString(svg)
}

func slugify(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		}
	}
	return string(out)
}
