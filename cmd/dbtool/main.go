package main

import (
	"context"
	"database/sql"
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/adapters/distance"
	"field-service-scheduler/internal/adapters/repositories"
	"field-service-scheduler/internal/config"
	"field-service-scheduler/internal/platform/db"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := flag.String("seed", config.Get("SEED_PATH", "data/dataset.yaml"), "dataset file (JSON or YAML) to seed from")
	seedRedis := flag.Bool("redis", false, "also write the distance matrix to Redis (REDIS_URL)")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(ctx, conn, *seedPath); err != nil {
		log.Fatal(err)
	}

	if *seedRedis {
		redisURL := config.Get("REDIS_URL", "redis://localhost:6379/0")
		prefix := config.Get("REDIS_KEY_PREFIX", distance.DefaultRedisKeyPrefix)
		if err := seedRedisDistances(ctx, redisURL, prefix, *seedPath); err != nil {
			log.Fatal(err)
		}
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromFile(ctx, conn, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}

func seedRedisDistances(ctx context.Context, redisURL, prefix, seedPath string) error {
	ds, err := dataset.Load(seedPath)
	if err != nil {
		return err
	}

	rdb, err := db.OpenRedis(ctx, redisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	log.Printf("Seeding Redis distances prefix=%s origins=%d...", prefix, len(ds.Distances))
	if err := distance.NewRedisMatrixProvider(rdb, prefix).PutMatrix(ctx, ds.Distances); err != nil {
		return err
	}
	log.Println("Redis seeding complete.")
	return nil
}
