package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"teamacy_backend/internal/app/di"
	"teamacy_backend/internal/app/router"
	authadapters "teamacy_backend/internal/feature/auth/adapters"
	authhandler "teamacy_backend/internal/feature/auth/transport/handler"
	authusecase "teamacy_backend/internal/feature/auth/usecase"
	msghandler "teamacy_backend/internal/feature/messages/transport/handler"
	msgusecase "teamacy_backend/internal/feature/messages/usecase"
	infradb "teamacy_backend/internal/platform/db"
	jwtmw "teamacy_backend/internal/platform/jwt"
	infraredis "teamacy_backend/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRET check
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	msgRepo := di.NewMessageRepository(rdb, db)

	// Usecase
	tokens := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), jwtmw.ExpirationFromEnv())
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	msgUC := msgusecase.NewMessageUsecase(msgRepo, di.NewNotifier())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	msgH := msghandler.NewMessageHandler(msgUC)

	router := router.NewRouter(authH, msgH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
