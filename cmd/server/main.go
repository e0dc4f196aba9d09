package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/socialsphere/app/internal/config"
	"github.com/socialsphere/app/internal/database"
	mongorepo "github.com/socialsphere/app/internal/repository/mongodb"
	"github.com/socialsphere/app/internal/service"
	"github.com/socialsphere/app/internal/token"
	"github.com/socialsphere/app/internal/transport/http/handlers"
	"github.com/socialsphere/app/internal/transport/http/middleware"
	"github.com/socialsphere/app/internal/transport/http/render"
	"github.com/socialsphere/app/internal/upload"
)

func main() {
	cfg := config.Load()

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Client().Disconnect(context.Background())
	log.Println("Connected to database")

	// Repositories
	userRepo := mongorepo.NewUserRepo(db)
	postRepo := mongorepo.NewPostRepo(db)

	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("creating indexes: %v", err)
	}

	// Services
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Hour)
	authService := service.NewAuthService(userRepo, tokens)
	postService := service.NewPostService(postRepo, userRepo)
	profileService := service.NewProfileService(userRepo, postRepo)

	// Upload intake
	intake, err := upload.NewIntake(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	// Templates
	renderer, err := render.New(cfg.TemplatesDir)
	if err != nil {
		log.Fatal(err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, renderer, cfg.Production())
	postHandler := handlers.NewPostHandler(postService, renderer)
	profileHandler := handlers.NewProfileHandler(profileService, intake, renderer)

	// Session guard
	guard := middleware.Session(tokens)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("/", authHandler.Index)
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.Handle("GET /public/", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Protected
	mux.Handle("GET /profile", guard(http.HandlerFunc(profileHandler.Profile)))
	mux.Handle("GET /profile/upload", guard(http.HandlerFunc(profileHandler.UploadPage)))
	mux.Handle("POST /upload", guard(http.HandlerFunc(profileHandler.Upload)))
	mux.Handle("POST /post", guard(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /like/{postId}", guard(http.HandlerFunc(postHandler.Like)))
	mux.Handle("GET /edit/{postId}", guard(http.HandlerFunc(postHandler.EditPage)))
	mux.Handle("POST /update/{postId}", guard(http.HandlerFunc(postHandler.Update)))

	handler := middleware.Logging(mux)
	handler = middleware.Recover(renderer.Error)(handler)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
