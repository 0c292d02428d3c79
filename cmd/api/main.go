package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"campusfind/cmd/app"
	"campusfind/internal/config"
	handlers "campusfind/internal/handler"
	"campusfind/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	requireAuth := middleware.RequireAuth(cfg)
	optionalAuth := middleware.OptionalAuth(cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.Handle("/api/me",
		requireAuth(http.HandlerFunc(handler.GetCurrentUser))).Methods(http.MethodGet)

	// список и страница вещи открыты всем, но страница вещи показывает
	// переписку только вошедшему пользователю
	router.HandleFunc("/api/items", handler.GetItems).Methods(http.MethodGet)
	router.Handle("/api/items/{id}",
		optionalAuth(http.HandlerFunc(handler.GetItem))).Methods(http.MethodGet)

	router.Handle("/api/items",
		requireAuth(http.HandlerFunc(handler.CreateItem))).Methods(http.MethodPost)
	router.Handle("/api/items/{id}/status",
		requireAuth(http.HandlerFunc(handler.UpdateItemStatus))).Methods(http.MethodPatch)
	router.Handle("/api/items/{id}",
		requireAuth(http.HandlerFunc(handler.DeleteItem))).Methods(http.MethodDelete)

	router.Handle("/api/items/{id}/messages",
		requireAuth(http.HandlerFunc(handler.GetMessages))).Methods(http.MethodGet)
	router.Handle("/api/items/{id}/messages",
		requireAuth(http.HandlerFunc(handler.SendMessage))).Methods(http.MethodPost)

	router.Handle("/api/profile/items",
		requireAuth(http.HandlerFunc(handler.GetMyItems))).Methods(http.MethodGet)
	router.Handle("/api/profile/items/{id}",
		requireAuth(http.HandlerFunc(handler.DeleteMyItem))).Methods(http.MethodDelete)

	router.Handle("/api/notifications",
		requireAuth(http.HandlerFunc(handler.GetNotifications))).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
