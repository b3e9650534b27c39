package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/microshoplab/go-shop-services/internal/config"
	"github.com/microshoplab/go-shop-services/internal/httpx"
	"github.com/microshoplab/go-shop-services/internal/users"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load("user-service", ":8081")

	st := users.NewStore()
	seed(st)

	router := httpx.NewRouter(cfg.ServiceName)
	uh := &httpx.UsersHandler{Store: st}
	uh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("%s listening at %s", cfg.ServiceName, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// demo data, same shape every fresh process starts from
func seed(st *users.Store) {
	_, _ = st.Create("Alice Smith", "alice@example.com", true)
	_, _ = st.Create("Bob Jones", "bob@example.com", true)
	_, _ = st.Create("Charlie Brown", "charlie@example.com", false)
}
