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
	"github.com/microshoplab/go-shop-services/internal/orders"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load("order-service", ":8083")

	// one client per downstream, bounded per call
	hc := &http.Client{Timeout: cfg.ClientTimeout}
	wf := &orders.Workflow{
		Users:    &orders.UserClient{BaseURL: cfg.UserServiceURL, HTTP: hc},
		Products: &orders.ProductClient{BaseURL: cfg.ProductServiceURL, HTTP: hc},
		Store:    orders.NewStore(),
	}

	router := httpx.NewRouter(cfg.ServiceName)
	oh := &httpx.OrdersHandler{Store: wf.Store, Workflow: wf}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("%s listening at %s (users=%s products=%s)",
			cfg.ServiceName, cfg.HTTPAddr, cfg.UserServiceURL, cfg.ProductServiceURL)
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
