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
	"github.com/microshoplab/go-shop-services/internal/inventory"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load("product-service", ":8082")

	st := inventory.NewStore()
	seed(st)

	router := httpx.NewRouter(cfg.ServiceName)
	ph := &httpx.ProductsHandler{Store: st}
	ph.Register(router)

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

// demo catalog; Monitor starts out of stock on purpose
func seed(st *inventory.Store) {
	_, _ = st.Create("Laptop", decimal.NewFromFloat(999.99), 10)
	_, _ = st.Create("Mouse", decimal.NewFromFloat(29.99), 50)
	_, _ = st.Create("Keyboard", decimal.NewFromFloat(79.99), 25)
	_, _ = st.Create("Monitor", decimal.NewFromFloat(299.99), 0)
}
