// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shipviet/internal/config"
	httptransport "shipviet/internal/http"
	"shipviet/internal/infra"
	"shipviet/internal/maps"
	"shipviet/internal/modules/address"
	"shipviet/internal/modules/loyalty"
	"shipviet/internal/modules/shipping"
	"shipviet/internal/modules/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("SHIPVIET_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var geocoder address.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = g
	} else {
		log.Print("SHIPVIET_MAPS_API_KEY not set; addresses without coordinates will not be geocoded")
	}

	addressStore := address.NewStore(dbPool, redisClient)
	addressSvc := address.NewService(addressStore, geocoder)

	loyaltyStore := loyalty.NewStore(dbPool)
	loyaltySvc := loyalty.NewService(loyaltyStore)

	weatherClient := weather.NewClient(cfg.Weather.APIKey)

	policy := shipping.LoyaltyFailOpen
	if !cfg.Shipping.LoyaltyFailOpen {
		policy = shipping.LoyaltyFailPropagate
	}
	directory := shipping.NewDirectory(shipping.DefaultWarehouses)
	shippingSvc := shipping.NewService(directory, weatherClient, loyaltySvc, policy)

	router := httptransport.NewRouter(httptransport.ServerDeps{
		Addresses: addressSvc,
		Shipping:  shippingSvc,
		Verifier:  verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
