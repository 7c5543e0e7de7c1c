package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"workhive-backend/internal/client"
	"workhive-backend/internal/config"
	"workhive-backend/internal/repository"
	"workhive-backend/internal/server"
	"workhive-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)
	mailer := client.NewMailSender(&cfg.Mail)

	otpRepo := repository.NewOtpRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	otpService := service.NewOtpService(otpRepo, mailer)
	paymentService := service.NewPaymentService(razorpayClient, &cfg.Razorpay)
	enquiryService := service.NewEnquiryService(enquiryRepo, mailer, cfg.SalesEmail)
	bookingService := service.NewBookingService(bookingRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		otpService,
		paymentService,
		enquiryService,
		bookingService,
		cfg.AdminJWTSecret,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
