package server

import (
	"net/http"
	"workhive-backend/internal/handler"
	authmw "workhive-backend/internal/middleware"
	"workhive-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	otpHandler     *handler.OtpHandler
	paymentHandler *handler.PaymentHandler
	enquiryHandler *handler.EnquiryHandler
	bookingHandler *handler.BookingHandler
	adminSecret    string
}

func NewServer(
	otpService service.OtpService,
	paymentService service.PaymentService,
	enquiryService service.EnquiryService,
	bookingService service.BookingService,
	adminSecret string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))

	s := &Server{
		echo:           e,
		otpHandler:     handler.NewOtpHandler(otpService),
		paymentHandler: handler.NewPaymentHandler(paymentService),
		enquiryHandler: handler.NewEnquiryHandler(enquiryService),
		bookingHandler: handler.NewBookingHandler(bookingService),
		adminSecret:    adminSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- otp --------
	auth := api.Group("/auth")
	auth.POST("/otp/send", s.otpHandler.SendOtp)
	auth.POST("/otp/verify", s.otpHandler.VerifyOtp)

	// -------- payments --------
	api.POST("/payments/orders", s.paymentHandler.CreateOrder)

	// -------- enquiries & bookings --------
	api.POST("/enquiries", s.enquiryHandler.SubmitEnquiry)
	api.POST("/bookings", s.bookingHandler.RecordBooking)

	// -------- admin back-office --------
	admin := api.Group("/admin", authmw.AdminAuth(s.adminSecret))
	admin.GET("/bookings", s.bookingHandler.ListBookings)
	admin.GET("/enquiries", s.enquiryHandler.ListEnquiries)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
