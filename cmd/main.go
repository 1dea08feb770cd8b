package main

import (
	"brigada-service/internal/config"
	"brigada-service/internal/database/postgres"
	"brigada-service/internal/event"
	"brigada-service/internal/firebase"
	"brigada-service/internal/handlers"
	"brigada-service/internal/repository"
	"brigada-service/internal/services"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/brigada", "log", "brigada_service")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	// Setup logging
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	defer logFile.Close()

	// Load configuration
	cfg := config.New()
	log.Printf("Connecting to PostgreSQL with: host=%s, port=%s, user=%s, dbname=%s",
		cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, cfg.PostgresCfg.Username, cfg.PostgresCfg.DBname)

	// db connection
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL, retrying in background: %v", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	// Firebase token verification
	firebaseService, err := firebase.NewFirebaseService(cfg.FirebaseCfg)
	if err != nil {
		log.Fatalf("Error initializing Firebase: %v", err)
	}

	// RabbitMQ is optional: the service runs without the event stream.
	var publisher *event.CampoPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("RabbitMQ unavailable, field events disabled: %v", err)
	} else {
		defer rabbitConn.Close()
		publisher = event.NewCampoPublisher(rabbitConn)
	}

	r := gin.Default()

	//repositories
	brigadistaRepository := repository.NewBrigadistaRepository(db)
	referenciaRepository := repository.NewReferenciaRepository(db)
	trayectoRepository := repository.NewTrayectoRepository(db)
	subparcelaRepository := repository.NewSubparcelaRepository(db)
	individuoRepository := repository.NewIndividuoRepository(db)
	muestraRepository := repository.NewMuestraRepository(db)

	//services
	authService := services.NewAuthService(firebaseService, brigadistaRepository)
	brigadistaService := services.NewBrigadistaService(brigadistaRepository)
	coordenadasService := services.NewCoordenadasService(subparcelaRepository, brigadistaRepository, referenciaRepository)
	referenciaService := services.NewReferenciaService(referenciaRepository, brigadistaRepository, trayectoRepository)
	trayectoService := services.NewTrayectoService(trayectoRepository)
	subparcelaService := services.NewSubparcelaService(subparcelaRepository, individuoRepository)
	individuoService := services.NewIndividuoService(individuoRepository)
	muestraService := services.NewMuestraService(muestraRepository)

	// handlers
	middleware := handlers.NewMiddleware(firebaseService)
	authHandler := handlers.NewAuthHandler(authService)
	brigadistaHandler := handlers.NewBrigadistaHandler(brigadistaService, middleware)
	coordenadasHandler := handlers.NewCoordenadasHandler(coordenadasService, brigadistaService, middleware)
	referenciaHandler := handlers.NewReferenciaHandler(referenciaService, publisher, middleware)
	trayectoHandler := handlers.NewTrayectoHandler(trayectoService, referenciaService, publisher, middleware)
	subparcelaHandler := handlers.NewSubparcelaHandler(subparcelaService, publisher, middleware)
	individuoHandler := handlers.NewIndividuoHandler(individuoService, publisher, middleware)
	muestraHandler := handlers.NewMuestraHandler(muestraService, publisher, middleware)

	// Register routes
	authHandler.RegisterRoutes(r)
	brigadistaHandler.RegisterRoutes(r)
	coordenadasHandler.RegisterRoutes(r)
	referenciaHandler.RegisterRoutes(r)
	trayectoHandler.RegisterRoutes(r)
	subparcelaHandler.RegisterRoutes(r)
	individuoHandler.RegisterRoutes(r)
	muestraHandler.RegisterRoutes(r)

	log.Printf("Starting brigada-service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
