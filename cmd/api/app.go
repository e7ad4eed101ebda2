package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/controller"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/route"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	"github.com/hugohenrick/agro-dashboard/internal/infrastructure/database"
	"github.com/hugohenrick/agro-dashboard/pkg/auth"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()

	// Serviço de tokens JWT
	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar repositórios
	farmerRepo := repository.NewFarmerRepository(db)
	leaderRepo := repository.NewLeaderRepository(db)
	supervisorRepo := repository.NewSupervisorRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db, seasonRepo)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	farmerController := controller.NewFarmerController(farmerRepo, log)
	leaderController := controller.NewLeaderController(leaderRepo, log)
	supervisorController := controller.NewSupervisorController(supervisorRepo, log)
	productController := controller.NewProductController(productRepo, log)
	customerController := controller.NewCustomerController(customerRepo, log)
	seasonController := controller.NewSeasonController(seasonRepo, log)
	receiptController := controller.NewReceiptController(receiptRepo, log)
	issueController := controller.NewIssueController(issueRepo, log)
	invoiceController := controller.NewInvoiceController(invoiceRepo, log)
	userController := controller.NewUserController(userRepo, log)
	dashboardController := controller.NewDashboardController(reportRepo, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())

	// Configurar CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Registrar rotas
	route.RegisterAuthRoutes(api, authController)
	route.RegisterFarmerRoutes(api, farmerController)
	route.RegisterLeaderRoutes(api, leaderController)
	route.RegisterSupervisorRoutes(api, supervisorController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterSeasonRoutes(api, seasonController)
	route.RegisterStockRoutes(api, receiptController, issueController)
	route.RegisterInvoiceRoutes(api, invoiceController)
	route.RegisterUserRoutes(api, userController)
	route.RegisterDashboardRoutes(api, dashboardController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("Iniciando servidor HTTP", "port", port)

	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
