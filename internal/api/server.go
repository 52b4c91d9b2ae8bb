package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"giftstore-backend/docs"
	v1 "giftstore-backend/internal/api/handler/v1"
	"giftstore-backend/internal/api/middleware"
	"giftstore-backend/internal/config"
	"giftstore-backend/internal/repository"
	"giftstore-backend/internal/repository/dao"
	"giftstore-backend/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	productHandler, categoryHandler := s.initCatalogHandlers(db)
	customerHandler := s.initCustomerHandler(db)
	orderHandler := s.initOrderHandler(db)
	expenseHandler := s.initExpenseHandler(db)
	reportHandler := s.initReportHandler(db)
	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	s.MountHandlers(productHandler, categoryHandler, customerHandler, orderHandler, expenseHandler, reportHandler, authHandler, userHandler)

	return s
}

func (s *Server) initCatalogHandlers(db *gorm.DB) (*v1.ProductHandler, *v1.CategoryHandler) {
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewCatalogService(productRepo, categoryRepo)

	return v1.NewProductHandler(svc), v1.NewCategoryHandler(svc)
}

func (s *Server) initCustomerHandler(db *gorm.DB) *v1.CustomerHandler {
	repo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	svc := service.NewCustomerService(repo)

	return v1.NewCustomerHandler(svc)
}

func (s *Server) initOrderHandler(db *gorm.DB) *v1.OrderHandler {
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	customerRepo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	inventoryRepo := repository.NewInventoryMovementRepository(dao.NewInventoryMovementDAO(db))
	svc := service.NewOrderService(orderRepo, productRepo, customerRepo, inventoryRepo)

	return v1.NewOrderHandler(svc)
}

func (s *Server) initExpenseHandler(db *gorm.DB) *v1.ExpenseHandler {
	repo := repository.NewExpenseRepository(dao.NewExpenseDAO(db))
	svc := service.NewExpenseService(repo)

	return v1.NewExpenseHandler(svc)
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	svc := service.NewReportService(orderRepo, productRepo)

	return v1.NewReportHandler(svc)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	productHandler *v1.ProductHandler,
	categoryHandler *v1.CategoryHandler,
	customerHandler *v1.CustomerHandler,
	orderHandler *v1.OrderHandler,
	expenseHandler *v1.ExpenseHandler,
	reportHandler *v1.ReportHandler,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
) {
	const basePath = "/api/v1"

	store := s.Router.Group(basePath)
	{
		store.GET("/products", productHandler.HandleListProducts)
		store.POST("/products", productHandler.HandleAddProduct)
		store.GET("/products/:productID", productHandler.HandleGetProduct)
		store.PUT("/products/:productID", productHandler.HandleUpdateProduct)
		store.DELETE("/products/:productID", productHandler.HandleDeleteProduct)

		store.GET("/categories", categoryHandler.HandleListCategories)
		store.POST("/categories", categoryHandler.HandleAddCategory)

		store.GET("/customers", customerHandler.HandleListCustomers)
		store.POST("/customers", customerHandler.HandleAddCustomer)
		store.GET("/customers/:customerID", customerHandler.HandleGetCustomer)

		store.GET("/orders", orderHandler.HandleListOrders)
		store.POST("/orders", orderHandler.HandleCreateOrder)
		store.GET("/orders/:orderID", orderHandler.HandleGetOrder)
		store.PUT("/orders/:orderID/status", orderHandler.HandleUpdateOrderStatus)

		store.GET("/expenses", expenseHandler.HandleListExpenses)
		store.POST("/expenses", expenseHandler.HandleAddExpense)
		store.DELETE("/expenses/:expenseID", expenseHandler.HandleDeleteExpense)

		store.GET("/reports/low-stock", reportHandler.HandleLowStockReport)
		store.GET("/reports/sales-summary", reportHandler.HandleSalesSummary)
		store.GET("/reports/top-products", reportHandler.HandleTopProducts)
	}

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Gift Store API"
	docs.SwaggerInfo.Description = "Retail-management backend for a gift shop."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
