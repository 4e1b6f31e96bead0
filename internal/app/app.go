package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playgroundvalidator "github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/cep"
	"contratando_backend/internal/config"
	"contratando_backend/internal/email"
	"contratando_backend/internal/handlers"
	"contratando_backend/internal/logger"
	"contratando_backend/internal/middleware"
	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/internal/routes"
	"contratando_backend/internal/services"
	"contratando_backend/internal/storage"
	"contratando_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstMaster(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first master user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate keeps the schema in sync at startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UsuarioAdmin{},
		&models.Corretor{},
		&models.Proposta{},
		&models.Produto{},
		&models.TabelaPreco{},
		&models.TabelaPrecoFaixa{},
		&models.ProdutoTabela{},
	)
}

// SetupRouter builds the fully wired gin engine. The test harness calls
// it with its own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	// Domain rules must be visible to gin's binding engine too.
	if engine, ok := binding.Validator.Engine().(*playgroundvalidator.Validate); ok {
		validator.RegisterRules(engine)
	}

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(cfg, serviceContainer, storageInstance)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.AuthService)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPHost == "smtp.test.com" {
		logger.Warn("SMTP not configured, outgoing email disabled")
		emailProvider = email.NewNoopProvider()
	} else {
		emailProvider = email.NewSMTPProvider(cfg)
	}

	usuarioRepo := repositories.NewUsuarioAdminRepository(gormDB)
	corretorRepo := repositories.NewCorretorRepository(gormDB)
	propostaRepo := repositories.NewPropostaRepository(gormDB)
	produtoRepo := repositories.NewProdutoRepository(gormDB)

	tabelaService := services.NewTabelaService(produtoRepo)
	authService := services.NewAuthService(usuarioRepo)
	usuarioService := services.NewUsuarioAdminService(usuarioRepo)
	produtoService := services.NewProdutoService(produtoRepo)
	corretorService := services.NewCorretorService(corretorRepo)
	propostaService := services.NewPropostaService(
		propostaRepo,
		corretorRepo,
		tabelaService,
		storageInstance,
		emailProvider,
		cfg.Upload.MaxSize,
		cfg.Upload.AllowedTypes,
	)

	return &services.ServiceContainer{
		AuthService:     authService,
		UsuarioService:  usuarioService,
		PropostaService: propostaService,
		ProdutoService:  produtoService,
		TabelaService:   tabelaService,
		CorretorService: corretorService,
		EmailProvider:   emailProvider,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	cepClient := cep.NewClient(cfg.ViaCEP.BaseURL, time.Duration(cfg.ViaCEP.TimeoutMS)*time.Millisecond)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		UsuarioHandler:  handlers.NewUsuarioAdminHandler(baseHandler, container.UsuarioService),
		PropostaHandler: handlers.NewPropostaHandler(baseHandler, container.PropostaService),
		ProdutoHandler:  handlers.NewProdutoHandler(baseHandler, container.ProdutoService, container.TabelaService),
		CorretorHandler: handlers.NewCorretorHandler(baseHandler, container.CorretorService),
		CEPHandler:      handlers.NewCEPHandler(baseHandler, cepClient),
		FileHandler:     handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstMaster creates the initial master user when the table is
// empty. Without it a fresh deployment has no way to log in.
func seedFirstMaster(db *gorm.DB, cfg *config.Config) error {
	masterEmail := cfg.Seed.MasterEmail
	masterSenha := cfg.Seed.MasterSenha

	if masterEmail == "" || masterSenha == "" {
		logger.Warn("Seed master email or password not set. Skipping master seeding.")
		return nil
	}

	var count int64
	if err := db.Model(&models.UsuarioAdmin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.UsuarioAdmin
	result := tx.Where("email = ?", masterEmail).First(&existing)
	if result.Error == nil {
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for master user: %w", result.Error)
	}

	logger.Warn("No admin users found. Creating first master...", "email", masterEmail)

	hash, err := auth.HashPassword(masterSenha)
	if err != nil {
		return fmt.Errorf("failed to hash master password: %w", err)
	}

	nome := cfg.Seed.MasterNome
	if nome == "" {
		nome = "Administrador"
	}

	master := &models.UsuarioAdmin{
		Nome:       nome,
		Email:      masterEmail,
		SenhaHash:  hash,
		Perfil:     auth.PerfilMaster,
		Permissoes: datatypes.NewJSONType(auth.PermissaoMap{}),
		Ativo:      true,
	}

	if err := tx.Create(master).Error; err != nil {
		return fmt.Errorf("failed to create master user: %w", err)
	}

	logger.Info("First master user created", "email", masterEmail)
	return tx.Commit().Error
}
