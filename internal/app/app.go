package app

import (
	"fmt"

	"github.com/dropspace/dropspace/internal/config"
	"github.com/dropspace/dropspace/internal/db"
	"github.com/dropspace/dropspace/internal/repository"
	"github.com/dropspace/dropspace/internal/service"
	"github.com/dropspace/dropspace/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg           *config.Config
	DB            *sqlx.DB
	AuthService   *service.AuthService
	UserService   *service.UserService
	FolderService *service.FolderService
	FileService   *service.FileService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	rootFolderRepository := repository.NewRootFolderRepository(database)
	folderRepository := repository.NewFolderRepository(database)
	fileRepository := repository.NewFileRepository(database)
	countRepository := repository.NewCountRepository(database)

	// Storage
	objectStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)
	userService := service.NewUserService(userRepository, rootFolderRepository, countRepository)
	folderService := service.NewFolderService(rootFolderRepository, folderRepository, fileRepository, countRepository, objectStorage)
	fileService := service.NewFileService(fileRepository, folderRepository, rootFolderRepository, countRepository, objectStorage, cfg.S3Bucket)

	return &App{
		Cfg:           cfg,
		DB:            database,
		AuthService:   authService,
		UserService:   userService,
		FolderService: folderService,
		FileService:   fileService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
