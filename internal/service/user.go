package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/dropspace/dropspace/internal/repository"
	"github.com/google/uuid"
)

// Every account starts with these four root folders, pre-counted in
// the user's counts row.
var defaultRootFolders = []string{"Downloads", "Documents", "Music", "Pictures"}

type UserService struct {
	userRepo       repository.UserRepository
	rootFolderRepo repository.RootFolderRepository
	countRepo      repository.CountRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	rootFolderRepo repository.RootFolderRepository,
	countRepo repository.CountRepository,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		rootFolderRepo: rootFolderRepo,
		countRepo:      countRepo,
	}
}

// Provision looks up the authenticated subject and, on first sight,
// creates the user row, the four default root folders and the counts
// row. Existing users pass through untouched.
func (s *UserService) Provision(id, email string) (*model.User, error) {
	user, err := s.userRepo.ByID(id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	user = &model.User{
		ID:        id,
		Email:     email,
		CreatedAt: now,
	}

	err = s.userRepo.Create(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	for _, name := range defaultRootFolders {
		folder := &model.RootFolder{
			ID:        uuid.New().String(),
			UserID:    id,
			Name:      name,
			Pathname:  RootPrefix + "/" + name,
			CreatedAt: now,
		}

		err = s.rootFolderRepo.Create(folder)
		if err != nil {
			return nil, fmt.Errorf("failed to create default folder %s: %w", name, err)
		}
	}

	err = s.countRepo.Create(&model.Count{
		UserID:      id,
		FolderCount: len(defaultRootFolders),
		FileCount:   0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create counts: %w", err)
	}

	slog.Info("new user provisioned", "user_id", id)
	return user, nil
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepo.ByID(id)
}

func (s *UserService) Counts(userID string) (*model.Count, error) {
	return s.countRepo.ByUser(userID)
}
