package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/dropspace/dropspace/internal/repository"
	"github.com/dropspace/dropspace/internal/storage"
	"github.com/dropspace/dropspace/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrMaxFolderCount       = errors.New("max folder count reached")
	ErrParentFolderNotFound = errors.New("parent folder not found")
)

type FolderService struct {
	rootFolderRepo repository.RootFolderRepository
	folderRepo     repository.FolderRepository
	fileRepo       repository.FileRepository
	countRepo      repository.CountRepository
	storage        storage.ObjectStorage
}

func NewFolderService(
	rootFolderRepo repository.RootFolderRepository,
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	countRepo repository.CountRepository,
	storage storage.ObjectStorage,
) *FolderService {
	return &FolderService{
		rootFolderRepo: rootFolderRepo,
		folderRepo:     folderRepo,
		fileRepo:       fileRepo,
		countRepo:      countRepo,
		storage:        storage,
	}
}

// CreateRoot creates a top-level folder under /folders. The folder
// slot is reserved atomically before the row is written and released
// if the write fails.
func (s *FolderService) CreateRoot(userID, name string) (*model.RootFolder, error) {
	if err := validation.ValidateFolderName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	ok, err := s.countRepo.TryIncrementFolders(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve folder slot: %w", err)
	}
	if !ok {
		return nil, ErrMaxFolderCount
	}

	folder := &model.RootFolder{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Pathname:  RootPrefix + "/" + encodeName(name),
		CreatedAt: time.Now(),
	}

	err = s.rootFolderRepo.Create(folder)
	if err != nil {
		s.releaseFolderSlot(userID)
		return nil, fmt.Errorf("failed to create root folder: %w", err)
	}

	return folder, nil
}

// Create creates a folder nested under an existing root or nested
// folder addressed by parentPathname.
func (s *FolderService) Create(userID, parentPathname, name string) (*model.Folder, error) {
	if err := validation.ValidateFolderName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	err := s.ensureFolderExists(userID, parentPathname)
	if err != nil {
		return nil, err
	}

	ok, err := s.countRepo.TryIncrementFolders(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve folder slot: %w", err)
	}
	if !ok {
		return nil, ErrMaxFolderCount
	}

	folder := &model.Folder{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Parent:    lastSegment(parentPathname),
		Pathname:  parentPathname + "/" + encodeName(name),
		CreatedAt: time.Now(),
	}

	err = s.folderRepo.Create(folder)
	if err != nil {
		s.releaseFolderSlot(userID)
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return folder, nil
}

func (s *FolderService) RootFolders(userID string) ([]*model.RootFolder, error) {
	return s.rootFolderRepo.ByUser(userID)
}

func (s *FolderService) Folders(userID string) ([]*model.Folder, error) {
	return s.folderRepo.ByUser(userID)
}

// FolderDeleteResult reports what a cascading deletion actually
// removed. ObjectErrors carries object-store failures that were
// observed but did not stop the metadata cleanup; a non-empty slice
// means the deletion completed partially.
type FolderDeleteResult struct {
	FoldersDeleted int
	FilesDeleted   int
	ObjectErrors   []string
}

func (r *FolderDeleteResult) Partial() bool {
	return len(r.ObjectErrors) > 0
}

// Delete removes a folder subtree: the target folder, its descendant
// closure, every file contained in any of them, and their object-store
// payloads. Object-store failures are logged and surfaced in the
// result but never abort the metadata cleanup; metadata failures
// abort.
func (s *FolderService) Delete(ctx context.Context, userID, folderID, pathname string) (*FolderDeleteResult, error) {
	isRoot := isRootPath(pathname)

	// Ownership check before touching anything
	if isRoot {
		_, err := s.rootFolderRepo.ByPathname(userID, pathname)
		if err != nil {
			return nil, err
		}
	} else {
		_, err := s.folderRepo.ByPathname(userID, pathname)
		if err != nil {
			return nil, err
		}
	}

	folders, err := s.folderRepo.ByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}

	files, err := s.fileRepo.ByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load files: %w", err)
	}

	ids, paths := descendants(pathname, folders)
	if !isRoot {
		// The target row itself lives in the folders table
		ids = append([]string{folderID}, ids...)
		paths = append([]string{pathname}, paths...)
	}

	doomed := subtreeFiles(pathname, paths, files)

	result := &FolderDeleteResult{}

	// Object removal first: best effort, metadata stays the source of
	// truth for the UI even when the bucket disagrees.
	if len(doomed) > 0 {
		keys := make([]string, 0, len(doomed))
		for _, file := range doomed {
			keys = append(keys, file.S3Key)
		}

		err = s.storage.DeleteBatch(ctx, keys)
		if err != nil {
			slog.Error("failed to batch delete objects",
				"error", err, "code", storage.ErrorCode(err), "user_id", userID)
			result.ObjectErrors = append(result.ObjectErrors, err.Error())
		}

		for _, key := range keys {
			err = s.storage.WaitNotExists(ctx, key)
			if err != nil {
				slog.Warn("object deletion not confirmed", "error", err, "key", key)
				result.ObjectErrors = append(result.ObjectErrors, err.Error())
			}
		}
	}

	foldersDeleted := 0
	if isRoot {
		err = s.rootFolderRepo.Delete(userID, folderID)
		if err != nil {
			return result, fmt.Errorf("failed to delete root folder: %w", err)
		}
		foldersDeleted++
	}

	n, err := s.folderRepo.DeleteByIDs(userID, ids)
	if err != nil {
		return result, fmt.Errorf("failed to delete folders: %w", err)
	}
	foldersDeleted += n

	filePaths := make([]string, 0, len(doomed))
	for _, file := range doomed {
		filePaths = append(filePaths, file.Pathname)
	}

	filesDeleted, err := s.fileRepo.DeleteByPathnames(userID, filePaths)
	if err != nil {
		return result, fmt.Errorf("failed to delete files: %w", err)
	}

	err = s.countRepo.DecrementFolders(userID, foldersDeleted)
	if err != nil {
		slog.Error("failed to decrement folder count", "error", err, "user_id", userID, "n", foldersDeleted)
	}

	err = s.countRepo.DecrementFiles(userID, filesDeleted)
	if err != nil {
		slog.Error("failed to decrement file count", "error", err, "user_id", userID, "n", filesDeleted)
	}

	result.FoldersDeleted = foldersDeleted
	result.FilesDeleted = filesDeleted

	return result, nil
}

// ensureFolderExists verifies that pathname addresses one of the
// user's root or nested folders.
func (s *FolderService) ensureFolderExists(userID, pathname string) error {
	if isRootPath(pathname) {
		_, err := s.rootFolderRepo.ByPathname(userID, pathname)
		if errors.Is(err, repository.ErrRootFolderNotFound) {
			return ErrParentFolderNotFound
		}
		return err
	}

	_, err := s.folderRepo.ByPathname(userID, pathname)
	if errors.Is(err, repository.ErrFolderNotFound) {
		return ErrParentFolderNotFound
	}
	return err
}

func (s *FolderService) releaseFolderSlot(userID string) {
	err := s.countRepo.DecrementFolders(userID, 1)
	if err != nil {
		slog.Error("failed to release folder slot", "error", err, "user_id", userID)
	}
}
