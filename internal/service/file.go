package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/dropspace/dropspace/internal/repository"
	"github.com/dropspace/dropspace/internal/storage"
	"github.com/dropspace/dropspace/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrMaxFileCount = errors.New("max file count reached")
)

type FileService struct {
	fileRepo       repository.FileRepository
	folderRepo     repository.FolderRepository
	rootFolderRepo repository.RootFolderRepository
	countRepo      repository.CountRepository
	storage        storage.ObjectStorage
	bucket         string
}

func NewFileService(
	fileRepo repository.FileRepository,
	folderRepo repository.FolderRepository,
	rootFolderRepo repository.RootFolderRepository,
	countRepo repository.CountRepository,
	storage storage.ObjectStorage,
	bucket string,
) *FileService {
	return &FileService{
		fileRepo:       fileRepo,
		folderRepo:     folderRepo,
		rootFolderRepo: rootFolderRepo,
		countRepo:      countRepo,
		storage:        storage,
		bucket:         bucket,
	}
}

// Upload validates the file, reserves a file slot, writes the object
// and then the metadata row. If the row insert fails the object delete
// is attempted so the bucket does not accumulate orphans, and the slot
// is released.
func (s *FileService) Upload(ctx context.Context, userID, pathname, filename, mimeType string, data []byte) (*model.File, error) {
	err := validation.ValidateUpload(filename, mimeType, int64(len(data)))
	if err != nil {
		return nil, err
	}

	// The containing folder must exist; files never float free
	err = s.ensureContainerExists(userID, pathname)
	if err != nil {
		return nil, err
	}

	ok, err := s.countRepo.TryIncrementFiles(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve file slot: %w", err)
	}
	if !ok {
		return nil, ErrMaxFileCount
	}

	key := fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().UnixMilli(), filepath.Ext(filename))

	err = s.storage.Save(ctx, key, bytes.NewReader(data), mimeType)
	if err != nil {
		s.releaseFileSlot(userID)
		return nil, fmt.Errorf("failed to save object: %w", err)
	}

	file := &model.File{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      filename,
		MimeType:  mimeType,
		Size:      strconv.Itoa(len(data)),
		Pathname:  pathname,
		S3Key:     key,
		S3Bucket:  s.bucket,
		CreatedAt: time.Now(),
	}

	err = s.fileRepo.Create(file)
	if err != nil {
		delErr := s.storage.Delete(ctx, key)
		if delErr != nil {
			slog.Error("failed to delete object during cleanup", "error", delErr, "key", key)
		}
		s.releaseFileSlot(userID)
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return file, nil
}

// Delete removes a file's metadata row first, then makes a best-effort
// attempt on the object. Deleting a file that no longer exists is a
// no-op, and object-store failures never surface to the caller.
func (s *FileService) Delete(ctx context.Context, userID, key string) error {
	deleted, err := s.fileRepo.DeleteByKey(userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	if deleted > 0 {
		err = s.countRepo.DecrementFiles(userID, deleted)
		if err != nil {
			slog.Error("failed to decrement file count", "error", err, "user_id", userID)
		}
	}

	err = s.storage.Delete(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			slog.Info("object already absent", "key", key)
		} else {
			slog.Error("failed to delete object", "error", err, "code", storage.ErrorCode(err), "key", key)
		}
		return nil
	}

	err = s.storage.WaitNotExists(ctx, key)
	if err != nil {
		slog.Warn("object deletion not confirmed", "error", err, "key", key)
	}

	return nil
}

// Download returns the object's bytes for one of the user's files.
// A missing metadata row and a missing object both report not-found;
// anything else is a generic failure.
func (s *FileService) Download(ctx context.Context, userID, key string) ([]byte, error) {
	_, err := s.fileRepo.ByKey(userID, key)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s *FileService) Files(userID string) ([]*model.File, error) {
	return s.fileRepo.ByUser(userID)
}

func (s *FileService) ensureContainerExists(userID, pathname string) error {
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

func (s *FileService) releaseFileSlot(userID string) {
	err := s.countRepo.DecrementFiles(userID, 1)
	if err != nil {
		slog.Error("failed to release file slot", "error", err, "user_id", userID)
	}
}
