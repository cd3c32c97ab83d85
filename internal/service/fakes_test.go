package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/dropspace/dropspace/internal/repository"
	"github.com/dropspace/dropspace/internal/storage"
)

// In-memory repository fakes implementing the repository interfaces.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if _, ok := r.users[user.ID]; ok {
		return fmt.Errorf("duplicate user %s", user.ID)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type fakeRootFolderRepo struct {
	folders []*model.RootFolder
}

func (r *fakeRootFolderRepo) Create(folder *model.RootFolder) error {
	for _, f := range r.folders {
		if f.UserID == folder.UserID && f.Name == folder.Name {
			return fmt.Errorf("duplicate root folder %s", folder.Name)
		}
	}
	r.folders = append(r.folders, folder)
	return nil
}

func (r *fakeRootFolderRepo) ByUser(userID string) ([]*model.RootFolder, error) {
	var out []*model.RootFolder
	for _, f := range r.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeRootFolderRepo) ByPathname(userID, pathname string) (*model.RootFolder, error) {
	for _, f := range r.folders {
		if f.UserID == userID && f.Pathname == pathname {
			return f, nil
		}
	}
	return nil, repository.ErrRootFolderNotFound
}

func (r *fakeRootFolderRepo) Delete(userID, id string) error {
	for i, f := range r.folders {
		if f.UserID == userID && f.ID == id {
			r.folders = append(r.folders[:i], r.folders[i+1:]...)
			return nil
		}
	}
	return repository.ErrRootFolderNotFound
}

type fakeFolderRepo struct {
	folders []*model.Folder
}

func (r *fakeFolderRepo) Create(folder *model.Folder) error {
	for _, f := range r.folders {
		if f.UserID == folder.UserID && f.Pathname == folder.Pathname {
			return fmt.Errorf("duplicate folder %s", folder.Pathname)
		}
	}
	r.folders = append(r.folders, folder)
	return nil
}

func (r *fakeFolderRepo) ByUser(userID string) ([]*model.Folder, error) {
	var out []*model.Folder
	for _, f := range r.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) ByPathname(userID, pathname string) (*model.Folder, error) {
	for _, f := range r.folders {
		if f.UserID == userID && f.Pathname == pathname {
			return f, nil
		}
	}
	return nil, repository.ErrFolderNotFound
}

func (r *fakeFolderRepo) DeleteByIDs(userID string, ids []string) (int, error) {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	deleted := 0
	kept := r.folders[:0]
	for _, f := range r.folders {
		if f.UserID == userID && doomed[f.ID] {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	r.folders = kept
	return deleted, nil
}

type fakeFileRepo struct {
	files []*model.File
}

func (r *fakeFileRepo) Create(file *model.File) error {
	for _, f := range r.files {
		if f.S3Key == file.S3Key {
			return fmt.Errorf("duplicate key %s", file.S3Key)
		}
	}
	r.files = append(r.files, file)
	return nil
}

func (r *fakeFileRepo) ByUser(userID string) ([]*model.File, error) {
	var out []*model.File
	for _, f := range r.files {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) ByKey(userID, key string) (*model.File, error) {
	for _, f := range r.files {
		if f.UserID == userID && f.S3Key == key {
			return f, nil
		}
	}
	return nil, repository.ErrFileNotFound
}

func (r *fakeFileRepo) DeleteByKey(userID, key string) (int, error) {
	for i, f := range r.files {
		if f.UserID == userID && f.S3Key == key {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeFileRepo) DeleteByPathnames(userID string, pathnames []string) (int, error) {
	doomed := make(map[string]bool, len(pathnames))
	for _, p := range pathnames {
		doomed[p] = true
	}

	deleted := 0
	kept := r.files[:0]
	for _, f := range r.files {
		if f.UserID == userID && doomed[f.Pathname] {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	r.files = kept
	return deleted, nil
}

type fakeCountRepo struct {
	counts map[string]*model.Count
}

func newFakeCountRepo() *fakeCountRepo {
	return &fakeCountRepo{counts: make(map[string]*model.Count)}
}

func (r *fakeCountRepo) Create(count *model.Count) error {
	if _, ok := r.counts[count.UserID]; ok {
		return fmt.Errorf("duplicate counts row for %s", count.UserID)
	}
	r.counts[count.UserID] = &model.Count{
		UserID:      count.UserID,
		FolderCount: count.FolderCount,
		FileCount:   count.FileCount,
	}
	return nil
}

func (r *fakeCountRepo) ByUser(userID string) (*model.Count, error) {
	count, ok := r.counts[userID]
	if !ok {
		return nil, repository.ErrCountNotFound
	}
	return count, nil
}

func (r *fakeCountRepo) TryIncrementFolders(userID string) (bool, error) {
	count, ok := r.counts[userID]
	if !ok || count.FolderCount >= repository.MaxFolderCount {
		return false, nil
	}
	count.FolderCount++
	return true, nil
}

func (r *fakeCountRepo) TryIncrementFiles(userID string) (bool, error) {
	count, ok := r.counts[userID]
	if !ok || count.FileCount >= repository.MaxFileCount {
		return false, nil
	}
	count.FileCount++
	return true, nil
}

func (r *fakeCountRepo) DecrementFolders(userID string, n int) error {
	count, ok := r.counts[userID]
	if !ok {
		return repository.ErrCountNotFound
	}
	count.FolderCount -= n
	if count.FolderCount < 0 {
		count.FolderCount = 0
	}
	return nil
}

func (r *fakeCountRepo) DecrementFiles(userID string, n int) error {
	count, ok := r.counts[userID]
	if !ok {
		return repository.ErrCountNotFound
	}
	count.FileCount -= n
	if count.FileCount < 0 {
		count.FileCount = 0
	}
	return nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.RootFolderRepository = (*fakeRootFolderRepo)(nil)
	_ repository.FolderRepository     = (*fakeFolderRepo)(nil)
	_ repository.FileRepository       = (*fakeFileRepo)(nil)
	_ repository.CountRepository      = (*fakeCountRepo)(nil)
)

// failingFileRepo makes row inserts fail to exercise the upload
// cleanup path.
type failingFileRepo struct {
	repository.FileRepository
}

func (f *failingFileRepo) Create(_ *model.File) error {
	return errors.New("constraint violation")
}

// failingStorage makes batch deletes fail to exercise the partial
// failure path.
type failingStorage struct {
	storage.ObjectStorage
}

func (f *failingStorage) DeleteBatch(_ context.Context, _ []string) error {
	return errors.New("service unavailable")
}

// testEnv wires the services over fakes and in-memory storage.
type testEnv struct {
	userRepo   *fakeUserRepo
	rootRepo   *fakeRootFolderRepo
	folderRepo *fakeFolderRepo
	fileRepo   *fakeFileRepo
	countRepo  *fakeCountRepo
	objects    *storage.Memory

	users   *UserService
	folders *FolderService
	files   *FileService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userRepo:   newFakeUserRepo(),
		rootRepo:   &fakeRootFolderRepo{},
		folderRepo: &fakeFolderRepo{},
		fileRepo:   &fakeFileRepo{},
		countRepo:  newFakeCountRepo(),
		objects:    storage.NewMemory(),
	}

	env.users = NewUserService(env.userRepo, env.rootRepo, env.countRepo)
	env.folders = NewFolderService(env.rootRepo, env.folderRepo, env.fileRepo, env.countRepo, env.objects)
	env.files = NewFileService(env.fileRepo, env.folderRepo, env.rootRepo, env.countRepo, env.objects, "test-bucket")

	return env
}
