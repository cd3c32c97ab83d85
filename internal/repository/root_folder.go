package repository

import (
	"database/sql"
	"errors"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrRootFolderNotFound = errors.New("root folder not found")
)

type RootFolderRepository interface {
	Create(folder *model.RootFolder) error
	ByUser(userID string) ([]*model.RootFolder, error)
	ByPathname(userID, pathname string) (*model.RootFolder, error)
	Delete(userID, id string) error
}

type rootFolderRepository struct {
	db *sqlx.DB
}

func NewRootFolderRepository(db *sqlx.DB) RootFolderRepository {
	return &rootFolderRepository{db: db}
}

func (r *rootFolderRepository) Create(folder *model.RootFolder) error {
	query := `INSERT INTO root_folders (id, user_id, name, pathname, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		folder.ID,
		folder.UserID,
		folder.Name,
		folder.Pathname,
		folder.CreatedAt,
	)

	return err
}

func (r *rootFolderRepository) ByUser(userID string) ([]*model.RootFolder, error) {
	var folders []*model.RootFolder
	query := `SELECT * FROM root_folders WHERE user_id = $1 ORDER BY id`

	err := r.db.Select(&folders, query, userID)
	if err != nil {
		return nil, err
	}

	return folders, nil
}

func (r *rootFolderRepository) ByPathname(userID, pathname string) (*model.RootFolder, error) {
	folder := &model.RootFolder{}
	query := `SELECT * FROM root_folders WHERE user_id = $1 AND pathname = $2`

	err := r.db.Get(folder, query, userID, pathname)
	if err == sql.ErrNoRows {
		return nil, ErrRootFolderNotFound
	}

	return folder, err
}

func (r *rootFolderRepository) Delete(userID, id string) error {
	query := `DELETE FROM root_folders WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, id, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRootFolderNotFound
	}

	return nil
}
