package repository

import (
	"database/sql"
	"errors"

	"github.com/dropspace/dropspace/internal/model"
	"github.com/jmoiron/sqlx"
)

// Per-user quota ceilings. Creation is denied once a counter reaches
// its ceiling; the conditional UPDATE below enforces this atomically.
const (
	MaxFolderCount = 14
	MaxFileCount   = 10
)

var (
	ErrCountNotFound = errors.New("count not found")
)

type CountRepository interface {
	Create(count *model.Count) error
	ByUser(userID string) (*model.Count, error)
	TryIncrementFolders(userID string) (bool, error)
	TryIncrementFiles(userID string) (bool, error)
	DecrementFolders(userID string, n int) error
	DecrementFiles(userID string, n int) error
}

type countRepository struct {
	db *sqlx.DB
}

func NewCountRepository(db *sqlx.DB) CountRepository {
	return &countRepository{db: db}
}

func (r *countRepository) Create(count *model.Count) error {
	query := `INSERT INTO counts (user_id, folder_count, file_count) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(query, count.UserID, count.FolderCount, count.FileCount)
	return err
}

func (r *countRepository) ByUser(userID string) (*model.Count, error) {
	count := &model.Count{}
	query := `SELECT * FROM counts WHERE user_id = $1`

	err := r.db.Get(count, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCountNotFound
	}

	return count, err
}

// TryIncrementFolders reserves one folder slot. The guard in the WHERE
// clause makes check and increment a single statement, so two racing
// creates cannot both slip under the ceiling.
func (r *countRepository) TryIncrementFolders(userID string) (bool, error) {
	query := `UPDATE counts SET folder_count = folder_count + 1
	          WHERE user_id = $1 AND folder_count < $2`

	return r.tryIncrement(query, userID, MaxFolderCount)
}

// TryIncrementFiles reserves one file slot.
func (r *countRepository) TryIncrementFiles(userID string) (bool, error) {
	query := `UPDATE counts SET file_count = file_count + 1
	          WHERE user_id = $1 AND file_count < $2`

	return r.tryIncrement(query, userID, MaxFileCount)
}

func (r *countRepository) tryIncrement(query, userID string, ceiling int) (bool, error) {
	result, err := r.db.Exec(query, userID, ceiling)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *countRepository) DecrementFolders(userID string, n int) error {
	query := `UPDATE counts
	          SET folder_count = CASE WHEN folder_count > $2 THEN folder_count - $2 ELSE 0 END
	          WHERE user_id = $1`

	_, err := r.db.Exec(query, userID, n)
	return err
}

func (r *countRepository) DecrementFiles(userID string, n int) error {
	query := `UPDATE counts
	          SET file_count = CASE WHEN file_count > $2 THEN file_count - $2 ELSE 0 END
	          WHERE user_id = $1`

	_, err := r.db.Exec(query, userID, n)
	return err
}
