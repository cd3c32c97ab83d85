package model

// Count holds the per-user resource counters used for quota
// enforcement. One row per user, created at signup with the four
// default root folders already counted.
type Count struct {
	UserID      string `db:"user_id" json:"userId"`
	FolderCount int    `db:"folder_count" json:"folderCount"`
	FileCount   int    `db:"file_count" json:"fileCount"`
}
