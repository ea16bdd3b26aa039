// Package catalog keeps a durable sqlite record of every extracted clip.
//
// The tab-delimited metadata file is truncated on every run; the catalog is
// where provenance survives across runs, keyed by run ID.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultDBFile = "utterclip.sqlite3"
const errClientNil = "catalog client is nil"

type Client struct {
	DB *gorm.DB
	db *sql.DB
}

// Clip is one extracted excerpt with its provenance.
type Clip struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	RunID     string  `gorm:"type:varchar(36);index:idx_run" json:"run_id"`
	ClipID    int     `gorm:"index:idx_run_clip" json:"clip_id"`
	Path      string  `json:"path"`
	ParentWAV string  `gorm:"index:idx_parent" json:"parent_wav"`
	Word      string  `gorm:"index:idx_word" json:"word"`
	StartSec  float64 `json:"start_sec"`
	EndSec    float64 `json:"end_sec"`
	Text      string  `json:"text"`
	Digest    string  `gorm:"type:varchar(64)" json:"digest"`
	CreatedAt time.Time
}

func Open(dbPath string) (*Client, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&Clip{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &Client{DB: db, db: sqlDB}, nil
}

func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// RecordClip appends one clip to the catalog.
func (c *Client) RecordClip(clip *Clip) error {
	if c == nil || c.DB == nil {
		return errors.New(errClientNil)
	}
	if err := c.DB.Create(clip).Error; err != nil {
		return fmt.Errorf("recording clip %d: %w", clip.ClipID, err)
	}
	return nil
}

// ListClips returns all clips across runs, oldest first.
func (c *Client) ListClips() ([]Clip, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errClientNil)
	}
	var clips []Clip
	if err := c.DB.Order("id asc").Find(&clips).Error; err != nil {
		return nil, fmt.Errorf("listing clips: %w", err)
	}
	return clips, nil
}

// ClipCount returns the number of clips recorded for a run.
func (c *Client) ClipCount(runID string) (int64, error) {
	if c == nil || c.DB == nil {
		return 0, errors.New(errClientNil)
	}
	var n int64
	if err := c.DB.Model(&Clip{}).Where("run_id = ?", runID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting clips for run %s: %w", runID, err)
	}
	return n, nil
}
