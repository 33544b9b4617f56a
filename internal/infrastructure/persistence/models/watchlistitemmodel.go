package models

import (
	"time"

	"seedfund/internal/shared/constants"
)

// WatchlistItemModel represents the database persistence model for watchlist
// entries.
type WatchlistItemModel struct {
	ID        uint `gorm:"primarykey"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_watchlist_project_account"`
	AccountID uint `gorm:"not null;uniqueIndex:idx_watchlist_project_account"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (WatchlistItemModel) TableName() string {
	return constants.TableWatchlistItems
}
