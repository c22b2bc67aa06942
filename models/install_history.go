package models

import "time"

// InstallHistoryRecord is one row of the append-only installer download log.
// A record is written after every successful gated download and is never
// mutated or deleted.
type InstallHistoryRecord struct {
	// ID is the server-assigned identifier of the record.
	ID int64 `json:"id"`

	// UserID is the account that performed the download.
	UserID string `json:"-"`

	// OS is the installer platform label, fixed per endpoint
	// (e.g. "Windows").
	OS string `json:"os"`

	// InstalledAt is the download timestamp.
	InstalledAt time.Time `json:"installedAt"`
}

// TableName returns the name of the database table
// associated with the InstallHistoryRecord model.
func (r InstallHistoryRecord) TableName() string {
	return "install_history"
}
