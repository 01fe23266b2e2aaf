package domain

import "time"

// ImportLog is the audit record of one import invocation.
type ImportLog struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:256" json:"filename"`
	Source       string    `gorm:"size:32;index" json:"source"`
	TotalRows    int       `json:"total_rows"`
	ValidCount   int       `json:"valid_count"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	Committed    int       `json:"committed"` // products actually written
	Remark       string    `gorm:"size:512" json:"remark"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}
