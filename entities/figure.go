package entities

import "time"

// Figure is a named persona (e.g. a historical person) whose uploaded
// documents form one retrieval scope.
type Figure struct {
	FigureID    uint   `gorm:"primaryKey" json:"figure_id"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description"` // optional bio / style text
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Document is an uploaded source for a figure. Text holds the extracted
// plain text and is filled during ingestion, never mutated afterwards.
type Document struct {
	DocID      uint   `gorm:"primaryKey" json:"doc_id"`
	FigureID   uint   `gorm:"index" json:"figure_id"`
	FileName   string `json:"file_name"`
	SourceURL  string `json:"source_url,omitempty"`
	StoredPath string `json:"-"`
	Text       string `json:"-"`
	CreatedAt  time.Time
}
