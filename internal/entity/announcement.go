package entity

import "time"

// Announcement is immutable once published; there is no update path.
type Announcement struct {
	ID      int       `yaml:"id" json:"id"`
	Title   string    `yaml:"title" json:"title"`
	Content string    `yaml:"content" json:"content"`
	Date    time.Time `yaml:"date" json:"date"`
	Author  string    `yaml:"author" json:"author"`
}
