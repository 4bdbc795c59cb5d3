package models

import "time"

type Review struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Rating   int       `json:"rating"`
	Title    string    `json:"title,omitempty"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
}
