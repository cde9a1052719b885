package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a single board entry.
type Post struct {
	ID        int       `json:"id" validate:"required,gte=1"`
	Title     string    `json:"title" validate:"required,min=1,max=120"`
	Author    string    `json:"author" validate:"required,min=1,max=40"`
	Content   string    `json:"content" validate:"required,min=1,max=5000"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
	Views     int       `json:"views" validate:"gte=0"`
}

// PostCreate is the payload for creating a post.
type PostCreate struct {
	Title   string `json:"title" validate:"required,min=1,max=120"`
	Author  string `json:"author" validate:"required,min=1,max=40"`
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

// PostUpdate is the payload for a partial update. A nil field means
// "leave untouched"; a present field must satisfy the same bounds as on
// create, so an explicit empty string is rejected, never treated as an
// omission.
type PostUpdate struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=120"`
	Author  *string `json:"author" validate:"omitnil,min=1,max=40"`
	Content *string `json:"content" validate:"omitnil,min=1,max=5000"`
}

// PageResult is one page of a filtered, sorted post listing. Total counts
// every post matching the filter, not only the ones on this page.
type PageResult struct {
	Items []*Post `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
}
