package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return errors.New("updated_at cannot precede created_at")
	}

	return nil
}

// Validate checks the create payload against its field constraints
func (pc *PostCreate) Validate() error {
	return validate.Struct(pc)
}

// Validate checks every present field of the update payload; omitted
// fields are skipped.
func (pu *PostUpdate) Validate() error {
	return validate.Struct(pu)
}

// IsEmpty reports whether the update carries no fields at all.
func (pu *PostUpdate) IsEmpty() bool {
	return pu.Title == nil && pu.Author == nil && pu.Content == nil
}

// BeforeCreate stamps both timestamps and zeroes the view counter.
func (p *Post) BeforeCreate() {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	p.Views = 0
}

// Apply copies the present fields of the update onto the post and
// refreshes UpdatedAt. Omitted fields are untouched.
func (p *Post) Apply(upd *PostUpdate) {
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Author != nil {
		p.Author = *upd.Author
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	p.UpdatedAt = time.Now().UTC()
}
