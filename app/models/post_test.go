package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostCreateValidate(t *testing.T) {
	valid := PostCreate{
		Title:   "Test Post",
		Author:  "jsmith",
		Content: "This is a test post content",
	}

	t.Run("valid payload", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		assert.Error(t, (&PostCreate{Author: "a", Content: "c"}).Validate())
		assert.Error(t, (&PostCreate{Title: "t", Content: "c"}).Validate())
		assert.Error(t, (&PostCreate{Title: "t", Author: "a"}).Validate())
	})

	t.Run("length bounds", func(t *testing.T) {
		pc := valid
		pc.Title = strings.Repeat("a", 121)
		assert.Error(t, pc.Validate())

		pc = valid
		pc.Title = strings.Repeat("a", 120)
		assert.NoError(t, pc.Validate())

		pc = valid
		pc.Author = strings.Repeat("a", 41)
		assert.Error(t, pc.Validate())

		pc = valid
		pc.Content = strings.Repeat("a", 5001)
		assert.Error(t, pc.Validate())
	})
}

func TestPostUpdateValidate(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("empty update is valid", func(t *testing.T) {
		upd := PostUpdate{}
		assert.NoError(t, upd.Validate())
		assert.True(t, upd.IsEmpty())
	})

	t.Run("present fields are bounded", func(t *testing.T) {
		assert.NoError(t, (&PostUpdate{Title: str("new title")}).Validate())
		assert.Error(t, (&PostUpdate{Title: str("")}).Validate())
		assert.Error(t, (&PostUpdate{Title: str(strings.Repeat("a", 121))}).Validate())
		assert.Error(t, (&PostUpdate{Author: str(strings.Repeat("a", 41))}).Validate())
		assert.Error(t, (&PostUpdate{Content: str("")}).Validate())
	})
}

func TestPostApply(t *testing.T) {
	str := func(s string) *string { return &s }

	base := func() *Post {
		p := &Post{
			Title:   "Original Title",
			Author:  "jsmith",
			Content: "Original content",
		}
		p.BeforeCreate()
		return p
	}

	t.Run("before create stamps both timestamps", func(t *testing.T) {
		p := base()
		assert.False(t, p.CreatedAt.IsZero())
		assert.True(t, p.UpdatedAt.Equal(p.CreatedAt))
		assert.Equal(t, 0, p.Views)
	})

	t.Run("only present fields change", func(t *testing.T) {
		p := base()
		p.Apply(&PostUpdate{Content: str("new text")})

		assert.Equal(t, "Original Title", p.Title)
		assert.Equal(t, "jsmith", p.Author)
		assert.Equal(t, "new text", p.Content)
		assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
	})

	t.Run("all fields change when present", func(t *testing.T) {
		p := base()
		p.Apply(&PostUpdate{
			Title:   str("New Title"),
			Author:  str("admin"),
			Content: str("New content"),
		})

		assert.Equal(t, "New Title", p.Title)
		assert.Equal(t, "admin", p.Author)
		assert.Equal(t, "New content", p.Content)
	})

	t.Run("updated_at never precedes created_at", func(t *testing.T) {
		p := base()
		before := p.UpdatedAt
		time.Sleep(time.Millisecond)
		p.Apply(&PostUpdate{})
		assert.False(t, p.UpdatedAt.Before(before))
	})
}
