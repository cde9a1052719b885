package services

import (
	"fmt"

	"boardapi/app/models"
	"boardapi/app/query"
	"boardapi/app/repositories"
)

// PostService handles business logic for board posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates the payload and stores a new post.
func (s *PostService) CreatePost(pc *models.PostCreate) (*models.Post, error) {
	if err := pc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	return s.postRepo.Create(pc)
}

// GetPost retrieves a post by ID.
//
// With incView set, the read also bumps the view counter and refreshes
// updated_at — repeated calls are NOT idempotent. Pass false to read
// without the side effect.
func (s *PostService) GetPost(id int, incView bool) (*models.Post, error) {
	if incView {
		return s.postRepo.IncrementViews(id)
	}
	return s.postRepo.GetByID(id)
}

// UpdatePost applies the present fields of upd to an existing post.
// Omitted fields stay as they are; present fields are validated first so
// a bad value never causes a partial write. Concurrent updates to the
// same post are serialized by the store and the last writer wins.
func (s *PostService) UpdatePost(id int, upd *models.PostUpdate) (*models.Post, error) {
	if err := upd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	return s.postRepo.Update(id, upd)
}

// DeletePost removes a post and returns the deleted id for confirmation.
func (s *PostService) DeletePost(id int) (int, error) {
	if err := s.postRepo.Delete(id); err != nil {
		return 0, err
	}
	return id, nil
}

// ListPosts runs a search over a consistent snapshot of the store.
//
// sortSpec is a "field:direction" string; anything malformed falls back
// to created_at:desc. The store lock is held only while the snapshot is
// copied — filtering, sorting and slicing run on the private copy.
func (s *PostService) ListPosts(term, sortSpec string, page, size int) (*models.PageResult, error) {
	field, dir := query.ParseSort(sortSpec)

	posts, err := s.postRepo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot posts: %w", err)
	}

	return query.Run(posts, term, field, dir, page, size), nil
}
