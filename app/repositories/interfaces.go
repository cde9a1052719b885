package repositories

import "boardapi/app/models"

// PostRepository defines the interface for post data access.
//
// Every mutation is atomic with respect to every other operation:
// callers never observe a half-applied update or a duplicated id.
// Snapshot hands back a private copy that is safe to filter and sort
// without holding any lock.
type PostRepository interface {
	Create(pc *models.PostCreate) (*models.Post, error)
	GetByID(id int) (*models.Post, error)
	Update(id int, upd *models.PostUpdate) (*models.Post, error)
	Delete(id int) error
	IncrementViews(id int) (*models.Post, error)
	Snapshot() ([]*models.Post, error)
}
