package mock

import (
	"sort"
	"sync"
	"time"

	"boardapi/app/models"
	"boardapi/app/repositories"
)

// PostRepository is a map-backed stand-in for the badger repository,
// used by service and controller tests.
type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make(map[int]*models.Post)
	m.nextID = 1
}

func (m *PostRepository) Create(pc *models.PostCreate) (*models.Post, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	post := &models.Post{
		ID:      m.nextID,
		Title:   pc.Title,
		Author:  pc.Author,
		Content: pc.Content,
	}
	post.BeforeCreate()
	m.nextID++
	m.posts[post.ID] = post

	clone := *post
	return &clone, nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *PostRepository) Update(id int, upd *models.PostUpdate) (*models.Post, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	post.Apply(upd)

	clone := *post
	return &clone, nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) IncrementViews(id int) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	post.Views++
	post.UpdatedAt = time.Now().UTC()

	clone := *post
	return &clone, nil
}

func (m *PostRepository) Snapshot() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}
