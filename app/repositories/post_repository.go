package repositories

import (
	"fmt"
	"sync"
	"time"

	"boardapi/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository on an in-memory badger
// instance. A single RWMutex serializes mutations against each other and
// against snapshots; the critical section never does more work than one
// pass over the collection.
type BadgerPostRepository struct {
	db    *badger.DB
	mutex sync.RWMutex
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create allocates the next sequential id, stamps both timestamps and
// stores the new post. Ids are allocated in the same transaction as the
// insert, so concurrent creates never collide.
func (r *BadgerPostRepository) Create(pc *models.PostCreate) (*models.Post, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	post := &models.Post{
		Title:   pc.Title,
		Author:  pc.Author,
		Content: pc.Content,
	}
	post.BeforeCreate()

	err := r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return readPost(txn, id, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies the present fields of upd to the stored post and
// refreshes updated_at. Omitted fields are untouched.
func (r *BadgerPostRepository) Update(id int, upd *models.PostUpdate) (*models.Post, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	var post models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := readPost(txn, id, &post); err != nil {
			return err
		}

		post.Apply(upd)

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post by ID. The id is never reused afterwards.
func (r *BadgerPostRepository) Delete(id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// IncrementViews bumps the view counter by one and refreshes updated_at.
func (r *BadgerPostRepository) IncrementViews(id int) (*models.Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var post models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := readPost(txn, id, &post); err != nil {
			return err
		}

		post.Views++
		post.UpdatedAt = time.Now().UTC()

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Snapshot returns a point-in-time copy of every post in id order. The
// copy belongs to the caller; no lock is needed to read it.
func (r *BadgerPostRepository) Snapshot() ([]*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// readPost loads one post inside a transaction, mapping a missing key to
// ErrNotFound.
func readPost(txn *badger.Txn, id int, post *models.Post) error {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, post)
	})
}
