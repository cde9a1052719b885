package repositories

import (
	"fmt"
	"time"

	"boardapi/app/models"

	"github.com/dgraph-io/badger/v4"
)

// SampleSeedCount is the number of demo posts Seed inserts.
const SampleSeedCount = 35

// Seed fills an empty store with demo posts so a fresh instance has
// something to browse. Every third post is authored by "admin" and view
// counters are spread deterministically. A store that already holds
// posts is left alone.
func (r *BadgerPostRepository) Seed() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := []byte(PostKeyPrefix)
		it.Seek(prefix)
		seeded := it.ValidForPrefix(prefix)
		it.Close()
		if seeded {
			return nil
		}

		now := time.Now().UTC()
		for i := 1; i <= SampleSeedCount; i++ {
			author := "jsmith"
			if i%3 == 0 {
				author = "admin"
			}

			id, err := getNextID(txn, PostSeqKey)
			if err != nil {
				return err
			}

			post := &models.Post{
				ID:        id,
				Title:     fmt.Sprintf("Sample post %d", i),
				Author:    author,
				Content:   fmt.Sprintf("Sample content for post number %d.", i),
				CreatedAt: now,
				UpdatedAt: now,
				Views:     (i * 7) % 123,
			}

			data, err := marshalEntity(post)
			if err != nil {
				return err
			}
			if err := txn.Set(postKey(post.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}
