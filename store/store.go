// Package store keeps the search keyword history of the editor in a bbolt
// database so that earlier keywords can be recalled across sessions.
package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketSearch = "search"

// History is the persistent list of search keywords, oldest first.
type History struct {
	db    *bolt.DB
	limit int
}

// Open opens (creating if needed) the history database at path. At most
// limit keywords are kept; limit <= 0 keeps all of them.
func Open(path string, limit int) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	// bolt.Open waits for the file lock held by any other running editor.
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSearch))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize search history: %w", err)
	}

	return &History{db: db, limit: limit}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// Add appends keyword to the history. Empty keywords and repeats of the most
// recent keyword are ignored.
func (h *History) Add(keyword string) error {
	if keyword == "" {
		return nil
	}

	return h.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSearch))
		c := b.Cursor()

		if _, last := c.Last(); last != nil && string(last) == keyword {
			return nil
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(marshalSeq(seq), []byte(keyword)); err != nil {
			return err
		}

		if h.limit <= 0 {
			return nil
		}

		var keys [][]byte
		c = b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys[:max(len(keys)-h.limit, 0)] {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Keywords returns all stored keywords, oldest first.
func (h *History) Keywords() ([]string, error) {
	var keywords []string
	err := h.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSearch))
		return b.ForEach(func(_, v []byte) error {
			keywords = append(keywords, string(v))
			return nil
		})
	})
	return keywords, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
