package dedup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Capacity is how many ids survive a save.
const Capacity = 1000

// SeenSet holds notified job ids in insertion order.
type SeenSet struct {
	order []string
	ids   map[string]struct{}
}

func NewSeenSet(ids ...string) *SeenSet {
	s := &SeenSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has checks if an id has already been notified
func (s *SeenSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Add marks id as seen. Adding an id again keeps its original position.
func (s *SeenSet) Add(id string) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *SeenSet) Len() int {
	return len(s.order)
}

// Recent returns up to n ids, most recently added last.
func (s *SeenSet) Recent(n int) []string {
	start := 0
	if len(s.order) > n {
		start = len(s.order) - n
	}
	out := make([]string, len(s.order)-start)
	copy(out, s.order[start:])
	return out
}

// Store persists a SeenSet as a flat JSON array of ids.
type Store struct {
	filePath string
	capacity int
	lock     *flock.Flock
}

// NewStore creates a store for the json file at path
func NewStore(path string) *Store {
	return &Store{
		filePath: path,
		capacity: Capacity,
		lock:     flock.New(path + ".lock"),
	}
}

// Load reads the seen ids. A missing, unreadable or corrupt file yields an
// empty set.
func (st *Store) Load() *SeenSet {
	if err := st.lock.RLock(); err != nil {
		log.Printf("⚠️ Failed to lock %s: %v", st.filePath, err)
	} else {
		defer st.lock.Unlock()
	}

	data, err := os.ReadFile(st.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read %s: %v", st.filePath, err)
		}
		return NewSeenSet()
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("⚠️ Failed to parse %s: %v", st.filePath, err)
		return NewSeenSet()
	}

	set := NewSeenSet(ids...)
	log.Printf("📋 Loaded %d previously seen jobs", set.Len())
	return set
}

// Save writes the most recent ids, at most the store capacity. The file is
// replaced atomically.
func (st *Store) Save(set *SeenSet) error {
	if err := os.MkdirAll(filepath.Dir(st.filePath), 0755); err != nil {
		return fmt.Errorf("create seen jobs dir: %w", err)
	}
	if err := st.lock.Lock(); err != nil {
		return fmt.Errorf("lock seen jobs: %w", err)
	}
	defer st.lock.Unlock()

	ids := set.Recent(st.capacity)
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal seen jobs: %w", err)
	}

	tmp := st.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write seen jobs: %w", err)
	}
	if err := os.Rename(tmp, st.filePath); err != nil {
		return fmt.Errorf("replace seen jobs: %w", err)
	}
	log.Printf("💾 Saved %d seen jobs", len(ids))
	return nil
}
