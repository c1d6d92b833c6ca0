package handlers

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizrand-server/models"
)

// BankEntry is a loaded question bank kept in memory along with the
// name of the file it was parsed from.
type BankEntry struct {
	ID       string               `json:"id"`
	Filename string               `json:"filename"`
	LoadedAt time.Time            `json:"loaded_at"`
	Bank     *models.QuestionBank `json:"-"`
}

// BankRegistry holds every bank loaded during this process lifetime.
// State is in-memory only; restarting the server clears it.
type BankRegistry struct {
	mu    sync.RWMutex
	banks map[string]*BankEntry
}

func NewBankRegistry() *BankRegistry {
	return &BankRegistry{banks: make(map[string]*BankEntry)}
}

// Put stores a freshly parsed bank and returns its generated ID.
func (r *BankRegistry) Put(filename string, bank *models.QuestionBank) *BankEntry {
	entry := &BankEntry{
		ID:       uuid.NewString(),
		Filename: filename,
		LoadedAt: time.Now(),
		Bank:     bank,
	}
	r.mu.Lock()
	r.banks[entry.ID] = entry
	r.mu.Unlock()
	return entry
}

func (r *BankRegistry) Get(id string) (*BankEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.banks[id]
	return entry, ok
}

// List returns all entries ordered by load time, oldest first.
func (r *BankRegistry) List() []*BankEntry {
	r.mu.RLock()
	entries := make([]*BankEntry, 0, len(r.banks))
	for _, entry := range r.banks {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LoadedAt.Before(entries[j].LoadedAt)
	})
	return entries
}
