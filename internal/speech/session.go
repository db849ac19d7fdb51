package speech

import (
	"log"
	"sync"

	"github.com/voxalert/voxalert/internal/models"
)

// Item is one utterance in a playback batch.
type Item struct {
	Language string
	Text     string
}

// Session drives sequential playback of a batch of utterances through a
// Queue and tracks progress for the API. Only one batch plays at a time:
// starting a new batch supersedes the previous one, and the completion
// callback fires exactly once, only when a batch finishes naturally.
type Session struct {
	queue *Queue

	mu         sync.Mutex
	generation uint64
	active     bool
	items      []Item
	index      int
	progress   float64
}

// NewSession builds a session over the queue.
func NewSession(queue *Queue) *Session {
	return &Session{queue: queue}
}

// Start begins playback of the batch, superseding any playback already in
// progress: the superseded batch stops and its completion callback never
// fires. onComplete (optional) runs after the last utterance finishes
// naturally; it is skipped when the batch is stopped or superseded.
// Starting an empty batch is a no-op.
func (s *Session) Start(items []Item, onComplete func()) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	if s.active {
		log.Printf("[PlaybackSession] Superseding active playback at item %d/%d", s.index+1, len(s.items))
	}
	s.generation++
	gen := s.generation
	s.active = true
	s.items = append([]Item(nil), items...)
	s.index = 0
	s.progress = 0
	s.mu.Unlock()

	// Clear whatever the previous playback left behind before queueing.
	s.queue.CancelAll()

	go s.run(gen, items, onComplete)
}

// PlaySingle stops anything in progress and plays one utterance on its
// own. No completion callback fires.
func (s *Session) PlaySingle(item Item) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.active = true
	s.items = []Item{item}
	s.index = 0
	s.progress = 0
	s.mu.Unlock()

	s.queue.CancelAll()

	go s.run(gen, []Item{item}, nil)
}

// Stop halts playback immediately. Pending utterances are discarded and no
// completion callback fires.
func (s *Session) Stop() {
	s.mu.Lock()
	s.generation++
	s.active = false
	s.items = nil
	s.index = 0
	s.progress = 0
	s.mu.Unlock()

	s.queue.CancelAll()
	log.Printf("[PlaybackSession] Stopped")
}

// Status returns a snapshot for the playback API.
func (s *Session) Status() models.PlaybackStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.PlaybackStatus{
		Active:       s.active,
		CurrentIndex: s.index,
		Total:        len(s.items),
		Progress:     s.progress,
	}
	if s.active && s.index < len(s.items) {
		st.Language = s.items[s.index].Language
	}
	return st
}

func (s *Session) run(gen uint64, items []Item, onComplete func()) {
	for i, item := range items {
		// Enqueue under the lock so a concurrent Start or Stop either
		// flips the generation before the check, or runs its CancelAll
		// after this item is queued and flushes it.
		s.mu.Lock()
		if s.generation != gen {
			s.mu.Unlock()
			return
		}
		s.index = i
		done := s.queue.Enqueue(item.Text, item.Language)
		s.mu.Unlock()

		if err := <-done; err != nil {
			log.Printf("[PlaybackSession] Playback error for %s: %v", item.Language, err)
		}

		s.mu.Lock()
		if s.generation != gen {
			s.mu.Unlock()
			return
		}
		s.progress = float64(i+1) / float64(len(items)) * 100
		s.mu.Unlock()
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return
	}
	// Leave progress at 100 for status readers; the next Start or Stop
	// resets it.
	s.active = false
	s.mu.Unlock()

	log.Printf("[PlaybackSession] Batch of %d finished", len(items))
	if onComplete != nil {
		onComplete()
	}
}
