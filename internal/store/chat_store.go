package store

import (
	"context"
	"sort"
	"strings"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// ChatStore is the partially materialized, ordered chat list from spec §4.3.
type ChatStore struct {
	mp domain.MessagingProvider

	active   []*domain.Chat
	inactive map[int64]*domain.Chat
	ids      map[int64]struct{}

	haveFullList bool
	title        string

	found      []int64
	foundCursor int
}

// NewChatStore creates an empty store bound to mp.
func NewChatStore(mp domain.MessagingProvider) *ChatStore {
	return &ChatStore{
		mp:       mp,
		inactive: make(map[int64]*domain.Chat),
		ids:      make(map[int64]struct{}),
	}
}

// Fetch returns active[offset:offset+limit], loading the next page first if
// the window isn't yet covered and the full list hasn't been seen.
func (s *ChatStore) Fetch(ctx context.Context, offset, limit int) []*domain.Chat {
	if offset+limit > len(s.active) && !s.haveFullList {
		s.LoadNext(ctx)
	}
	end := offset + limit
	if end > len(s.active) {
		end = len(s.active)
	}
	if offset > end {
		offset = end
	}
	return s.active[offset:end]
}

// LoadNext requests the next page from the MP, anchored on the last active
// chat's (id, order), or (0, 2^63-1) for the initial call. An empty result
// sets haveFullList so further Fetch calls never call the MP again.
func (s *ChatStore) LoadNext(ctx context.Context) {
	if s.haveFullList || s.mp == nil {
		return
	}

	offsetID := int64(0)
	offsetOrder := int64(1<<63 - 1)
	if n := len(s.active); n > 0 {
		last := s.active[n-1]
		offsetID = last.ID
		offsetOrder = last.Order
	}

	res := s.mp.GetChats(ctx, offsetID, offsetOrder, 30)
	if err := res.Wait(); err != nil {
		logger.Warn("chat_store: load_next failed", "error", err)
		return
	}
	ids := decodeChatIDs(res.Update())
	if len(ids) == 0 {
		s.haveFullList = true
		return
	}
	for _, id := range ids {
		cr := s.mp.GetChat(ctx, id)
		if err := cr.Wait(); err != nil {
			continue
		}
		if c := decodeChat(cr.Update()); c != nil {
			s.Add(c)
		}
	}
}

// Add inserts chat, deduped by id. Order==0 parks it in Inactive; otherwise
// it is pushed to Active and the active list is re-sorted descending by
// (order, id).
func (s *ChatStore) Add(c *domain.Chat) {
	if _, exists := s.ids[c.ID]; exists {
		if c.Order == 0 {
			s.removeActive(c.ID)
			s.inactive[c.ID] = c
			return
		}
		s.replaceActive(c)
		return
	}
	if _, exists := s.inactive[c.ID]; exists {
		if c.Order != 0 {
			delete(s.inactive, c.ID)
		} else {
			s.inactive[c.ID] = c
			return
		}
	}

	if c.Order == 0 {
		s.inactive[c.ID] = c
		return
	}
	s.active = append(s.active, c)
	s.ids[c.ID] = struct{}{}
	s.sortActive()
}

func (s *ChatStore) replaceActive(c *domain.Chat) {
	for i, existing := range s.active {
		if existing.ID == c.ID {
			s.active[i] = c
			s.sortActive()
			return
		}
	}
}

func (s *ChatStore) sortActive() {
	sort.SliceStable(s.active, func(i, j int) bool {
		a, b := s.active[i], s.active[j]
		if a.Order != b.Order {
			return a.Order > b.Order
		}
		return a.ID > b.ID
	})
}

// Update merges patch into chatID's record (wherever it currently lives).
// If the resulting order is 0, the chat moves to Inactive; otherwise it is
// promoted to Active (if it wasn't already) and Active is re-sorted.
// Returns false (and logs a warning) if chatID is unknown.
func (s *ChatStore) Update(chatID int64, patch func(*domain.Chat)) bool {
	if c, ok := s.inactive[chatID]; ok {
		patch(c)
		if c.Order != 0 {
			delete(s.inactive, chatID)
			s.active = append(s.active, c)
			s.ids[c.ID] = struct{}{}
			s.sortActive()
		}
		return true
	}
	for _, c := range s.active {
		if c.ID == chatID {
			patch(c)
			if c.Order == 0 {
				s.removeActive(chatID)
				s.inactive[chatID] = c
			} else {
				s.sortActive()
			}
			return true
		}
	}
	logger.Warn("chat_store: update on unknown chat", "chat_id", chatID)
	return false
}

func (s *ChatStore) removeActive(chatID int64) {
	for i, c := range s.active {
		if c.ID == chatID {
			s.active = append(s.active[:i], s.active[i+1:]...)
			delete(s.ids, chatID)
			return
		}
	}
}

// Delete removes chatID entirely (chat-deleted push update).
func (s *ChatStore) Delete(chatID int64) {
	s.removeActive(chatID)
	delete(s.inactive, chatID)
}

// IDByIndex returns the chat id at position i in Active, if any.
func (s *ChatStore) IDByIndex(i int) (int64, bool) {
	if i < 0 || i >= len(s.active) {
		return 0, false
	}
	return s.active[i].ID, true
}

// IndexByID scans Active for chatID's current position. Callers must always
// translate id<->index this way instead of caching an index across a
// re-sort (spec §9, "Cursor across resort").
func (s *ChatStore) IndexByID(chatID int64) (int, bool) {
	for i, c := range s.active {
		if c.ID == chatID {
			return i, true
		}
	}
	return -1, false
}

// Active returns the live active slice (callers must not mutate it).
func (s *ChatStore) Active() []*domain.Chat { return s.active }

// ChatByID looks up a chat in either collection.
func (s *ChatStore) ChatByID(chatID int64) (*domain.Chat, bool) {
	if c, ok := s.inactive[chatID]; ok {
		return c, true
	}
	for _, c := range s.active {
		if c.ID == chatID {
			return c, true
		}
	}
	return nil, false
}

// Title returns the chat-pane title (driven by ConnectionState updates).
func (s *ChatStore) Title() string { return s.title }

// SetTitle sets the chat-pane title.
func (s *ChatStore) SetTitle(t string) { s.title = t }

// Search performs a case-insensitive fuzzy (substring) search of loaded
// chats by title, saving the match list for NextFound/PrevFound.
func (s *ChatStore) Search(query string) []int64 {
	q := strings.ToLower(query)
	s.found = s.found[:0]
	for _, c := range s.active {
		if strings.Contains(strings.ToLower(c.Title), q) {
			s.found = append(s.found, c.ID)
		}
	}
	s.foundCursor = 0
	return s.found
}

// NextFound rotates through the found list with wrap-around. The modulo
// arithmetic advances even if the list hasn't changed since the last
// reorder — this is accepted behavior per spec §9.
func (s *ChatStore) NextFound(backwards bool) (int64, bool) {
	if len(s.found) == 0 {
		return 0, false
	}
	if backwards {
		s.foundCursor = (s.foundCursor - 1 + len(s.found)) % len(s.found)
	} else {
		s.foundCursor = (s.foundCursor + 1) % len(s.found)
	}
	return s.found[s.foundCursor], true
}

// AssertInvariants is a test/debug helper validating spec §8's ChatStore properties.
func (s *ChatStore) AssertInvariants() bool {
	for _, c := range s.active {
		if c.Order <= 0 {
			return false
		}
	}
	for _, c := range s.inactive {
		if c.Order != 0 {
			return false
		}
	}
	for id := range s.inactive {
		if _, dup := s.ids[id]; dup {
			return false
		}
	}
	for i := 1; i < len(s.active); i++ {
		a, b := s.active[i-1], s.active[i]
		if a.Order < b.Order || (a.Order == b.Order && a.ID < b.ID) {
			return false
		}
	}
	return true
}
