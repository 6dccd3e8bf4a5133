package store

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/logger"
)

// UserStore is the user/group/supergroup/contact cache from spec §4.4.
type UserStore struct {
	mp domain.MessagingProvider

	me          *domain.User
	users       map[int64]*domain.User
	groups      map[int64]*domain.Group
	supergroups map[int64]*domain.Group
	contacts    map[int64]struct{}

	actions map[int64]domain.ChatAction

	notFound map[int64]struct{}

	now func() time.Time
}

// NewUserStore creates an empty store bound to mp. now defaults to time.Now
// but may be overridden in tests to make status derivations deterministic.
func NewUserStore(mp domain.MessagingProvider) *UserStore {
	return &UserStore{
		mp:          mp,
		users:       make(map[int64]*domain.User),
		groups:      make(map[int64]*domain.Group),
		supergroups: make(map[int64]*domain.Group),
		contacts:    make(map[int64]struct{}),
		actions:     make(map[int64]domain.ChatAction),
		notFound:    make(map[int64]struct{}),
		now:         time.Now,
	}
}

// Me returns the logged-in user, fetching via MP.GetMe on first use.
func (s *UserStore) Me(ctx context.Context) (*domain.User, bool) {
	if s.me != nil {
		return s.me, true
	}
	if s.mp == nil {
		return nil, false
	}
	res := s.mp.GetMe(ctx)
	if err := res.Wait(); err != nil {
		return nil, false
	}
	u := decodeUser(res.Update())
	if u == nil {
		return nil, false
	}
	s.me = u
	s.users[u.ID] = u
	return u, true
}

// AddUser inserts or replaces a cached user record.
func (s *UserStore) AddUser(u *domain.User) {
	if u == nil {
		return
	}
	s.users[u.ID] = u
}

// User returns a cached user, falling back to MP.GetUser on a miss. A
// confirmed-missing id is memoized and never refetched.
func (s *UserStore) User(ctx context.Context, id int64) (*domain.User, bool) {
	if u, ok := s.users[id]; ok {
		return u, true
	}
	if _, known := s.notFound[id]; known {
		return nil, false
	}
	if s.mp == nil {
		return nil, false
	}
	res := s.mp.GetUser(ctx, id)
	if err := res.Wait(); err != nil {
		s.notFound[id] = struct{}{}
		return nil, false
	}
	u := decodeUser(res.Update())
	if u == nil {
		s.notFound[id] = struct{}{}
		return nil, false
	}
	s.users[id] = u
	return u, true
}

// AddGroup / AddSupergroup cache basic-group and supergroup/channel records.
func (s *UserStore) AddGroup(g *domain.Group)      { s.groups[g.ID] = g }
func (s *UserStore) AddSupergroup(g *domain.Group) { s.supergroups[g.ID] = g }

// Group / Supergroup look up a cached record.
func (s *UserStore) Group(id int64) (*domain.Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

func (s *UserStore) Supergroup(id int64) (*domain.Group, bool) {
	g, ok := s.supergroups[id]
	return g, ok
}

// SetContacts replaces the contact-id set (from MP.GetContacts).
func (s *UserStore) SetContacts(ids []int64) {
	s.contacts = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.contacts[id] = struct{}{}
	}
}

// IsContact reports whether id is in the cached contact set.
func (s *UserStore) IsContact(id int64) bool {
	_, ok := s.contacts[id]
	return ok
}

// Contacts returns every cached user known to be a contact, for the fuzzy
// contact picker (_get_user_ids in the original).
func (s *UserStore) Contacts() []*domain.User {
	out := make([]*domain.User, 0, len(s.contacts))
	for id := range s.contacts {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out
}

// StatusLabel translates a user's status variant into a human string,
// clearing a stale "online" (expires already passed) to empty, per spec §4.4.
func (s *UserStore) StatusLabel(userID int64) string {
	u, ok := s.users[userID]
	if !ok {
		return ""
	}
	now := s.now()
	switch u.Status.Kind {
	case domain.StatusOnline:
		if u.Status.Expires.Before(now) {
			return ""
		}
		return "online"
	case domain.StatusOffline:
		return "last seen " + humanizeAgo(now.Sub(u.Status.WasOnline)) + " ago"
	case domain.StatusRecently:
		return "last seen recently"
	case domain.StatusLastWeek:
		return "last seen last week"
	case domain.StatusLastMonth:
		return "last seen last month"
	default:
		return ""
	}
}

func humanizeAgo(d time.Duration) string {
	secs := int64(d.Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("%d seconds", secs)
	case secs < 3600:
		return fmt.Sprintf("%d minutes", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%d hours", secs/3600)
	default:
		return fmt.Sprintf("%d days", secs/86400)
	}
}

// StatusOrder is the numeric sort key from spec §4.4: online first, then
// offline ordered by recency, then recently/week/month, then last.
func (s *UserStore) StatusOrder(userID int64) int64 {
	u, ok := s.users[userID]
	if !ok {
		return math.MaxInt64
	}
	now := s.now()
	switch u.Status.Kind {
	case domain.StatusOnline:
		if u.Status.Expires.After(now) {
			return -1
		}
		return math.MaxInt64
	case domain.StatusOffline:
		return int64(now.Sub(u.Status.WasOnline).Seconds())
	case domain.StatusRecently:
		return math.MaxInt64 - 3
	case domain.StatusLastWeek:
		return math.MaxInt64 - 2
	case domain.StatusLastMonth:
		return math.MaxInt64 - 1
	default:
		return math.MaxInt64
	}
}

// IsOnline is true only if the user is not a bot, status is online, and the
// online window hasn't expired.
func (s *UserStore) IsOnline(userID int64) bool {
	u, ok := s.users[userID]
	if !ok || u.IsBot {
		return false
	}
	return u.Status.Kind == domain.StatusOnline && u.Status.Expires.After(s.now())
}

// Label returns the display name for userID: first+last name trimmed to 20
// runes, else first name, else "@username", else a placeholder.
func (s *UserStore) Label(userID int64) string {
	u, ok := s.users[userID]
	if !ok {
		return fmt.Sprintf("user#%d", userID)
	}
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		r := []rune(full)
		if len(r) > 20 {
			return string(r[:20])
		}
		return full
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("user#%d", userID)
}

// SetAction records a transient chat action (typing, recording, …) for chatID.
// ActionCancel behaves as ClearAction.
func (s *UserStore) SetAction(chatID int64, action domain.ChatAction) {
	if action.Kind == domain.ActionCancel {
		s.ClearAction(chatID)
		return
	}
	s.actions[chatID] = action
}

// ClearAction removes chatID's tracked action, if any.
func (s *UserStore) ClearAction(chatID int64) {
	delete(s.actions, chatID)
}

// Action returns chatID's currently tracked action, if any.
func (s *UserStore) Action(chatID int64) (domain.ChatAction, bool) {
	a, ok := s.actions[chatID]
	return a, ok
}

func decodeUser(raw map[string]any) *domain.User {
	if raw == nil {
		return nil
	}
	id, ok := raw["id"].(int64)
	if !ok {
		return nil
	}
	u := &domain.User{ID: id}
	u.FirstName, _ = raw["first_name"].(string)
	u.LastName, _ = raw["last_name"].(string)
	u.Username, _ = raw["username"].(string)
	u.Phone, _ = raw["phone_number"].(string)
	u.IsBot, _ = raw["is_bot"].(bool)

	if st, ok := raw["status"].(map[string]any); ok {
		u.Status = decodeUserStatus(st)
	}
	return u
}

func decodeUserStatus(raw map[string]any) domain.UserStatus {
	kindTag, _ := raw["@type"].(string)
	switch kindTag {
	case "userStatusOnline":
		var exp int64
		if v, ok := raw["expires"].(int64); ok {
			exp = v
		}
		return domain.UserStatus{Kind: domain.StatusOnline, Expires: time.Unix(exp, 0)}
	case "userStatusOffline":
		var was int64
		if v, ok := raw["was_online"].(int64); ok {
			was = v
		}
		return domain.UserStatus{Kind: domain.StatusOffline, WasOnline: time.Unix(was, 0)}
	case "userStatusRecently":
		return domain.UserStatus{Kind: domain.StatusRecently}
	case "userStatusLastWeek":
		return domain.UserStatus{Kind: domain.StatusLastWeek}
	case "userStatusLastMonth":
		return domain.UserStatus{Kind: domain.StatusLastMonth}
	default:
		logger.Debug("store: unknown status kind", "type", kindTag)
		return domain.UserStatus{Kind: domain.StatusEmpty}
	}
}
