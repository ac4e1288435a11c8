package appstate

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pujadesk/pujadesk/client"
	"github.com/pujadesk/pujadesk/keystore"
)

// DefaultNotificationTTL is how long a notification stays up unless
// the caller passes an explicit duration. Zero means sticky.
const DefaultNotificationTTL = 5 * time.Second

// Store wraps the reducer with concurrency, notification expiry
// timers, theme persistence, and change subscriptions. It also
// satisfies client.Notifier so transport failures reach the user.
type Store struct {
	mu     sync.Mutex
	state  State
	timers map[string]*time.Timer
	subs   map[string]func(State)

	keys    *keystore.Store
	applier func(Theme)
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithKeystore persists the theme preference and restores it on
// construction.
func WithKeystore(ks *keystore.Store) StoreOption {
	return func(s *Store) { s.keys = ks }
}

// WithThemeApplier mirrors theme changes to the rendering layer (the
// document attribute in a browser shell, the terminal palette in a
// TUI). Called synchronously on every effective theme change.
func WithThemeApplier(f func(Theme)) StoreOption {
	return func(s *Store) { s.applier = f }
}

// NewStore builds the UI store with the month/year filter set to now
// and the theme restored from the keystore when one is attached.
func NewStore(opts ...StoreOption) *Store {
	now := time.Now()
	s := &Store{
		state: State{
			Theme:         ThemeLight,
			SelectedMonth: int(now.Month()),
			SelectedYear:  now.Year(),
		},
		timers: map[string]*time.Timer{},
		subs:   map[string]func(State){},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.keys != nil {
		if saved, ok := s.keys.Get(keystore.KeyTheme); ok {
			s.state = reduce(s.state, SetTheme{Theme: Theme(saved)})
		}
	}
	if s.applier != nil {
		s.applier(s.state.Theme)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers f to run after every dispatch and returns the
// function that removes it again. Callbacks run synchronously with the
// store unlocked.
func (s *Store) Subscribe(f func(State)) func() {
	id := uuid.NewString()
	s.mu.Lock()
	s.subs[id] = f
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Dispatch applies a through the reducer and notifies subscribers.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	state := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()
	for _, f := range subs {
		f(state)
	}
}

// SetLoading flips the global loading flag.
func (s *Store) SetLoading(loading bool) { s.Dispatch(SetLoading{Loading: loading}) }

// ToggleSidebar flips the sidebar.
func (s *Store) ToggleSidebar() { s.Dispatch(ToggleSidebar{}) }

// SetSidebar sets the sidebar explicitly.
func (s *Store) SetSidebar(open bool) { s.Dispatch(SetSidebar{Open: open}) }

// SetTheme switches the theme, persists the preference, and mirrors
// it to the applier. Unknown themes are ignored.
func (s *Store) SetTheme(theme Theme) {
	if theme != ThemeLight && theme != ThemeDark {
		return
	}
	s.Dispatch(SetTheme{Theme: theme})
	if s.keys != nil {
		if err := s.keys.Set(keystore.KeyTheme, string(theme)); err != nil {
			log.Warn().Err(err).Msg("failed to persist theme preference")
		}
	}
	if s.applier != nil {
		s.applier(theme)
	}
}

// AddNotification pushes a notification and returns its ID. A negative
// ttl means DefaultNotificationTTL; ttl == 0 means sticky, which is
// what AddStickyNotification passes.
func (s *Store) AddNotification(typ, message string, ttl time.Duration) string {
	if ttl < 0 {
		ttl = DefaultNotificationTTL
	}
	n := Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.Dispatch(AddNotification{Notification: n})
	notificationsTotal.WithLabelValues(typ).Inc()
	if ttl > 0 {
		s.mu.Lock()
		s.timers[n.ID] = time.AfterFunc(ttl, func() { s.RemoveNotification(n.ID) })
		s.mu.Unlock()
	}
	return n.ID
}

// AddStickyNotification pushes a notification that never self-expires.
func (s *Store) AddStickyNotification(typ, message string) string {
	return s.AddNotification(typ, message, 0)
}

// RemoveNotification drops a notification and cancels its expiry timer.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	s.Dispatch(RemoveNotification{ID: id})
}

// ClearNotifications drops everything and cancels all timers.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	s.Dispatch(ClearNotifications{})
}

// SetBreadcrumbs replaces the breadcrumb trail.
func (s *Store) SetBreadcrumbs(crumbs []Crumb) { s.Dispatch(SetBreadcrumbs{Crumbs: crumbs}) }

// SetSelectedMonth sets the month filter; values outside 1-12 are ignored.
func (s *Store) SetSelectedMonth(month int) { s.Dispatch(SetSelectedMonth{Month: month}) }

// SetSelectedYear sets the year filter.
func (s *Store) SetSelectedYear(year int) { s.Dispatch(SetSelectedYear{Year: year}) }

// Notify implements client.Notifier: every transport failure becomes a
// transient notification.
func (s *Store) Notify(n client.Notice) {
	typ := "error"
	if n.Kind == client.NoticeRateLimit {
		typ = "warning"
	}
	s.AddNotification(typ, n.Message, DefaultNotificationTTL)
}
