// Package appstate holds the cross-cutting UI state: sidebar, theme,
// transient notifications, breadcrumbs, and the month/year filter.
// All mutation flows through a pure reducer so the store can be
// snapshotted and tested without the timers or persistence attached.
package appstate

import "time"

// Theme is the visual scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Notification is one transient user-facing message.
type Notification struct {
	ID        string
	Type      string // "success", "info", "warning", "error"
	Message   string
	Timestamp time.Time
	Read      bool
}

// Crumb is one breadcrumb segment.
type Crumb struct {
	Label string
	Href  string
}

// State is the full UI state. Values are copied out on read; only the
// reducer produces new ones.
type State struct {
	Loading       bool
	SidebarOpen   bool
	Theme         Theme
	Notifications []Notification
	Breadcrumbs   []Crumb
	SelectedMonth int // 1-12
	SelectedYear  int
}

// Action is a state transition request. The concrete types below are
// the only transitions that exist.
type Action interface{ isAction() }

type SetLoading struct{ Loading bool }

type ToggleSidebar struct{}

type SetSidebar struct{ Open bool }

type SetTheme struct{ Theme Theme }

type AddNotification struct{ Notification Notification }

type RemoveNotification struct{ ID string }

type ClearNotifications struct{}

type SetBreadcrumbs struct{ Crumbs []Crumb }

type SetSelectedMonth struct{ Month int }

type SetSelectedYear struct{ Year int }

func (SetLoading) isAction()         {}
func (ToggleSidebar) isAction()      {}
func (SetSidebar) isAction()         {}
func (SetTheme) isAction()           {}
func (AddNotification) isAction()    {}
func (RemoveNotification) isAction() {}
func (ClearNotifications) isAction() {}
func (SetBreadcrumbs) isAction()     {}
func (SetSelectedMonth) isAction()   {}
func (SetSelectedYear) isAction()    {}

// reduce returns the state produced by applying a to s. It never
// mutates s or anything reachable from it; unknown themes, months
// outside 1-12, and removals of absent IDs leave the state unchanged.
func reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetLoading:
		s.Loading = act.Loading
	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
	case SetSidebar:
		s.SidebarOpen = act.Open
	case SetTheme:
		if act.Theme == ThemeLight || act.Theme == ThemeDark {
			s.Theme = act.Theme
		}
	case AddNotification:
		next := make([]Notification, 0, len(s.Notifications)+1)
		next = append(next, s.Notifications...)
		next = append(next, act.Notification)
		s.Notifications = next
	case RemoveNotification:
		next := make([]Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			if n.ID != act.ID {
				next = append(next, n)
			}
		}
		s.Notifications = next
	case ClearNotifications:
		s.Notifications = nil
	case SetBreadcrumbs:
		s.Breadcrumbs = append([]Crumb(nil), act.Crumbs...)
	case SetSelectedMonth:
		if act.Month >= 1 && act.Month <= 12 {
			s.SelectedMonth = act.Month
		}
	case SetSelectedYear:
		s.SelectedYear = act.Year
	}
	return s
}
