package client

import (
	"github.com/rs/zerolog/log"

	"github.com/pujadesk/pujadesk/client/internal/apierr"
)

// Notice is the user-visible classification of a transport failure.
type Notice = apierr.Notice

// NoticeKind values, re-exported so consumers never import internals.
const (
	NoticeValidation   = apierr.NoticeValidation
	NoticeAuth         = apierr.NoticeAuth
	NoticeAccessDenied = apierr.NoticeAccessDenied
	NoticeNotFound     = apierr.NoticeNotFound
	NoticeConflict     = apierr.NoticeConflict
	NoticeRateLimit    = apierr.NoticeRateLimit
	NoticeServerError  = apierr.NoticeServerError
	NoticeNetwork      = apierr.NoticeNetwork
)

// Notifier receives one Notice per failed request. The transport layer
// never renders anything itself; whatever is wired here decides how
// failures reach the user.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notice) { f(n) }

// LogNotifier writes notices to the global logger. Useful for headless
// callers that have no notification surface.
func LogNotifier() Notifier {
	return NotifierFunc(func(n Notice) {
		log.Warn().Int("status", n.Status).Str("kind", n.Kind.String()).Msg(n.Message)
	})
}
