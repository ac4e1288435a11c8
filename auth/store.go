// Package auth owns the client-side session: who is signed in, the
// initialization lifecycle, and every account operation. Operations
// return result values rather than raised errors so forms can render
// inline messages without panicking call stacks.
package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pujadesk/pujadesk/client"
)

// State is the auth lifecycle. Transitions:
// Uninitialized -> Checking -> {Authenticated, Anonymous}, and
// Authenticated -> Anonymous on logout or any 401.
type State int

const (
	StateUninitialized State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

// String returns the state label used in logs.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Result is the uniform outcome of every auth operation. Err is a
// user-presentable message, empty on success.
type Result struct {
	Success bool
	User    *client.Session
	Err     string
}

// Store is the auth state container. Construct one per client; it
// registers itself as the client's unauthorized handler so a 401 on
// any call drops the session.
type Store struct {
	api *client.Client

	mu       sync.RWMutex
	state    State
	session  *client.Session
	lastErr  string
	inFlight chan struct{} // non-nil while a CheckAuthStatus runs

	offlineFallback bool
	subs            []func(State, *client.Session)
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithOfflineFallback lets CheckAuthStatus synthesize a session from
// stored token claims when the profile endpoint is unreachable. The
// synthesized session is flagged Offline and is replaced by the real
// profile on the next successful check. Off by default: the documented
// contract is a live profile fetch.
func WithOfflineFallback(enabled bool) StoreOption {
	return func(s *Store) { s.offlineFallback = enabled }
}

// NewStore builds the auth store around an SDK client.
func NewStore(api *client.Client, opts ...StoreOption) *Store {
	s := &Store{api: api, state: StateUninitialized}
	for _, opt := range opts {
		opt(s)
	}
	api.SetUnauthorizedHandler(s.onUnauthorized)
	return s
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Session returns the current session, nil when not authenticated.
func (s *Store) Session() *client.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// LastError returns the store-level error set by the most recent
// failed operation, empty after a success.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool { return s.State() == StateAuthenticated }

// HasRole reports whether the current session carries role.
func (s *Store) HasRole(role client.Role) bool {
	sess := s.Session()
	return sess != nil && sess.Role == role
}

// HasAnyRole reports whether the current session carries one of roles.
func (s *Store) HasAnyRole(roles ...client.Role) bool {
	sess := s.Session()
	if sess == nil {
		return false
	}
	for _, r := range roles {
		if sess.Role == r {
			return true
		}
	}
	return false
}

// Subscribe registers f to run after every state or session change.
// Callbacks run synchronously on the mutating goroutine, outside the
// store lock, in transition order.
func (s *Store) Subscribe(f func(State, *client.Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, f)
	s.mu.Unlock()
}

// CheckAuthStatus resolves the persisted token into a session. It is
// idempotent and single-flight: concurrent callers wait for the one
// in-flight check instead of starting another.
func (s *Store) CheckAuthStatus(ctx context.Context) State {
	s.mu.Lock()
	if wait := s.inFlight; wait != nil {
		s.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
		}
		return s.State()
	}
	done := make(chan struct{})
	s.inFlight = done
	sess := s.session
	subs := s.setStateLocked(StateChecking, sess)
	s.mu.Unlock()
	for _, f := range subs {
		f(StateChecking, sess)
	}

	defer func() {
		s.mu.Lock()
		s.inFlight = nil
		s.mu.Unlock()
		close(done)
	}()

	tok := s.api.Token()
	if tok == "" {
		s.transition(StateAnonymous, nil)
		return StateAnonymous
	}

	profile, err := s.api.GetProfile(ctx)
	if err == nil {
		s.transition(StateAuthenticated, profile)
		return StateAuthenticated
	}

	// 401 already cleared the token via the client hook.
	if client.IsUnauthorized(err) {
		s.transition(StateAnonymous, nil)
		return StateAnonymous
	}

	// The profile endpoint was unreachable, not hostile. Fall back to
	// token claims only when explicitly enabled.
	if s.offlineFallback && client.StatusOf(err) == 0 {
		if sess, ok := sessionFromToken(tok); ok {
			log.Warn().Msg("profile endpoint unreachable, using offline session from token claims")
			s.transition(StateAuthenticated, sess)
			return StateAuthenticated
		}
	}

	s.transition(StateAnonymous, nil)
	return StateAnonymous
}

// Login exchanges credentials for a session and persists the token.
func (s *Store) Login(ctx context.Context, creds client.Credentials) Result {
	payload, err := s.api.Login(ctx, creds)
	if err != nil {
		return s.failure(err)
	}
	if err := s.api.SetToken(payload.Token); err != nil {
		return s.failure(err)
	}
	user := payload.User
	s.transition(StateAuthenticated, &user)
	s.clearError()
	return Result{Success: true, User: &user}
}

// Register creates an account and signs in with the returned token.
func (s *Store) Register(ctx context.Context, req client.RegisterRequest) Result {
	payload, err := s.api.Register(ctx, req)
	if err != nil {
		return s.failure(err)
	}
	if err := s.api.SetToken(payload.Token); err != nil {
		return s.failure(err)
	}
	user := payload.User
	s.transition(StateAuthenticated, &user)
	s.clearError()
	return Result{Success: true, User: &user}
}

// Logout notifies the server best-effort and unconditionally clears
// local token and session.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		log.Debug().Err(err).Msg("server logout failed, clearing local session anyway")
	}
	_ = s.api.ClearToken()
	s.transition(StateAnonymous, nil)
}

// UpdateProfile patches profile fields and refreshes the session.
func (s *Store) UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) Result {
	profile, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return s.failure(err)
	}
	s.transition(StateAuthenticated, profile)
	s.clearError()
	return Result{Success: true, User: profile}
}

// ChangePassword rotates the password for the current account.
func (s *Store) ChangePassword(ctx context.Context, req client.ChangePasswordRequest) Result {
	if err := s.api.ChangePassword(ctx, req); err != nil {
		return s.failure(err)
	}
	s.clearError()
	return Result{Success: true, User: s.Session()}
}

// ForgotPassword starts a reset flow for email.
func (s *Store) ForgotPassword(ctx context.Context, email string) Result {
	if err := s.api.ForgotPassword(ctx, email); err != nil {
		return s.failure(err)
	}
	s.clearError()
	return Result{Success: true}
}

// ResetPassword completes a reset flow with the emailed token.
func (s *Store) ResetPassword(ctx context.Context, req client.ResetPasswordRequest) Result {
	if err := s.api.ResetPassword(ctx, req); err != nil {
		return s.failure(err)
	}
	s.clearError()
	return Result{Success: true}
}

// ------------------------- internals -------------------------

// onUnauthorized runs after the client has cleared the token.
func (s *Store) onUnauthorized() {
	s.transition(StateAnonymous, nil)
}

func (s *Store) failure(err error) Result {
	msg := userMessage(err)
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	return Result{Success: false, Err: msg}
}

func (s *Store) clearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) transition(state State, sess *client.Session) {
	s.mu.Lock()
	subs := s.setStateLocked(state, sess)
	s.mu.Unlock()
	for _, f := range subs {
		f(state, sess)
	}
}

// setStateLocked applies the change and returns the subscribers to
// notify. Caller holds the mutex and delivers after unlocking, so
// subscribers observe transitions in the order they happened.
func (s *Store) setStateLocked(state State, sess *client.Session) []func(State, *client.Session) {
	if s.state == state && s.session == sess {
		return nil
	}
	s.state = state
	s.session = sess
	subs := make([]func(State, *client.Session), 0, len(s.subs))
	subs = append(subs, s.subs...)
	return subs
}

// userMessage flattens any error into something a form can show.
func userMessage(err error) string {
	if fields := client.FieldErrors(err); fields != nil {
		for _, msg := range fields {
			return msg
		}
	}
	if e, ok := client.AsAPIError(err); ok {
		return e.Message
	}
	return "Something went wrong. Please try again."
}
