package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/pujadesk/pujadesk/client/internal/apierr"
)

// noticeRecorder captures notices emitted by a Caller under test.
type noticeRecorder struct {
	mu      sync.Mutex
	notices []apierr.Notice
}

func (r *noticeRecorder) record(n apierr.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *noticeRecorder) all() []apierr.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]apierr.Notice(nil), r.notices...)
}

func newTestCaller(srv *httptest.Server) (*Caller, *noticeRecorder) {
	rec := &noticeRecorder{}
	return &Caller{
		HTTP:    srv.Client(),
		BaseURL: srv.URL,
		Notify:  rec.record,
	}, rec
}

// writeEnvelope writes a success envelope with the given data payload.
func writeEnvelope(w http.ResponseWriter, status int, data any) {
	raw, _ := json.Marshal(data)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": json.RawMessage(raw)})
}

// writeJSON writes v without the envelope helper, for tests that need
// full control over the top-level fields.
func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a failure envelope with the given error string.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
