package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteAdapter struct {
	client *resty.Client

	token   string
	session string

	// staged mutations, flushed as one batch by Commit
	created []*httpRemoteEntry
	updated map[string]*httpRemoteEntry

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(cfg config.Remote, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid remote http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteAdapter{
		client:  client,
		updated: make(map[string]*httpRemoteEntry),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// wire DTOs

type loginRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

type resumeRequest struct {
	User    string `json:"user"`
	Token   string `json:"token"`
	Session string `json:"session"`
}

type sessionResponse struct {
	Session string `json:"session"`
}

type noteDTO struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Text   string   `json:"text"`
	Labels []string `json:"labels,omitempty"`
}

type findResponse struct {
	Notes []noteDTO `json:"notes"`
}

type commitRequest struct {
	Creates []noteDTO `json:"creates,omitempty"`
	Updates []noteDTO `json:"updates,omitempty"`
	Length  int       `json:"length"`
}

// Login implements [RemoteAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and the opaque session snapshot from the
// body; both are held for DumpSession/CurrentToken.
func (h *httpRemoteAdapter) Login(ctx context.Context, creds models.Credentials) error {
	var sr sessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{User: creds.User, Pass: creds.Pass}).
		SetResult(&sr).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("%w: login request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.token = token
	h.session = sr.Session
	return nil
}

// Resume implements [RemoteAdapter]. It POSTs the stored token and session
// blob to POST /api/auth/resume. A 401/403 response maps to [ErrAuth] so the
// caller can fall back to Login. When the service rotates the token, the
// refreshed value from the Authorization response header replaces the stored
// one.
func (h *httpRemoteAdapter) Resume(ctx context.Context, creds models.Credentials, token, session string) error {
	var sr sessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(resumeRequest{User: creds.User, Token: token, Session: session}).
		SetResult(&sr).
		Post("/api/auth/resume")
	if err != nil {
		return fmt.Errorf("%w: resume request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.token = token
	h.session = session
	if refreshed, err := parseBearerToken(resp.Header().Get("Authorization")); err == nil {
		h.token = refreshed
	}
	if sr.Session != "" {
		h.session = sr.Session
	}

	return nil
}

// FindByLabel implements [RemoteAdapter]. It GETs /api/notes?label=<label>
// and returns one handle per note, keyed by title. Handles stay bound to
// this adapter so their mutations land in the staging buffers.
//
// Calling FindByLabel starts a fresh pass: any mutations still staged from
// an earlier failed Commit are discarded. The retried pass re-plans and
// re-stages everything itself, so without this reset a retry would flush the
// same creation twice.
func (h *httpRemoteAdapter) FindByLabel(ctx context.Context, label string) (map[string]RemoteEntry, error) {
	h.created = nil
	h.updated = make(map[string]*httpRemoteEntry)

	resp, err := h.authedRequest(ctx).
		SetQueryParam("label", label).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("%w: find by label request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var fr findResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return nil, fmt.Errorf("decode find response: %w", err)
	}

	entries := make(map[string]RemoteEntry, len(fr.Notes))
	for _, note := range fr.Notes {
		entries[note.Title] = &httpRemoteEntry{
			adapter: h,
			id:      note.ID,
			key:     note.Title,
			text:    note.Text,
			labels:  note.Labels,
		}
	}

	return entries, nil
}

// CreateEntry implements [RemoteAdapter]. The returned handle is staged for
// creation; it reaches the service only when Commit succeeds.
func (h *httpRemoteAdapter) CreateEntry(key, text string) RemoteEntry {
	entry := &httpRemoteEntry{adapter: h, key: key, text: text}
	h.created = append(h.created, entry)
	return entry
}

// Commit implements [RemoteAdapter]. It sends all staged creations and
// updates to POST /api/notes/commit as one batch. Any transport or service
// failure maps to a wrapped [ErrRemoteCommit]; the leftover staging state is
// discarded by the next FindByLabel, so a retried pass never double-flushes.
// With no staged mutations Commit is a no-op success.
func (h *httpRemoteAdapter) Commit(ctx context.Context) error {
	if len(h.created) == 0 && len(h.updated) == 0 {
		return nil
	}

	req := commitRequest{}
	for _, e := range h.created {
		req.Creates = append(req.Creates, noteDTO{Title: e.key, Text: e.text, Labels: e.labels})
	}
	for _, e := range h.updated {
		req.Updates = append(req.Updates, noteDTO{ID: e.id, Title: e.key, Text: e.text, Labels: e.labels})
	}
	req.Length = len(req.Creates) + len(req.Updates)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/notes/commit")
	if err != nil {
		return fmt.Errorf("%w: commit request: %v", ErrRemoteCommit, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteCommit, err)
	}

	h.logger.Debug().
		Int("creates", len(req.Creates)).
		Int("updates", len(req.Updates)).
		Msg("committed staged note mutations")

	h.created = nil
	h.updated = make(map[string]*httpRemoteEntry)
	return nil
}

// DumpSession implements [RemoteAdapter].
func (h *httpRemoteAdapter) DumpSession() string {
	return h.session
}

// CurrentToken implements [RemoteAdapter].
func (h *httpRemoteAdapter) CurrentToken() string {
	return h.token
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func parseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return parts[1], nil
}

// httpRemoteEntry is the HTTP-backed implementation of [RemoteEntry]. An
// entry with an empty id is a staged creation; entries fetched by
// FindByLabel carry the service-assigned id.
type httpRemoteEntry struct {
	adapter *httpRemoteAdapter

	id     string
	key    string
	text   string
	labels []string
}

// Key implements [RemoteEntry].
func (e *httpRemoteEntry) Key() string { return e.key }

// Text implements [RemoteEntry].
func (e *httpRemoteEntry) Text() string { return e.text }

// SetText implements [RemoteEntry]. The new body is staged for the next
// Commit.
func (e *httpRemoteEntry) SetText(text string) {
	e.text = text
	e.stage()
}

// AttachLabel implements [RemoteEntry]. Attaching an already present label
// changes nothing and stages nothing.
func (e *httpRemoteEntry) AttachLabel(label string) {
	for _, l := range e.labels {
		if l == label {
			return
		}
	}
	e.labels = append(e.labels, label)
	e.stage()
}

// stage registers a fetched entry in the adapter's update buffer. Staged
// creations are already tracked in the creation buffer and carry their
// latest field values by reference.
func (e *httpRemoteEntry) stage() {
	if e.id == "" {
		return
	}
	e.adapter.updated[e.id] = e
}
