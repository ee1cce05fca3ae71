// Package ankiconnect implements a client for the AnkiConnect add-on's
// JSON-over-HTTP API. Every call is a POST of an action envelope to a
// single endpoint, normally http://localhost:8765 on the machine where
// Anki is running.
package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// protocolVersion is the AnkiConnect API version this client speaks.
const protocolVersion = 6

const defaultTimeout = 30 * time.Second

// API is the part of AnkiConnect the deck tools consume.
type API interface {
	Version(ctx context.Context) (int64, error)
	DeckNames(ctx context.Context) ([]string, error)
	FindNotes(ctx context.Context, query string) ([]int64, error)
	NotesInfo(ctx context.Context, noteIDs []int64) ([]NoteInfo, error)
	UpdateNoteFields(ctx context.Context, noteID int64, fields map[string]string) error
}

// Client talks to a local AnkiConnect endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// NewClient creates a client for the AnkiConnect endpoint at rawURL.
func NewClient(rawURL string) *Client {
	return &Client{
		url:        strings.TrimRight(strings.TrimSpace(rawURL), "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// FieldValue is a note field as AnkiConnect reports it.
type FieldValue struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// NoteInfo describes a single note returned by notesInfo.
type NoteInfo struct {
	NoteID    int64                 `json:"noteId"`
	ModelName string                `json:"modelName"`
	Tags      []string              `json:"tags"`
	Fields    map[string]FieldValue `json:"fields"`
}

// Field returns the value of the named field, or "" when the note has
// no such field.
func (n NoteInfo) Field(name string) string {
	return n.Fields[name].Value
}

type request struct {
	Action  string      `json:"action"`
	Version int         `json:"version"`
	Params  interface{} `json:"params,omitempty"`
}

// response is the AnkiConnect result envelope. Error is a string or
// null; a non-empty string means the action failed inside Anki even
// though the HTTP exchange succeeded.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// Version probes the endpoint and returns the reported API version.
func (c *Client) Version(ctx context.Context) (int64, error) {
	var version int64
	if err := c.invoke(ctx, "version", nil, &version); err != nil {
		return 0, err
	}
	return version, nil
}

// DeckNames returns the names of all decks in the running Anki instance.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// FindNotes returns the IDs of notes matching an Anki search query,
// e.g. `deck:"GRE Vocabulary"`.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	params := map[string]string{"query": query}
	var ids []int64
	if err := c.invoke(ctx, "findNotes", params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NotesInfo fetches the fields and metadata of the given notes.
func (c *Client) NotesInfo(ctx context.Context, noteIDs []int64) ([]NoteInfo, error) {
	params := map[string][]int64{"notes": noteIDs}
	var notes []NoteInfo
	if err := c.invoke(ctx, "notesInfo", params, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNoteFields overwrites the given fields of a note. Fields not
// named in the map keep their current values.
func (c *Client) UpdateNoteFields(ctx context.Context, noteID int64, fields map[string]string) error {
	params := map[string]interface{}{
		"note": map[string]interface{}{
			"id":     noteID,
			"fields": fields,
		},
	}
	return c.invoke(ctx, "updateNoteFields", params, nil)
}

// invoke posts one action envelope and decodes the result into result
// when it is non-nil.
func (c *Client) invoke(ctx context.Context, action string, params, result interface{}) error {
	body, err := json.Marshal(request{Action: action, Version: protocolVersion, Params: params})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s returned status %d: %s", action, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}
	if envelope.Error != nil && *envelope.Error != "" {
		return fmt.Errorf("%s failed: %s", action, *envelope.Error)
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", action, err)
		}
	}
	return nil
}
