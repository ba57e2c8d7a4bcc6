package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EventType definitions
const (
	EventTypeMessage  = "message"
	EventTypeDispatch = "dispatch"
)

// SessionEvent represents a line in the JSONL file
type SessionEvent struct {
	Type       string    `json:"type"`
	UUID       string    `json:"uuid"`
	ParentUUID string    `json:"parentUuid,omitempty"`
	SessionID  string    `json:"sessionId"`
	Timestamp  string    `json:"timestamp"`
	Message    string    `json:"message,omitempty"`
	Dispatch   *Dispatch `json:"dispatch,omitempty"`
}

// Dispatch records how a message was handled.
type Dispatch struct {
	Command   string         `json:"command"`
	Groups    []string       `json:"groups,omitempty"`
	Allowed   bool           `json:"allowed"`
	Remainder string         `json:"remainder,omitempty"`
	Args      map[string]any `json:"args,omitempty"`
}

type SessionManager struct {
	SessionID   string
	CurrentUUID string
	FilePath    string

	now func() time.Time
}

// NewSessionManager prepares a new transcript file under dir. The file is
// created on the first append.
func NewSessionManager(dir string) (*SessionManager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	sessionID := uuid.New().String()
	return &SessionManager{
		SessionID: sessionID,
		FilePath:  filepath.Join(dir, fmt.Sprintf("%s.jsonl", sessionID)),
		now:       time.Now,
	}, nil
}

// AppendMessage records a raw incoming message.
func (sm *SessionManager) AppendMessage(message string) error {
	return sm.append(SessionEvent{Type: EventTypeMessage, Message: message})
}

// AppendDispatch records the outcome of a matched message.
func (sm *SessionManager) AppendDispatch(d Dispatch) error {
	return sm.append(SessionEvent{Type: EventTypeDispatch, Dispatch: &d})
}

func (sm *SessionManager) append(event SessionEvent) error {
	event.UUID = uuid.New().String()
	event.ParentUUID = sm.CurrentUUID
	event.SessionID = sm.SessionID
	event.Timestamp = sm.now().UTC().Format(time.RFC3339Nano)

	f, err := os.OpenFile(sm.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(event); err != nil {
		return err
	}

	// Update pointer
	sm.CurrentUUID = event.UUID
	return nil
}

// ReadEvents loads every event of a transcript file.
func ReadEvents(path string) ([]SessionEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []SessionEvent
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var ev SessionEvent
		if err := decoder.Decode(&ev); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
