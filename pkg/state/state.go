// Package state tracks short-lived conversation state per chat, such as
// "currently listing pantry items" or "currently logging a meal".
package state

import (
	"sync"
	"time"
)

// State represents the conversational state of a chat
type State string

const (
	// StateNormal is the default state
	StateNormal State = "normal"
	// StateAddingPantry means the chat is sending pantry items
	StateAddingPantry State = "adding_pantry"
	// StateLoggingMeal means the chat is describing a meal to log
	StateLoggingMeal State = "logging_meal"
	// StateBuildingBasket means the chat is listing items to price
	StateBuildingBasket State = "building_basket"
)

// stateTTL is how long a conversational state stays valid
const stateTTL = 10 * time.Minute

type chatState struct {
	state     State
	timestamp time.Time
}

// Manager manages chat states
type Manager struct {
	states map[int64]chatState
	mu     sync.RWMutex
}

// New creates a new state manager
func New() *Manager {
	return &Manager{
		states: make(map[int64]chatState),
	}
}

// Set sets the state for a chat
func (m *Manager) Set(chatID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = chatState{
		state:     state,
		timestamp: time.Now(),
	}
}

// Get gets the state for a chat; stale states read as normal
func (m *Manager) Get(chatID int64) State {
	m.mu.RLock()
	entry, ok := m.states[chatID]
	m.mu.RUnlock()

	if !ok || time.Since(entry.timestamp) > stateTTL {
		return StateNormal
	}

	return entry.state
}

// Clear clears the state for a chat
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
}
