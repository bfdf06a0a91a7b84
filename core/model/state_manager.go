// Package model provides state management shared by dataset processors.
package model

import (
	"sync"
)

// StateManager tracks whether a processor holds a loaded dataset, in a
// thread-safe manner. A processor embeds one by pointer and consults it before
// every operation that needs data.
type StateManager struct {
	Loaded bool
	mu     sync.RWMutex

	// Shape of the loaded dataset.
	NFeatures int
	NSamples  int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsLoaded returns whether a dataset has been loaded.
func (s *StateManager) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loaded
}

// SetLoaded marks the dataset as loaded with the given shape.
func (s *StateManager) SetLoaded(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Loaded = true
	s.NFeatures = nFeatures
	s.NSamples = nSamples
}

// Reset returns to the not-loaded state. Called when a load fails so no
// partially initialised dataset stays reachable.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Loaded = false
	s.NFeatures = 0
	s.NSamples = 0
}

// GetDimensions returns the number of features and samples of the loaded dataset.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NFeatures, s.NSamples
}

// State is a snapshot of a StateManager, suitable for logging.
type State struct {
	Loaded    bool `json:"loaded"`
	NFeatures int  `json:"n_features,omitempty"`
	NSamples  int  `json:"n_samples,omitempty"`
}

// GetState returns the current state as a State struct.
func (s *StateManager) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Loaded:    s.Loaded,
		NFeatures: s.NFeatures,
		NSamples:  s.NSamples,
	}
}
