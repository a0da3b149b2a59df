package store

import "time"

// Values records the last committed value per field key.
type Values struct {
	Fields map[string]Entry `yaml:"fields" json:"fields"`
	// LastFocused is the field key holding focus when the app exited.
	LastFocused string `yaml:"last_focused" json:"lastFocused"`
}

// Entry is one field's committed value with its commit time.
type Entry struct {
	Value       string `yaml:"value" json:"value"`
	CommittedAt int64  `yaml:"committed_at" json:"committedAt"`
}

// Set records a committed value for key.
func (v *Values) Set(key, value string) {
	if v.Fields == nil {
		v.Fields = make(map[string]Entry)
	}
	v.Fields[key] = Entry{Value: value, CommittedAt: time.Now().Unix()}
}

// Get returns the committed value for key, if one was recorded.
func (v *Values) Get(key string) (string, bool) {
	entry, ok := v.Fields[key]
	return entry.Value, ok
}

// Prefs are user preferences the demo persists alongside values.
type Prefs struct {
	WindowWidth  float32 `yaml:"window_width" json:"windowWidth"`
	WindowHeight float32 `yaml:"window_height" json:"windowHeight"`
}
