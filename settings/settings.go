package settings

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/tverdon/minegrid/storage"
)

const storageKey = "settings"

// Settings is the small cross-session user record kept alongside the
// leaderboard.
type Settings struct {
	SoundEnabled bool   `json:"soundEnabled"`
	Nickname     string `json:"nickname"`
}

func Default() Settings {
	return Settings{SoundEnabled: true}
}

// Load returns the persisted settings, or defaults when the record is
// absent or unreadable.
func Load(store storage.Store) Settings {
	raw, ok := store.Get(storageKey)
	if !ok {
		return Default()
	}

	loaded := Default()
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logrus.WithError(err).Warn("discarding unreadable settings")
		return Default()
	}
	return loaded
}

func (settings Settings) Save(store storage.Store) {
	out, err := json.Marshal(settings)
	if err != nil {
		return
	}
	store.Set(storageKey, string(out))
}
