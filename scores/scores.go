package scores

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tverdon/minegrid/game"
	"github.com/tverdon/minegrid/storage"
)

const (
	// MaxEntries is how many times are kept per board configuration.
	MaxEntries = 5
	// MaxNameLen truncates over-long player names.
	MaxNameLen = 12
	// MaxTime matches the timer's three-digit saturation point.
	MaxTime = 999

	// DefaultName stands in for missing or blank player names,
	// including entries migrated from the bare-number legacy format.
	DefaultName = "Anonymous"

	storageKey = "scores"
)

// Entry is one recorded win.
type Entry struct {
	Name string `json:"name"`
	Time int    `json:"time"`
}

// Table holds the per-configuration best times, fastest first. The
// in-memory copy is authoritative; persistence failures are logged and
// ignored.
type Table struct {
	store   storage.Store
	entries map[string][]Entry
}

// Load reads the persisted leaderboard through store. Malformed or
// legacy data is sanitized rather than surfaced; when anything had to
// be rewritten, the sanitized table is persisted immediately so later
// loads see only the current shape.
func Load(store storage.Store) *Table {
	table := &Table{store: store, entries: map[string][]Entry{}}

	raw, ok := store.Get(storageKey)
	if !ok {
		return table
	}

	entries, migrated := sanitize([]byte(raw))
	table.entries = entries
	if migrated {
		logrus.Info("rewriting leaderboard in current format")
		table.save()
	}

	return table
}

// RecordWin inserts a finished game into its configuration's ranking
// and persists the result. Equal times keep insertion order; slow times
// fall off the bottom of the top five.
func (table *Table) RecordWin(config game.Config, entry Entry) {
	entry.Name, _ = normalizeName(entry.Name)
	if entry.Time < 0 {
		entry.Time = 0
	}
	if entry.Time > MaxTime {
		entry.Time = MaxTime
	}

	key := config.Key()
	table.entries[key] = rank(append(table.entries[key], entry))
	table.save()
}

// Entries returns the ranked times for a configuration, fastest first.
func (table *Table) Entries(config game.Config) []Entry {
	list := table.entries[config.Key()]
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Clear drops every recorded time and persists the empty table.
func (table *Table) Clear() {
	table.entries = map[string][]Entry{}
	table.save()
}

func (table *Table) save() {
	out, err := json.Marshal(table.entries)
	if err != nil {
		logrus.WithError(err).Warn("could not serialize leaderboard")
		return
	}
	table.store.Set(storageKey, string(out))
}

func rank(list []Entry) []Entry {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Time < list[j].Time
	})
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	return list
}

// sanitize parses a persisted leaderboard payload defensively. It never
// fails: unreadable payloads become an empty table, and invalid entries
// are dropped. The second return reports whether anything had to be
// transformed from a legacy representation.
//
// Two legacy shapes are recognized per key: a plain list of numeric (or
// numeric-string) times, which become entries under DefaultName, and a
// list of objects whose time needs coercion or whose name needs
// normalizing.
func sanitize(raw []byte) (map[string][]Entry, bool) {
	entries := map[string][]Entry{}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keyed); err != nil {
		logrus.WithError(err).Warn("discarding unreadable leaderboard data")
		return entries, false
	}

	migrated := false
	for key, rawList := range keyed {
		var list []json.RawMessage
		if err := json.Unmarshal(rawList, &list); err != nil {
			// Non-array value under a key: dropped.
			migrated = true
			continue
		}

		var sanitized []Entry
		for _, rawEntry := range list {
			entry, ok, legacy := parseEntry(rawEntry)
			if legacy {
				migrated = true
			}
			if ok {
				sanitized = append(sanitized, entry)
			}
		}

		if len(sanitized) == 0 {
			continue
		}
		if len(sanitized) > MaxEntries {
			migrated = true
		}
		entries[key] = rank(sanitized)
	}

	return entries, migrated
}

// parseEntry accepts one element of a key's list in the current or
// either legacy shape. legacy reports that the element was not already
// in the current shape; entries failing time validation return ok=false.
func parseEntry(raw json.RawMessage) (entry Entry, ok bool, legacy bool) {
	var obj struct {
		Name *string         `json:"name"`
		Time json.RawMessage `json:"time"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Time) > 0 {
		seconds, valid, exact := parseTime(obj.Time)
		if !valid {
			return Entry{}, false, true
		}

		var name string
		if obj.Name != nil {
			name = *obj.Name
		}
		normalized, renamed := normalizeName(name)

		return Entry{Name: normalized, Time: seconds}, true, !exact || renamed || obj.Name == nil
	}

	// Legacy bare time, e.g. 42 or "42".
	if seconds, valid, _ := parseTime(raw); valid {
		return Entry{Name: DefaultName, Time: seconds}, true, true
	}

	return Entry{}, false, true
}

// parseTime coerces an integer, float, or numeric-string time to whole
// seconds. valid requires a finite value within 0..MaxTime; exact
// reports the value was already a plain in-range integer.
func parseTime(raw json.RawMessage) (seconds int, valid bool, exact bool) {
	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt, asInt >= 0 && asInt <= MaxTime, true
	}

	var asFloat float64
	if err := json.Unmarshal(raw, &asFloat); err == nil {
		return coerceSeconds(asFloat)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
		if err != nil {
			return 0, false, false
		}
		return coerceSeconds(parsed)
	}

	return 0, false, false
}

func coerceSeconds(value float64) (seconds int, valid bool, exact bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, false
	}

	seconds = int(value)
	return seconds, seconds >= 0 && seconds <= MaxTime, false
}

func normalizeName(name string) (string, bool) {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		normalized = DefaultName
	}
	if len(normalized) > MaxNameLen {
		normalized = normalized[:MaxNameLen]
	}
	return normalized, normalized != name
}
