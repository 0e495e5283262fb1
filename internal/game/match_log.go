package game

import (
	"fmt"
	"strings"
)

// Log categories.
const (
	CategoryState = "state"
	CategoryTurn  = "turn"
	CategoryDeath = "death"
	CategoryRound = "round"
)

// LogEntry is one recorded match event.
type LogEntry struct {
	Tick     int
	Player   string // "P1", "P2", or "--" for match-wide events
	Category string // state, turn, death, round
	Key      string // event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] P1   turn     heading          up
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-8s %-16s %s",
		e.Tick, e.Player, e.Category, e.Key, e.Value)
}

// MatchLog collects structured events for the whole session. It is
// unbounded; the on-screen EventFeed keeps only the recent tail.
type MatchLog struct {
	entries []LogEntry
}

func NewMatchLog() *MatchLog {
	return &MatchLog{}
}

// Add records a new entry.
func (ml *MatchLog) Add(tick int, player, category, key, value string) LogEntry {
	e := LogEntry{
		Tick:     tick,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
	}
	ml.entries = append(ml.entries, e)
	return e
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []LogEntry {
	return ml.entries
}

// Filter returns entries matching category and key. An empty string matches
// anything.
func (ml *MatchLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPlayer returns entries for one player label.
func (ml *MatchLog) FilterPlayer(label string) []LogEntry {
	var out []LogEntry
	for _, e := range ml.entries {
		if e.Player == label {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match category and key.
func (ml *MatchLog) Count(category, key string) int {
	return len(ml.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (ml *MatchLog) LastOf(category, key string) (LogEntry, bool) {
	entries := ml.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether an entry matches category, key and a value substring.
func (ml *MatchLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range ml.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Dump formats every entry, one per line.
func (ml *MatchLog) Dump() string {
	var b strings.Builder
	for _, e := range ml.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

const feedMaxEntries = 12

// EventFeed is a ring buffer of recent log entries shown on screen.
type EventFeed struct {
	entries ring[LogEntry]
}

func NewEventFeed() *EventFeed {
	return &EventFeed{entries: newRing[LogEntry](feedMaxEntries)}
}

// Add appends an entry, dropping the oldest once full.
func (f *EventFeed) Add(e LogEntry) {
	f.entries.push(e)
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []LogEntry {
	return f.entries.oldestFirst()
}
