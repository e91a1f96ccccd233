package players

import "github.com/wanwish/rainy-words/internal/words"

// MaxNameLen is the longest name the server keeps; longer names are truncated.
const MaxNameLen = 20

// Player is one connection's identity inside a room. Mode and DurationMin are
// the player's own matchmaking preferences; they matter for the legacy global
// room, where members can disagree.
type Player struct {
	ID          string
	Name        string
	Score       int
	Mode        words.Mode
	DurationMin int
}

// CleanName normalizes a display name: blank falls back to
// "Player", anything longer than MaxNameLen runes is cut. Counting runes
// keeps a multi-byte name from being split mid-character.
func CleanName(name string) string {
	if name == "" {
		name = "Player"
	}
	if runes := []rune(name); len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}
	return name
}
