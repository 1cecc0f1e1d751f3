package commit

// Classification describes a commit type: its key, the emoji shown in
// commit headers and a short description.
type Classification struct {
	Key         string
	Emoji       string
	Description string
}

// registry is the fixed table of commit types. The first entry is the
// fallback for unknown keys.
var registry = []Classification{
	{Key: "feat", Emoji: "✨", Description: "New feature"},
	{Key: "fix", Emoji: "🐛", Description: "Bug fix"},
	{Key: "docs", Emoji: "📝", Description: "Documentation change"},
	{Key: "style", Emoji: "💄", Description: "Code formatting"},
	{Key: "refactor", Emoji: "♻️", Description: "Code refactoring"},
	{Key: "perf", Emoji: "⚡️", Description: "Performance improvement"},
	{Key: "test", Emoji: "✅", Description: "Add or update tests"},
	{Key: "chore", Emoji: "🔧", Description: "Build or tooling change"},
	{Key: "build", Emoji: "📦", Description: "Build system change"},
	{Key: "ci", Emoji: "👷", Description: "CI configuration change"},
	{Key: "revert", Emoji: "⏪", Description: "Revert changes"},
	{Key: "init", Emoji: "🎉", Description: "Initial commit"},
	{Key: "ui", Emoji: "🎨", Description: "UI or styling update"},
	{Key: "config", Emoji: "⚙️", Description: "Configuration change"},
	{Key: "merge", Emoji: "🔀", Description: "Merge branches"},
}

// Default returns the classification used for unknown keys.
func Default() Classification {
	return registry[0]
}

// Lookup returns the classification registered under key.
// Unknown keys resolve to Default; Lookup never fails.
func Lookup(key string) Classification {
	for _, c := range registry {
		if c.Key == key {
			return c
		}
	}
	return Default()
}

// IsKnown reports whether key is a registered classification.
func IsKnown(key string) bool {
	for _, c := range registry {
		if c.Key == key {
			return true
		}
	}
	return false
}

// Types returns all registered classifications in declaration order.
func Types() []Classification {
	out := make([]Classification, len(registry))
	copy(out, registry)
	return out
}

// Keys returns the registered keys in declaration order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for _, c := range registry {
		keys = append(keys, c.Key)
	}
	return keys
}
