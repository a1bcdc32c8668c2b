package models

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"

	DefaultSystemMsg = `You are the engine of an element crafting game.
The user sends two elements joined with "+". Reply with exactly one new element
that results from combining them, prefixed with a single fitting emoji.
Reply with the element only, no explanation.`
)

// DefaultExamples returns a fresh copy of the built-in example pairs.
func DefaultExamples() []ExamplePair {
	return []ExamplePair{
		{FromStr: "🌍 Earth + 💧 Water", ResultStr: "🌱 Plant"},
		{FromStr: "🔥 Fire + 💧 Water", ResultStr: "💨 Steam"},
		{FromStr: "🌍 Earth + 🔥 Fire", ResultStr: "🌋 Lava"},
		{FromStr: "🌬️ Wind + 💧 Water", ResultStr: "🌊 Wave"},
	}
}

// DefaultConfig returns the record used when nothing has been stored yet.
func DefaultConfig() ConfigRecord {
	return ConfigRecord{
		Model:     DefaultModel,
		BaseURL:   DefaultBaseURL,
		SystemMsg: DefaultSystemMsg,
		Examples:  DefaultExamples(),
	}
}
