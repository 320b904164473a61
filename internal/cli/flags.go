package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	LyricsFile string
	BatchFile  string
	Provider   string
	SkipAudio  bool
	CSV        bool
	ListVoices string
	Archive    bool

	// OpenAI flags
	OpenAIModel string
	OpenAISpeed float64

	// Gemini flags
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAISpeed: 0.8,
		GeminiModel: "gemini-2.5-flash-preview-tts",
	}
}
