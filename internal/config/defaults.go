package config

const (
	defaultAPIBaseURL     = "http://127.0.0.1:8000"
	defaultAPITimeout     = 10
	defaultArticleLimit   = 50
	defaultHighlightLimit = 50
	defaultNarrativeOrder = "desc"
	defaultDataDir        = "~/.local/share/biaslab"
	defaultLogDir         = "~/.local/share/biaslab/logs"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultAPIBaseURL,
			TimeoutSeconds: defaultAPITimeout,
			ArticleLimit:   defaultArticleLimit,
			HighlightLimit: defaultHighlightLimit,
			NarrativeOrder: defaultNarrativeOrder,
		},
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Analysis: Analysis{
			IncludePrimary: false,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
