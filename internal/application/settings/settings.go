// Package settings defines application-level configuration data.
package settings

import (
	"strings"
	"time"
)

// NewsAPIConfig selects the article source.
// An empty APIKey runs the reader from the bundled fixture.
type NewsAPIConfig struct {
	APIKey            string  `yaml:"api_key" kong:"name='api-key',help='NewsAPI key; empty uses the bundled fixture'"`
	BaseURL           string  `yaml:"base_url" kong:"name='base-url',help='NewsAPI base URL',default='https://newsapi.org'"`
	Country           string  `yaml:"country" kong:"help='Country for top headlines',default='us'"`
	Language          string  `yaml:"language" kong:"help='Language for search results',default='en'"`
	Query             string  `yaml:"query" kong:"help='Optional search query shown as an extra section'"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" kong:"name='timeout-seconds',help='Request timeout in seconds',default='60'"`
	RequestsPerSecond float64 `yaml:"requests_per_second" kong:"name='requests-per-second',help='Client-side request rate limit; 0 disables it',default='0'"`
	FixtureFile       string  `yaml:"fixture_file" kong:"name='fixture-file',help='Payload file used in mock mode instead of the bundled one'"`
}

// Timeout returns the request timeout as a duration.
func (c NewsAPIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Live reports whether an API key is configured.
func (c NewsAPIConfig) Live() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j'"`
	Left     string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right    string `yaml:"right" kong:"help='Right/Enter key',default='l'"`
	UpPage   string `yaml:"up_page" kong:"name='up-page',help='Page Up key',default='ctrl+u'"`
	DownPage string `yaml:"down_page" kong:"name='down-page',help='Page Down key',default='ctrl+d'"`
	Top      string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom   string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open     string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back     string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Browser  string `yaml:"browser" kong:"help='Open article in browser key',default='o'"`
	More     string `yaml:"more" kong:"help='Load next search page key',default='m'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Source   string `yaml:"source" kong:"help='Source and date color',default='244'"`
	TopStory string `yaml:"top_story" kong:"name='top-story',help='Top story marker color',default='205'"`
	Failed   string `yaml:"failed" kong:"help='Failed category marker color',default='203'"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
	File  string `yaml:"file" kong:"help='Log file path used while the TUI is running'"`
}

// Settings represents the application configuration.
type Settings struct {
	NewsAPI NewsAPIConfig `yaml:"newsapi" kong:"embed,prefix='newsapi.'"`
	KeyMap  KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme   ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log     LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
}
