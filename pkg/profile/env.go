package profile

import (
	"github.com/goliatone/go-prompter/pkg/prompt"
	"github.com/joeshaw/envdecode"
)

// Settings is session-wide presentation configuration. Values layer in three
// steps: DefaultSettings, then PROMPTER_* environment variables, then the
// settings block of a loaded profile via Store.Settings.
type Settings struct {
	HintSeparator string `env:"PROMPTER_HINT_SEPARATOR"`
	AutoTypeHint  bool   `env:"PROMPTER_AUTO_TYPE_HINT,default=true"`
	Theme         string `env:"PROMPTER_THEME"`
	Variant       string `env:"PROMPTER_THEME_VARIANT"`
}

// DefaultSettings mirrors a fresh session: stock hint separator, automatic
// type hints on, no theme.
func DefaultSettings() Settings {
	return Settings{
		HintSeparator: prompt.DefaultTemplates().HintSeparator,
		AutoTypeHint:  true,
	}
}

// FromEnv reads settings from the environment over the defaults. Unset
// variables keep their default values.
func FromEnv() Settings {
	cfg := DefaultSettings()
	_ = envdecode.Decode(&cfg)
	return cfg
}

// Apply pushes cfg onto a session: hint separator and automatic type hints.
// Theme and Variant name a style for the caller to resolve; a bare session
// has nothing to apply them to.
func Apply(session *prompt.Prompter, cfg Settings) {
	if session == nil {
		return
	}
	session.SetAutoTypeHint(cfg.AutoTypeHint)
	templates := session.Templates()
	templates.HintSeparator = cfg.HintSeparator
	session.SetTemplates(templates)
}
