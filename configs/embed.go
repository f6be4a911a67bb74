// Package configs embeds the settings template shipped with minigrep.
//
// The template is printed by `minigrep --print-config`. Redirect it to
// ~/.config/minigrep/config.yaml and edit from there. Its values match
// config.DefaultSettings, so an unedited copy changes nothing.
package configs

import _ "embed"

// UserConfigTemplate is the annotated settings file.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string
