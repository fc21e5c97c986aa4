package entity

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Settings struct {
	SoundEnabled      bool  `json:"soundEnabled"`
	AnimationsEnabled bool  `json:"animationsEnabled"`
	Theme             Theme `json:"theme"`
}

func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:      true,
		AnimationsEnabled: true,
		Theme:             ThemeLight,
	}
}

func (that *Settings) ToggleSound() {
	that.SoundEnabled = !that.SoundEnabled
}

func (that *Settings) ToggleAnimations() {
	that.AnimationsEnabled = !that.AnimationsEnabled
}

func (that *Settings) ToggleTheme() {
	if that.Theme == ThemeDark {
		that.Theme = ThemeLight
		return
	}
	that.Theme = ThemeDark
}
