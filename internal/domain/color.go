package domain

import "math/rand"

// ThemeColor 구독별 테마 색상. 고정 팔레트 밖의 값은 허용하지 않는다.
type ThemeColor string

const (
	ColorPomegranate   ThemeColor = "POMEGRANATE"
	ColorOrange        ThemeColor = "ORANGE"
	ColorYellow        ThemeColor = "YELLOW"
	ColorLightGreen    ThemeColor = "LIGHTGREEN"
	ColorGreen         ThemeColor = "GREEN"
	ColorMediterranean ThemeColor = "MEDITERRANEAN"
	ColorSkyBlue       ThemeColor = "SKYBLUE"
	ColorAmethyst      ThemeColor = "AMETHYST"
	ColorLavender      ThemeColor = "LAVENDER"
)

var themePalette = []ThemeColor{
	ColorPomegranate,
	ColorOrange,
	ColorYellow,
	ColorLightGreen,
	ColorGreen,
	ColorMediterranean,
	ColorSkyBlue,
	ColorAmethyst,
	ColorLavender,
}

// ThemePalette returns the fixed theme color palette
func ThemePalette() []ThemeColor {
	palette := make([]ThemeColor, len(themePalette))
	copy(palette, themePalette)
	return palette
}

// IsValid reports whether c belongs to the theme palette
func (c ThemeColor) IsValid() bool {
	for _, p := range themePalette {
		if c == p {
			return true
		}
	}
	return false
}

// RandomColor picks a random color from the theme palette
func RandomColor() ThemeColor {
	return themePalette[rand.Intn(len(themePalette))]
}
