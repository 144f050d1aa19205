package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	tests := map[string]Platform{
		"PC":        PlatformWindows,
		"WS":        PlatformWindows,
		"2600":      PlatformAtari2600,
		"SAT":       PlatformSaturn,
		"3DS":       PlatformNintendo3DS,
		"WiiU":      PlatformWiiU,
		"SNES":      PlatformSuperNES,
		"DC":        PlatformDreamCast,
		"3DO":       PlatformInteractive3DO,
		"XB":        PlatformXbox,
		"GB":        PlatformGameBoy,
		"GBA":       PlatformGameBoyAdvanced,
		"GC":        PlatformGameCube,
		"GEN":       PlatformGenesis,
		"GG":        PlatformGameGear,
		"NG":        PlatformNeoGeo,
		"SCD":       PlatformSegaCD,
		"TG16":      PlatformTurboGraf,
		"Wii":       PlatformWii,
		"PS4":       PlatformPS4,
		"WINDOWS":   PlatformWindows,
		"Commodore": PlatformUnknown,
		"":          PlatformUnknown,
	}

	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, ParsePlatform(raw))
		})
	}
}

func TestParseGenre(t *testing.T) {
	assert.Equal(t, GenreRPG, ParseGenre("Role-Playing"))
	assert.Equal(t, GenreSports, ParseGenre("Sports"))
	assert.Equal(t, GenreShooter, ParseGenre(" shooter "))
	assert.Equal(t, GenreUnknown, ParseGenre("Visual Novel"))
}
