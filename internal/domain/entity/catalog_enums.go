package entity

import "strings"

// Platform is the hardware a game is released on.
type Platform string

const (
	PlatformWindows         Platform = "WINDOWS"
	PlatformPS              Platform = "PS"
	PlatformPS2             Platform = "PS2"
	PlatformPS3             Platform = "PS3"
	PlatformPS4             Platform = "PS4"
	PlatformPSP             Platform = "PSP"
	PlatformPSV             Platform = "PSV"
	PlatformXbox            Platform = "XBOX"
	PlatformX360            Platform = "X360"
	PlatformXOne            Platform = "XONE"
	PlatformWii             Platform = "WII"
	PlatformWiiU            Platform = "WII_U"
	PlatformDS              Platform = "DS"
	PlatformNintendo3DS     Platform = "NINTENDO_3DS"
	PlatformN64             Platform = "N64"
	PlatformNES             Platform = "NES"
	PlatformSuperNES        Platform = "SUPER_NES"
	PlatformGameBoy         Platform = "GAME_BOY"
	PlatformGameBoyAdvanced Platform = "GAME_BOY_ADVANCED"
	PlatformGameCube        Platform = "GAME_CUBE"
	PlatformGenesis         Platform = "GENESIS"
	PlatformGameGear        Platform = "GAME_GEAR"
	PlatformSaturn          Platform = "SATURN"
	PlatformSegaCD          Platform = "SEGA_CD"
	PlatformDreamCast       Platform = "DREAM_CAST"
	PlatformAtari2600       Platform = "ATARI2600"
	PlatformNeoGeo          Platform = "NEO_GEO"
	PlatformTurboGraf       Platform = "TURBO_GRAF"
	PlatformInteractive3DO  Platform = "INTERACTIVE_3D0"
	PlatformPCFX            Platform = "PCFX"
	PlatformUnknown         Platform = "UNKNOWN"
)

var knownPlatforms = map[Platform]struct{}{
	PlatformWindows: {}, PlatformPS: {}, PlatformPS2: {}, PlatformPS3: {}, PlatformPS4: {},
	PlatformPSP: {}, PlatformPSV: {}, PlatformXbox: {}, PlatformX360: {}, PlatformXOne: {},
	PlatformWii: {}, PlatformWiiU: {}, PlatformDS: {}, PlatformNintendo3DS: {}, PlatformN64: {},
	PlatformNES: {}, PlatformSuperNES: {}, PlatformGameBoy: {}, PlatformGameBoyAdvanced: {},
	PlatformGameCube: {}, PlatformGenesis: {}, PlatformGameGear: {}, PlatformSaturn: {},
	PlatformSegaCD: {}, PlatformDreamCast: {}, PlatformAtari2600: {}, PlatformNeoGeo: {},
	PlatformTurboGraf: {}, PlatformInteractive3DO: {}, PlatformPCFX: {}, PlatformUnknown: {},
}

// catalog abbreviations that differ from the platform name
var platformAliases = map[string]Platform{
	"PC":   PlatformWindows,
	"WS":   PlatformWindows,
	"2600": PlatformAtari2600,
	"SAT":  PlatformSaturn,
	"3DS":  PlatformNintendo3DS,
	"WIIU": PlatformWiiU,
	"SNES": PlatformSuperNES,
	"DC":   PlatformDreamCast,
	"3DO":  PlatformInteractive3DO,
	"XB":   PlatformXbox,
	"GB":   PlatformGameBoy,
	"GBA":  PlatformGameBoyAdvanced,
	"GC":   PlatformGameCube,
	"GEN":  PlatformGenesis,
	"GG":   PlatformGameGear,
	"NG":   PlatformNeoGeo,
	"SCD":  PlatformSegaCD,
	"TG16": PlatformTurboGraf,
}

// ParsePlatform maps a platform name or catalog abbreviation; anything else is UNKNOWN.
func ParsePlatform(raw string) Platform {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if p, ok := platformAliases[name]; ok {
		return p
	}
	if _, ok := knownPlatforms[Platform(name)]; ok {
		return Platform(name)
	}

	return PlatformUnknown
}

// Genre is a game category.
type Genre string

const (
	GenreAction     Genre = "ACTION"
	GenreAdventure  Genre = "ADVENTURE"
	GenreFighting   Genre = "FIGHTING"
	GenreMisc       Genre = "MISC"
	GenrePlatform   Genre = "PLATFORM"
	GenrePuzzle     Genre = "PUZZLE"
	GenreRacing     Genre = "RACING"
	GenreRPG        Genre = "RPG"
	GenreShooter    Genre = "SHOOTER"
	GenreSimulation Genre = "SIMULATION"
	GenreSports     Genre = "SPORTS"
	GenreStrategy   Genre = "STRATEGY"
	GenreUnknown    Genre = "UNKNOWN"
)

var knownGenres = map[Genre]struct{}{
	GenreAction: {}, GenreAdventure: {}, GenreFighting: {}, GenreMisc: {}, GenrePlatform: {},
	GenrePuzzle: {}, GenreRacing: {}, GenreRPG: {}, GenreShooter: {}, GenreSimulation: {},
	GenreSports: {}, GenreStrategy: {}, GenreUnknown: {},
}

// ParseGenre maps a genre name; "Role-Playing" becomes RPG and anything unrecognised is UNKNOWN.
func ParseGenre(raw string) Genre {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "ROLE-PLAYING" {
		return GenreRPG
	}
	if _, ok := knownGenres[Genre(name)]; ok {
		return Genre(name)
	}

	return GenreUnknown
}

// LogTag classifies the content of a patch.
type LogTag string

const (
	LogTagAddFeature   LogTag = "ADD_FEATURE"
	LogTagBugFix       LogTag = "BUG_FIX"
	LogTagSecurityFix  LogTag = "SECURITY_FIX"
	LogTagOptimization LogTag = "OPTIMIZATION"
)
