package nhl

// teamNames maps NHL team abbreviations to common names. Scoreboard
// payloads carry names, but some endpoints only return the abbreviation.
var teamNames = map[string]string{
	"ANA": "Ducks",
	"BOS": "Bruins",
	"BUF": "Sabres",
	"CGY": "Flames",
	"CAR": "Hurricanes",
	"CHI": "Blackhawks",
	"COL": "Avalanche",
	"CBJ": "Blue Jackets",
	"DAL": "Stars",
	"DET": "Red Wings",
	"EDM": "Oilers",
	"FLA": "Panthers",
	"LAK": "Kings",
	"MIN": "Wild",
	"MTL": "Canadiens",
	"NSH": "Predators",
	"NJD": "Devils",
	"NYI": "Islanders",
	"NYR": "Rangers",
	"OTT": "Senators",
	"PHI": "Flyers",
	"PIT": "Penguins",
	"SJS": "Sharks",
	"SEA": "Kraken",
	"STL": "Blues",
	"TBL": "Lightning",
	"TOR": "Maple Leafs",
	"VAN": "Canucks",
	"VGK": "Golden Knights",
	"WSH": "Capitals",
	"WPG": "Jets",
	"UTA": "Hockey Club",
	// Historical teams
	"ARI": "Coyotes",
	"PHX": "Phoenix Coyotes",
	"ATL": "Atlanta Thrashers",
}

// AbbrevToCommonName maps a team abbreviation (e.g. "TOR") to its common
// name (e.g. "Maple Leafs"). Returns false for unknown abbreviations.
func AbbrevToCommonName(abbrev string) (string, bool) {
	name, ok := teamNames[abbrev]
	return name, ok
}

// CommonNameToAbbrev maps a team common name back to its abbreviation.
func CommonNameToAbbrev(name string) (string, bool) {
	for abbrev, n := range teamNames {
		if n == name {
			return abbrev, true
		}
	}
	return "", false
}
