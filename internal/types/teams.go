package types

// TeamFullNames maps every NFL team's full name to its league
// abbreviation. Static table, never derived from source data.
var TeamFullNames = map[string]string{
	"Arizona Cardinals":     "ARI",
	"Atlanta Falcons":       "ATL",
	"Baltimore Ravens":      "BAL",
	"Buffalo Bills":         "BUF",
	"Carolina Panthers":     "CAR",
	"Chicago Bears":         "CHI",
	"Cincinnati Bengals":    "CIN",
	"Cleveland Browns":      "CLE",
	"Dallas Cowboys":        "DAL",
	"Denver Broncos":        "DEN",
	"Detroit Lions":         "DET",
	"Green Bay Packers":     "GB",
	"Houston Texans":        "HOU",
	"Indianapolis Colts":    "IND",
	"Jacksonville Jaguars":  "JAX",
	"Kansas City Chiefs":    "KC",
	"Las Vegas Raiders":     "LV",
	"Los Angeles Chargers":  "LAC",
	"Los Angeles Rams":      "LAR",
	"Miami Dolphins":        "MIA",
	"Minnesota Vikings":     "MIN",
	"New England Patriots":  "NE",
	"New Orleans Saints":    "NO",
	"New York Giants":       "NYG",
	"New York Jets":         "NYJ",
	"Philadelphia Eagles":   "PHI",
	"Pittsburgh Steelers":   "PIT",
	"San Francisco 49ers":   "SF",
	"Seattle Seahawks":      "SEA",
	"Tampa Bay Buccaneers":  "TB",
	"Tennessee Titans":      "TEN",
	"Washington Commanders": "WAS",
}

// TeamVariants maps each abbreviation to the name variants source tables
// use for that team (abbreviation, city, nickname). Schedules may carry
// full names while defense tables carry cities or abbreviations; lookups
// must tolerate all of them.
var TeamVariants = map[string][]string{
	"ARI": {"ARI", "Arizona", "Cardinals"},
	"ATL": {"ATL", "Atlanta", "Falcons"},
	"BAL": {"BAL", "Baltimore", "Ravens"},
	"BUF": {"BUF", "Buffalo", "Bills"},
	"CAR": {"CAR", "Carolina", "Panthers"},
	"CHI": {"CHI", "Chicago", "Bears"},
	"CIN": {"CIN", "Cincinnati", "Bengals"},
	"CLE": {"CLE", "Cleveland", "Browns"},
	"DAL": {"DAL", "Dallas", "Cowboys"},
	"DEN": {"DEN", "Denver", "Broncos"},
	"DET": {"DET", "Detroit", "Lions"},
	"GB":  {"GB", "Green Bay", "Packers"},
	"HOU": {"HOU", "Houston", "Texans"},
	"IND": {"IND", "Indianapolis", "Colts"},
	"JAX": {"JAX", "Jacksonville", "Jaguars"},
	"KC":  {"KC", "Kansas City", "Chiefs"},
	"LV":  {"LV", "Las Vegas", "Raiders"},
	"LAC": {"LAC", "Los Angeles Chargers", "Chargers"},
	"LAR": {"LAR", "Los Angeles Rams", "Rams"},
	"MIA": {"MIA", "Miami", "Dolphins"},
	"MIN": {"MIN", "Minnesota", "Vikings"},
	"NE":  {"NE", "New England", "Patriots"},
	"NO":  {"NO", "New Orleans", "Saints"},
	"NYG": {"NYG", "New York Giants", "Giants"},
	"NYJ": {"NYJ", "New York Jets", "Jets"},
	"PHI": {"PHI", "Philadelphia", "Eagles"},
	"PIT": {"PIT", "Pittsburgh", "Steelers"},
	"SF":  {"SF", "San Francisco", "49ers"},
	"SEA": {"SEA", "Seattle", "Seahawks"},
	"TB":  {"TB", "Tampa Bay", "Buccaneers"},
	"TEN": {"TEN", "Tennessee", "Titans"},
	"WAS": {"WAS", "Washington", "Commanders"},
}

// ResolveTeam maps any known team-name variant (abbreviation, city,
// nickname, or full name) to the canonical abbreviation
func ResolveTeam(name string) (string, bool) {
	if abbr, ok := TeamFullNames[name]; ok {
		return abbr, true
	}
	if _, ok := TeamVariants[name]; ok {
		return name, true
	}
	for abbr, variants := range TeamVariants {
		for _, v := range variants {
			if v == name {
				return abbr, true
			}
		}
	}
	return "", false
}
