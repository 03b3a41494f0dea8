package model

import (
	"fmt"
	"strings"
)

type NHLTeam struct {
	name   string
	loc    string
	mascot string
	short  string   // If there is a short form of the name, e.g. TB for TBL
	nick   []string // Any other nicknames that are used for the team, e.g. Habs for MTL
}

func (t *NHLTeam) String() string {
	return t.name
}

func (t *NHLTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *NHLTeam) Equals(o *NHLTeam) bool {
	if o == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name &&
		t.loc == o.loc &&
		t.mascot == o.mascot &&
		t.short == o.short &&
		arrayEquals(t.nick, o.nick)
}

var (
	TEAM_FA *NHLTeam = &NHLTeam{name: "FA", nick: []string{"FA*"}}

	// Eastern conference
	TEAM_BOS *NHLTeam = &NHLTeam{name: "BOS", loc: "Boston", mascot: "Bruins", nick: []string{"Bs"}}
	TEAM_BUF *NHLTeam = &NHLTeam{name: "BUF", loc: "Buffalo", mascot: "Sabres"}
	TEAM_CAR *NHLTeam = &NHLTeam{name: "CAR", loc: "Carolina", mascot: "Hurricanes", nick: []string{"Canes"}}
	TEAM_CBJ *NHLTeam = &NHLTeam{name: "CBJ", loc: "Columbus", mascot: "Blue Jackets", nick: []string{"Jackets"}}
	TEAM_DET *NHLTeam = &NHLTeam{name: "DET", loc: "Detroit", mascot: "Red Wings", nick: []string{"Wings"}}
	TEAM_FLA *NHLTeam = &NHLTeam{name: "FLA", loc: "Florida", mascot: "Panthers", nick: []string{"Cats"}}
	TEAM_MTL *NHLTeam = &NHLTeam{name: "MTL", loc: "Montreal", mascot: "Canadiens", nick: []string{"Habs"}}
	TEAM_NJD *NHLTeam = &NHLTeam{name: "NJD", loc: "New Jersey", mascot: "Devils", short: "NJ"}
	TEAM_NYI *NHLTeam = &NHLTeam{name: "NYI", loc: "New York", mascot: "Islanders", nick: []string{"Isles"}}
	TEAM_NYR *NHLTeam = &NHLTeam{name: "NYR", loc: "New York", mascot: "Rangers"}
	TEAM_OTT *NHLTeam = &NHLTeam{name: "OTT", loc: "Ottawa", mascot: "Senators", nick: []string{"Sens"}}
	TEAM_PHI *NHLTeam = &NHLTeam{name: "PHI", loc: "Philadelphia", mascot: "Flyers", nick: []string{"Philly"}}
	TEAM_PIT *NHLTeam = &NHLTeam{name: "PIT", loc: "Pittsburgh", mascot: "Penguins", nick: []string{"Pens"}}
	TEAM_TBL *NHLTeam = &NHLTeam{name: "TBL", loc: "Tampa Bay", mascot: "Lightning", short: "TB", nick: []string{"Bolts"}}
	TEAM_TOR *NHLTeam = &NHLTeam{name: "TOR", loc: "Toronto", mascot: "Maple Leafs", nick: []string{"Leafs"}}
	TEAM_WSH *NHLTeam = &NHLTeam{name: "WSH", loc: "Washington", mascot: "Capitals", nick: []string{"Caps"}}

	// Western conference
	TEAM_ANA *NHLTeam = &NHLTeam{name: "ANA", loc: "Anaheim", mascot: "Ducks"}
	TEAM_CGY *NHLTeam = &NHLTeam{name: "CGY", loc: "Calgary", mascot: "Flames"}
	TEAM_CHI *NHLTeam = &NHLTeam{name: "CHI", loc: "Chicago", mascot: "Blackhawks", nick: []string{"Hawks"}}
	TEAM_COL *NHLTeam = &NHLTeam{name: "COL", loc: "Colorado", mascot: "Avalanche", nick: []string{"Avs"}}
	TEAM_DAL *NHLTeam = &NHLTeam{name: "DAL", loc: "Dallas", mascot: "Stars"}
	TEAM_EDM *NHLTeam = &NHLTeam{name: "EDM", loc: "Edmonton", mascot: "Oilers"}
	TEAM_LAK *NHLTeam = &NHLTeam{name: "LAK", loc: "Los Angeles", mascot: "Kings", short: "LA"}
	TEAM_MIN *NHLTeam = &NHLTeam{name: "MIN", loc: "Minnesota", mascot: "Wild"}
	TEAM_NSH *NHLTeam = &NHLTeam{name: "NSH", loc: "Nashville", mascot: "Predators", nick: []string{"Preds"}}
	TEAM_SEA *NHLTeam = &NHLTeam{name: "SEA", loc: "Seattle", mascot: "Kraken"}
	TEAM_SJS *NHLTeam = &NHLTeam{name: "SJS", loc: "San Jose", mascot: "Sharks", short: "SJ"}
	TEAM_STL *NHLTeam = &NHLTeam{name: "STL", loc: "St. Louis", mascot: "Blues"}
	TEAM_UTA *NHLTeam = &NHLTeam{name: "UTA", loc: "Utah", mascot: "Mammoth", nick: []string{"Utah HC"}}
	TEAM_VAN *NHLTeam = &NHLTeam{name: "VAN", loc: "Vancouver", mascot: "Canucks", nick: []string{"Nucks"}}
	TEAM_VGK *NHLTeam = &NHLTeam{name: "VGK", loc: "Vegas", mascot: "Golden Knights", nick: []string{"Knights"}}
	TEAM_WPG *NHLTeam = &NHLTeam{name: "WPG", loc: "Winnipeg", mascot: "Jets"}

	teamMap map[string]*NHLTeam = buildTeamMap()
)

func ParseNHLTeam(name string) *NHLTeam {
	t := teamMap[strings.ToLower(name)]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*NHLTeam {
	teams := []*NHLTeam{
		// East
		TEAM_BOS, TEAM_BUF, TEAM_CAR, TEAM_CBJ, TEAM_DET, TEAM_FLA, TEAM_MTL, TEAM_NJD,
		TEAM_NYI, TEAM_NYR, TEAM_OTT, TEAM_PHI, TEAM_PIT, TEAM_TBL, TEAM_TOR, TEAM_WSH,
		// West
		TEAM_ANA, TEAM_CGY, TEAM_CHI, TEAM_COL, TEAM_DAL, TEAM_EDM, TEAM_LAK, TEAM_MIN,
		TEAM_NSH, TEAM_SEA, TEAM_SJS, TEAM_STL, TEAM_UTA, TEAM_VAN, TEAM_VGK, TEAM_WPG,
		// Other
		TEAM_FA,
	}

	teamMap := make(map[string]*NHLTeam)
	for _, t := range teams {
		teamMap[strings.ToLower(t.name)] = t

		if t.loc != "" {
			teamMap[strings.ToLower(t.loc)] = t
		}

		if t.mascot != "" {
			teamMap[strings.ToLower(t.mascot)] = t
		}

		if t.short != "" {
			teamMap[strings.ToLower(t.short)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
