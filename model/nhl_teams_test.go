package model

import "testing"

func TestParseNHLTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *NHLTeam
	}{
		{input: "FA", expected: TEAM_FA},
		{input: "FA*", expected: TEAM_FA},

		// East
		{input: "BOS", expected: TEAM_BOS},
		{input: "BUF", expected: TEAM_BUF},
		{input: "CAR", expected: TEAM_CAR},
		{input: "CBJ", expected: TEAM_CBJ},
		{input: "DET", expected: TEAM_DET},
		{input: "FLA", expected: TEAM_FLA},
		{input: "MTL", expected: TEAM_MTL},
		{input: "NJD", expected: TEAM_NJD},
		{input: "NYI", expected: TEAM_NYI},
		{input: "NYR", expected: TEAM_NYR},
		{input: "OTT", expected: TEAM_OTT},
		{input: "PHI", expected: TEAM_PHI},
		{input: "PIT", expected: TEAM_PIT},
		{input: "TBL", expected: TEAM_TBL},
		{input: "TOR", expected: TEAM_TOR},
		{input: "WSH", expected: TEAM_WSH},

		// West
		{input: "ANA", expected: TEAM_ANA},
		{input: "CGY", expected: TEAM_CGY},
		{input: "CHI", expected: TEAM_CHI},
		{input: "COL", expected: TEAM_COL},
		{input: "DAL", expected: TEAM_DAL},
		{input: "EDM", expected: TEAM_EDM},
		{input: "LAK", expected: TEAM_LAK},
		{input: "MIN", expected: TEAM_MIN},
		{input: "NSH", expected: TEAM_NSH},
		{input: "SEA", expected: TEAM_SEA},
		{input: "SJS", expected: TEAM_SJS},
		{input: "STL", expected: TEAM_STL},
		{input: "UTA", expected: TEAM_UTA},
		{input: "VAN", expected: TEAM_VAN},
		{input: "VGK", expected: TEAM_VGK},
		{input: "WPG", expected: TEAM_WPG},

		// Short names
		{input: "tb", expected: TEAM_TBL},
		{input: "LA", expected: TEAM_LAK},
		{input: "nj", expected: TEAM_NJD},
		{input: "SJ", expected: TEAM_SJS},

		// Nicknames and friendly names
		{input: "Habs", expected: TEAM_MTL},
		{input: "leafs", expected: TEAM_TOR},
		{input: "Bolts", expected: TEAM_TBL},
		{input: "avs", expected: TEAM_COL},
		{input: "Kraken", expected: TEAM_SEA},
		{input: "Golden Knights", expected: TEAM_VGK},

		// Unknown teams parse as free agents
		{input: "", expected: TEAM_FA},
		{input: "QCN", expected: TEAM_FA},
	}

	for _, tc := range tests {
		a := ParseNHLTeam(tc.input)
		if !tc.expected.Equals(a) {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestNHLTeamFriendly(t *testing.T) {
	if f := TEAM_TOR.Friendly(); f != "Toronto Maple Leafs" {
		t.Errorf("unexpected friendly name: %s", f)
	}
	if f := TEAM_FA.Friendly(); f != "FA" {
		t.Errorf("unexpected friendly name: %s", f)
	}
}
