package config

// DefaultTeams is the built-in pair of lineups used when no roster is configured.
func DefaultTeams() []TeamDef {
	return []TeamDef{
		{
			Name: "Team1",
			Lineup: []PlayerDef{
				{Name: "Volpe", AVG: 0.282, OBP: 0.355, SLG: 0.435},
				{Name: "Soto", AVG: 0.310, OBP: 0.408, SLG: 0.571},
				{Name: "Rizzo", AVG: 0.250, OBP: 0.316, SLG: 0.377},
				{Name: "Judge", AVG: 0.279, OBP: 0.410, SLG: 0.629},
				{Name: "Torres", AVG: 0.228, OBP: 0.301, SLG: 0.327},
				{Name: "Verdugo", AVG: 0.261, OBP: 0.324, SLG: 0.431},
				{Name: "Stanton", AVG: 0.235, OBP: 0.283, SLG: 0.497},
				{Name: "Cabrera", AVG: 0.247, OBP: 0.286, SLG: 0.360},
				{Name: "Trevino", AVG: 0.283, OBP: 0.327, SLG: 0.434},
			},
		},
		{
			Name: "Team2",
			Lineup: []PlayerDef{
				{Name: "Duran", AVG: 0.266, OBP: 0.331, SLG: 0.446},
				{Name: "Rafaela", AVG: 0.209, OBP: 0.234, SLG: 0.363},
				{Name: "Devers", AVG: 0.273, OBP: 0.369, SLG: 0.528},
				{Name: "Abreu", AVG: 0.284, OBP: 0.359, SLG: 0.500},
				{Name: "O'Neill", AVG: 0.236, OBP: 0.343, SLG: 0.500},
				{Name: "Wong", AVG: 0.326, OBP: 0.368, SLG: 0.477},
				{Name: "Valdez", AVG: 0.156, OBP: 0.186, SLG: 0.267},
				{Name: "McGuire", AVG: 0.241, OBP: 0.323, SLG: 0.361},
				{Name: "Yoshida", AVG: 0.275, OBP: 0.348, SLG: 0.388},
			},
		},
	}
}
