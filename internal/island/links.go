package island

// Links are the outbound destinations offered by the panels.
type Links struct {
	GitHubOrg    string
	QuickBooking string
	CustomBook   string
	Twitter      string
	LinkedIn     string
}

// DefaultLinks returns the consultancy's public profiles.
func DefaultLinks() Links {
	return Links{
		GitHubOrg:    "https://github.com/NexoraDevLabs",
		QuickBooking: "https://cal.com/nexoradevlabs/15min",
		CustomBook:   "https://cal.com/nexoradevlabs",
		Twitter:      "https://twitter.com/NexoraDevLabs",
		LinkedIn:     "https://linkedin.com/company/nexoradevlabs",
	}
}
