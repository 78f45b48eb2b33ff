package user

// User is a planner account. A user owns weddings and everything under them.
type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

// Settings holds per-user display and parsing preferences.
type Settings struct {
	// Timezone is an IANA zone name used for day grouping on the timeline.
	Timezone string
	// Currency is an ISO 4217 code used by the frontend for formatting.
	Currency string
	// PhoneRegion is the default ISO 3166-1 country code for parsing guest
	// phone numbers without an explicit country prefix.
	PhoneRegion string
}
