package schema

// MembershipTable represents a many-to-many join between entries and terms
type MembershipTable struct {
	Table   string
	EntryID string
	TermID  string
}

// LogentryLogbook is the schema definition for logentry_logbook
var LogentryLogbook = MembershipTable{
	Table:   "logentry_logbook",
	EntryID: "entry_id",
	TermID:  "logbook_id",
}

// LogentryTag is the schema definition for logentry_tag
var LogentryTag = MembershipTable{
	Table:   "logentry_tag",
	EntryID: "entry_id",
	TermID:  "tag_id",
}
