package schema

// LogentryTable represents the 'logentry' table
type LogentryTable struct {
	Table      string
	ID         string
	RevisionID string
	Lognumber  string
}

// Logentry is the schema definition for logentry
var Logentry = LogentryTable{
	Table:      "logentry",
	ID:         "id",
	RevisionID: "revision_id",
	Lognumber:  "lognumber",
}

// LogentryRevisionTable represents the 'logentry_revision' table
type LogentryRevisionTable struct {
	Table      string
	RevisionID string
	EntryID    string
	Title      string
	AuthorID   string
	Status     string
	Created    string
	Changed    string
}

// LogentryRevision is the schema definition for logentry_revision
var LogentryRevision = LogentryRevisionTable{
	Table:      "logentry_revision",
	RevisionID: "revision_id",
	EntryID:    "entry_id",
	Title:      "title",
	AuthorID:   "author_id",
	Status:     "status",
	Created:    "created",
	Changed:    "changed",
}
