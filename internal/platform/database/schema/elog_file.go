package schema

// LogentryFileTable represents the 'logentry_file' table
type LogentryFileTable struct {
	Table    string
	ID       string
	EntryID  string
	Kind     string
	Filename string
}

// LogentryFile is the schema definition for logentry_file
var LogentryFile = LogentryFileTable{
	Table:    "logentry_file",
	ID:       "id",
	EntryID:  "entry_id",
	Kind:     "kind",
	Filename: "filename",
}

// CommentStatisticsTable represents the 'comment_statistics' table
type CommentStatisticsTable struct {
	Table        string
	EntryID      string
	CommentCount string
}

// CommentStatistics is the schema definition for comment_statistics
var CommentStatistics = CommentStatisticsTable{
	Table:        "comment_statistics",
	EntryID:      "entry_id",
	CommentCount: "comment_count",
}

// LognumberSequenceTable represents the 'lognumber_sequence' table
type LognumberSequenceTable struct {
	Table     string
	LogNumber string
}

// LognumberSequence is the schema definition for lognumber_sequence
var LognumberSequence = LognumberSequenceTable{
	Table:     "lognumber_sequence",
	LogNumber: "log_number",
}
