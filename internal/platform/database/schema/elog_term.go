package schema

// TermTable represents the 'term' table holding logbook and tag vocabularies
type TermTable struct {
	Table      string
	ID         string
	Vocabulary string
	Name       string
}

// Term is the schema definition for term
var Term = TermTable{
	Table:      "term",
	ID:         "id",
	Vocabulary: "vocabulary",
	Name:       "name",
}

func (t TermTable) Columns() []string {
	return []string{t.ID, t.Vocabulary, t.Name}
}
