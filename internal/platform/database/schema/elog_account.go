package schema

// AccountTable represents the 'account' table
type AccountTable struct {
	Table     string
	ID        string
	Name      string
	FirstName string
	LastName  string
	Mail      string
}

// Account is the schema definition for account
var Account = AccountTable{
	Table:     "account",
	ID:        "id",
	Name:      "name",
	FirstName: "first_name",
	LastName:  "last_name",
	Mail:      "mail",
}

func (t AccountTable) Columns() []string {
	return []string{t.ID, t.Name, t.FirstName, t.LastName, t.Mail}
}
