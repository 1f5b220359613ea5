// Package view makes the engine's view-updatability rules explicit. Each
// derived view carries a capability tag, and write paths resolve the tag
// before any SQL is issued instead of relying on the engine to reject the
// statement.
package view

// Capability classifies how a view may be written through.
type Capability int

const (
	// ReadOnly views span joins or aggregation; no write resolves to a
	// unique base row.
	ReadOnly Capability = iota
	// KeyPreserving views project a single table including its key; writes
	// translate one-to-one onto the base row.
	KeyPreserving
	// CheckedWrite views are key-preserving but filtered, and the engine
	// re-validates the filter against the post-image of every write.
	CheckedWrite
)

func (c Capability) String() string {
	switch c {
	case KeyPreserving:
		return "key-preserving-writable"
	case CheckedWrite:
		return "conditionally-writable"
	default:
		return "read-only"
	}
}

// Definition describes one derived view.
type Definition struct {
	Name       string
	Capability Capability
	// Predicate is the row filter a CheckedWrite view enforces on writes,
	// empty otherwise.
	Predicate string
}

var registry = map[string]Definition{
	"current_borrowings": {Name: "current_borrowings", Capability: ReadOnly},
	"active_members":     {Name: "active_members", Capability: ReadOnly},
	"books_by_genre":     {Name: "books_by_genre", Capability: ReadOnly},
	"overdue_books":      {Name: "overdue_books", Capability: ReadOnly},
	"book_titles":        {Name: "book_titles", Capability: KeyPreserving},
	"available_books":    {Name: "available_books", Capability: CheckedWrite, Predicate: "available_copies > 0"},
}

// Lookup resolves a view by its SQL name.
func Lookup(name string) (Definition, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns every registered view name. Order is unspecified.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// Updatable reports whether any write at all may go through the view.
func (d Definition) Updatable() bool {
	return d.Capability != ReadOnly
}
