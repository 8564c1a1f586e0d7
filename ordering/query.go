package ordering

// AssociationKind classifies a declared relation.
type AssociationKind int

const (
	BelongsTo AssociationKind = iota // foreign key on the owning table
	HasOne                           // foreign key on the target table
	HasMany                          // foreign key on the target table, many rows
)

// ToOne reports whether each owning row maps to at most one related row.
func (k AssociationKind) ToOne() bool {
	return k == BelongsTo || k == HasOne
}

// Association is the relation metadata the alias resolver matches
// against the query's join graph.
type Association struct {
	Name        string
	Kind        AssociationKind
	TargetTable string
	// ForeignKey is the referencing column: on the owning table for
	// BelongsTo, on the target table for HasOne/HasMany.
	ForeignKey string
}

// JoinClause describes one join present in a query, as reported by the
// query engine. Binding is the name the engine actually bound the
// joined table to; it equals Table when no alias was needed.
type JoinClause struct {
	Table   string
	Binding string
	OnLeft  string // qualified column, e.g. "posts.creator_id"
	OnRight string // qualified column, e.g. "users.id"
}

// Query is the slice of a select-query builder the ordering core needs.
// JoinClauses is the one place the core depends on relational-engine
// internals: a binding must report the joins it really produced, aliases
// included, so the resolver never has to guess a table name.
type Query interface {
	Table() string
	Association(name string) (Association, bool)

	// LeftOuterJoin ensures a left outer join over the named
	// association. Idempotent per association name.
	LeftOuterJoin(name string) error
	JoinClauses() []JoinClause

	// AppendOrder adds an ORDER BY fragment after any existing order
	// state; SetOrder replaces the order state in one call.
	AppendOrder(fragment string)
	SetOrder(fragment string)
}
