package sqldb

import "github.com/zeptools/gw-ordering/ordering"

// Schema describes one table to the query builder: its name, primary
// key, and declared associations. Declare everything during startup;
// a Schema is read-only once requests are being served.
//
// Joined target tables are assumed to be keyed by `id`.
type Schema struct {
	table        string
	primaryKey   string
	associations map[string]ordering.Association
}

// NewSchema panics on an invalid table identifier; schemas are built
// from compile-time constants.
func NewSchema(table string) *Schema {
	return &Schema{
		table:        NewColumnOrPanic(table).Name(),
		primaryKey:   "id",
		associations: make(map[string]ordering.Association),
	}
}

func (s *Schema) Table() string { return s.table }

func (s *Schema) PrimaryKey() string { return s.primaryKey }

// WithPrimaryKey overrides the default `id` primary key.
func (s *Schema) WithPrimaryKey(pk string) *Schema {
	s.primaryKey = NewColumnOrPanic(pk).Name()
	return s
}

// BelongsTo declares a to-one relation whose foreign key lives on this
// table (e.g. posts.creator_id -> users.id).
func (s *Schema) BelongsTo(name, targetTable, foreignKey string) *Schema {
	return s.associate(name, ordering.BelongsTo, targetTable, foreignKey)
}

// HasOne declares a to-one relation whose foreign key lives on the
// target table (e.g. post_details.post_id -> posts.id).
func (s *Schema) HasOne(name, targetTable, foreignKey string) *Schema {
	return s.associate(name, ordering.HasOne, targetTable, foreignKey)
}

// HasMany declares a to-many relation; it can be joined, but the
// ordering core refuses to sort through it.
func (s *Schema) HasMany(name, targetTable, foreignKey string) *Schema {
	return s.associate(name, ordering.HasMany, targetTable, foreignKey)
}

func (s *Schema) associate(name string, kind ordering.AssociationKind, targetTable, foreignKey string) *Schema {
	s.associations[name] = ordering.Association{
		Name:        NewColumnOrPanic(name).Name(),
		Kind:        kind,
		TargetTable: NewColumnOrPanic(targetTable).Name(),
		ForeignKey:  NewColumnOrPanic(foreignKey).Name(),
	}
	return s
}

func (s *Schema) Association(name string) (ordering.Association, bool) {
	a, ok := s.associations[name]
	return a, ok
}
