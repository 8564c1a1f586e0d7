package ordering

import "fmt"

// ConfigurationError reports a broken ordering rule or association
// declaration. It is a programmer error, never caused by client input.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "ordering: " + e.Reason
}

// ResolutionError reports that no join clause in the query matched an
// association's declared foreign key and target table. It signals a
// mismatch between the declared relation metadata and the join graph
// the query engine actually produced.
type ResolutionError struct {
	Association string
	Table       string
	ForeignKey  string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf(
		"ordering: no join clause matched association %q (table %q, foreign key %q)",
		e.Association, e.Table, e.ForeignKey,
	)
}
