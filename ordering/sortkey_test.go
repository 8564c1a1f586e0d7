package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
	}{
		{"-foo:nulls_first", SortKey{Attr: "foo", Desc: true, Nulls: NullsFirst}},
		{"+foo", SortKey{Attr: "foo"}},
		{"foo", SortKey{Attr: "foo"}},
		{"-foo", SortKey{Attr: "foo", Desc: true}},
		{"foo:nulls_last", SortKey{Attr: "foo", Nulls: NullsLast}},
		{"foo:whatever", SortKey{Attr: "foo", Nulls: NullsLast}},
		{"foo:", SortKey{Attr: "foo"}},
		{"-creator.last_name", SortKey{Attr: "creator.last_name", Desc: true}},
		{"+updated_at:nulls_first", SortKey{Attr: "updated_at", Nulls: NullsFirst}},
		{"", SortKey{}},
		{"-", SortKey{Desc: true}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	require.Equal(t, Parse("-foo:nulls_first"), Parse("-foo:nulls_first"))
}
