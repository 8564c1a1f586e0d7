package sqldb

import (
	"strconv"
	"strings"
)

var PlaceholderPrefixForDBType = map[string]byte{
	"mysql":  '?',
	"pgsql":  '$',
	"mssql":  '@',
	"oracle": ':',
	"sqlite": 0, // NOTE: sqlite supports all of them
}

// PlaceholderPrefix returns the bind-placeholder style for a db type,
// '?' for unknown types.
func PlaceholderPrefix(dbType string) byte {
	if prefix, ok := PlaceholderPrefixForDBType[dbType]; ok {
		return prefix
	}
	return '?'
}

// Placeholders renders a comma-separated placeholder list of the given
// length, numbered from start for ordinal styles ("$3, $4, ..."). Handy
// for IN lists.
func Placeholders(prefix byte, length, start int) string {
	var b strings.Builder
	b.Grow(4 * length)
	for i := range length {
		if i > 0 {
			b.WriteString(", ")
		}
		if prefix == '?' || prefix == 0 {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(prefix)
		b.WriteString(strconv.Itoa(start + i))
	}
	return b.String()
}

// ReplaceStaticPlaceholders rewrites static `?` placeholders into the
// engine's ordinal style ("$1", "@2", ...). A `?` style passes through
// untouched.
func ReplaceStaticPlaceholders(sql string, prefix byte) string {
	if prefix == '?' || prefix == 0 {
		return sql
	}
	var builder strings.Builder
	builder.Grow(len(sql) + 8)
	cnt := 1
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' {
			builder.WriteByte(prefix)
			builder.WriteString(strconv.Itoa(cnt))
			cnt++
		} else {
			builder.WriteByte(sql[i])
		}
	}
	return builder.String()
}
