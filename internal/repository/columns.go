package repository

import "strings"

// qualify prefixes every column of a comma-separated column list with a table
// alias, for use in joined queries
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
