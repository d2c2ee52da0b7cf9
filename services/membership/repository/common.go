package repository

// orderClause maps a requested sort field through the entity's allow-list.
// Unknown fields fail closed to the identifier. A secondary id sort keeps
// pagination deterministic when the primary field has ties.
func orderClause(allowed map[string]string, sortBy, order string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = "id"
	}
	if order != "desc" {
		order = "asc"
	}
	clause := column + " " + order
	if column != "id" {
		clause += ", id " + order
	}
	return clause
}
