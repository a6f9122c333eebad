package psqlbuilder

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// builder squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT-запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// AnyUUID условие "column = ANY($n::uuid[])"
// Список передается одним параметром-массивом, поэтому текст запроса не зависит от количества id
func AnyUUID(column string, ids []uuid.UUID) squirrel.Sqlizer {
	values := make(pq.StringArray, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}
	return squirrel.Expr(column+" = ANY(?::uuid[])", values)
}
