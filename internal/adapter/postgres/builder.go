package postgres

import "github.com/Masterminds/squirrel"

// Builder is a squirrel statement builder using PostgreSQL $N placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
