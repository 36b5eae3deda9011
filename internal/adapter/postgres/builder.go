package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Builder returns a squirrel statement builder using PostgreSQL $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ScopeClause restricts rows to the scope's family when it has one, otherwise to the
// user's own rows that are not shared with any family. Columns are qualified with prefix.
func ScopeClause(prefix string, scope domain.Scope) sq.Sqlizer {
	if scope.FamilyID != nil {
		return sq.Eq{prefix + "family_id": *scope.FamilyID}
	}
	return sq.And{
		sq.Eq{prefix + "user_id": scope.UserID},
		sq.Expr(prefix + "family_id IS NULL"),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE/ILIKE pattern matching term anywhere, with
// the wildcard characters in term matched literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
