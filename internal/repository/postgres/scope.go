package postgres

import (
	"fmt"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

// scopeCondition renders a WHERE fragment restricting column to the given
// resolved scope, appending any bind argument. ScopeNone renders FALSE so
// an unscoped caller matches nothing rather than everything.
func scopeCondition(scope domain.NurseryScope, column string, args []interface{}) (string, []interface{}) {
	switch scope.Kind {
	case domain.ScopeAll:
		return "TRUE", args
	case domain.ScopeSingle:
		args = append(args, scope.NurseryID)
		return fmt.Sprintf("%s = $%d", column, len(args)), args
	default:
		return "FALSE", args
	}
}
