package formatting

import (
	"fmt"

	"github.com/planarcdt/cdt/cdt"
)

// TriIDString renders a triangle ID for debugging, special-casing the nil
// sentinel so logs read "nil" instead of "-1".
func TriIDString(id cdt.TriID) string {
	if id == cdt.NilTri {
		return "TriID(nil)"
	}
	return fmt.Sprintf("TriID(%d)", id)
}
