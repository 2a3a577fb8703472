package formatting

import (
	"fmt"
	"io"

	"github.com/planarcdt/cdt/cdt"
)

// EdgeString renders an edge handle's endpoints in their stored (A, B) order.
func EdgeString(e cdt.EdgeHandle) string {
	return fmt.Sprintf("Edge{%d, %d}", e.A, e.B)
}

// WriteEdge writes an edge handle to a writer.
func WriteEdge(w io.Writer, e cdt.EdgeHandle) error {
	_, err := fmt.Fprintf(w, "Edge{%d, %d}", e.A, e.B)
	return err
}
