package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/iris-go/internal/application/assist"
	"github.com/doeshing/iris-go/internal/domain"
)

// RenderResult prints one routed reply in a friendly, ASCII-only format.
// AI answers print bare; routed actions are prefixed with their category.
func RenderResult(out io.Writer, result assist.Result) {
	if result.Source != "" && result.Source != string(domain.CategoryDefaultAI) {
		fmt.Fprintf(out, "[%s]\n", result.Source)
	}
	fmt.Fprintln(out, result.Reply)
}
