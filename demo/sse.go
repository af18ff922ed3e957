package demo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// writeEvent writes a server-sent event with the rendered component as data.
// Every line of the rendering becomes its own data line.
func writeEvent(ctx context.Context, w io.Writer, name string, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return fmt.Errorf("rendering %s event: %w", name, err)
	}

	var sb strings.Builder
	sb.WriteString("event: ")
	sb.WriteString(name)
	sb.WriteString("\n")
	for _, line := range strings.Split(buf.String(), "\n") {
		sb.WriteString("data: ")
		sb.WriteString(strings.TrimSuffix(line, "\r"))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
