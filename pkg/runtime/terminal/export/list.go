package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/equipment-insights/pkg/models/domain"
)

// ListReporter prints reports as plain indented lists.
type ListReporter struct {
	writer io.Writer
}

func NewListReporter(writer io.Writer) *ListReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &ListReporter{writer: writer}
}

const listTemplate = `
{{.Title}} ({{.GeneratedAt.Format "2006-01-02"}})
{{- if .Message}}
{{.Message}}
{{- end}}
{{range .Sections}}
=== {{.Title}} ===
{{- range .Summary}}{{if .Value}}
{{.Key}}: {{.Value}}{{end}}{{end}}
{{range .Details}}
- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}{{if .Description}}
  {{.Description}}{{end}}
{{- end}}
{{end}}`

func (c *ListReporter) Handle(report *domain.Report) error {
	t, err := template.New("report").Parse(listTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
