package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sbomkit/cdxingest/internal/utility/purl"
	"github.com/sbomkit/cdxingest/pkg/models"
)

// PrintTableResults prints parse results as human friendly tables.
func PrintTableResults(results []FileResult, outputWriter io.Writer, terminalWidth int) {
	if terminalWidth <= 0 {
		text.DisableColors()
	}

	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(outputWriter)
		}
		fmt.Fprintln(outputWriter, summary(result))

		for _, builder := range []func(table.Writer, FileResult) table.Writer{
			packageTableBuilder,
			relationshipTableBuilder,
			vulnerabilityTableBuilder,
		} {
			outputTable := builder(newTable(outputWriter, terminalWidth), result)
			if outputTable.Length() != 0 {
				outputTable.Render()
			}
		}
	}
}

// PrintMarkdownTableResults prints parse results as markdown tables.
func PrintMarkdownTableResults(results []FileResult, outputWriter io.Writer) {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(outputWriter)
		}
		fmt.Fprintf(outputWriter, "### %s\n\n", summary(result))

		for _, builder := range []func(table.Writer, FileResult) table.Writer{
			packageTableBuilder,
			relationshipTableBuilder,
			vulnerabilityTableBuilder,
		} {
			outputTable := table.NewWriter()
			outputTable.SetOutputMirror(outputWriter)
			outputTable = builder(outputTable, result)
			if outputTable.Length() != 0 {
				outputTable.RenderMarkdown()
				fmt.Fprintln(outputWriter)
			}
		}
	}
}

func newTable(outputWriter io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(outputWriter)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	outputTable.Style().Options.DoNotColorBordersAndSeparators = true
	outputTable.Style().Color.Row = text.Colors{text.Reset, text.BgHiBlack}
	outputTable.Style().Color.RowAlternate = text.Colors{text.Reset, text.BgBlack}

	return outputTable
}

func summary(result FileResult) string {
	doc := result.Document
	if doc.IsEmpty() {
		return result.Path + ": not a CycloneDX document"
	}

	var sb strings.Builder
	sb.WriteString(result.Path)
	sb.WriteString(": CycloneDX")
	if doc.SpecVersion != "" {
		sb.WriteString(" " + doc.SpecVersion)
	}
	if doc.Serialization != "" {
		sb.WriteString(" (" + doc.Serialization + ")")
	}
	sb.WriteString(", " + plural(result.Packages.Len(), "package"))
	sb.WriteString(", " + plural(len(result.Relationships), "relationship"))
	sb.WriteString(", " + plural(len(result.Vulnerabilities), "vulnerability"))

	return sb.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "y") {
		return strconv.Itoa(n) + " " + strings.TrimSuffix(noun, "y") + "ies"
	}

	return strconv.Itoa(n) + " " + noun + "s"
}

func packageTableBuilder(outputTable table.Writer, result FileResult) table.Writer {
	pkgs := result.Packages.Packages()
	if len(pkgs) == 0 {
		return outputTable
	}

	outputTable.AppendHeader(table.Row{"Name", "Version", "Type", "Ecosystem", "License", "BOM Ref"})
	for _, pkg := range pkgs {
		outputTable.AppendRow(table.Row{
			pkg.Name,
			pkg.Version,
			pkg.Type,
			ecosystem(pkg),
			pkg.LicenseDeclared,
			pkg.BOMRef,
		})
	}

	return outputTable
}

func ecosystem(pkg models.Package) string {
	locator, ok := pkg.ExternalReference(models.ReferencePURL)
	if !ok {
		return ""
	}

	return purl.Ecosystem(locator)
}

func relationshipTableBuilder(outputTable table.Writer, result FileResult) table.Writer {
	if len(result.Relationships) == 0 {
		return outputTable
	}

	outputTable.AppendHeader(table.Row{"Source", "Relationship", "Target"})
	for _, rel := range result.Relationships {
		outputTable.AppendRow(table.Row{rel.Source, string(rel.Kind), rel.Target})
	}

	return outputTable
}

func vulnerabilityTableBuilder(outputTable table.Writer, result FileResult) table.Writer {
	if len(result.Vulnerabilities) == 0 {
		return outputTable
	}

	outputTable.AppendHeader(table.Row{"ID", "Source", "Status", "Justification"})
	for _, vuln := range result.Vulnerabilities {
		outputTable.AppendRow(table.Row{vuln.ID, vuln.SourceName, vuln.Status, vuln.Justification})
	}

	return outputTable
}
