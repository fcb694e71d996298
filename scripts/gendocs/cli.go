package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/tempchart/internal/cli"
	"github.com/leapstack-labs/tempchart/internal/cli/config"
	intconfig "github.com/leapstack-labs/tempchart/internal/config"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

const scalesPage = "/reference/scales"

// configKey documents one configuration key and the flag that overrides it.
type configKey struct {
	key  string
	flag string // empty when only the file and env can set it
	def  string
}

func configKeys() []configKey {
	def := config.Default()
	return []configKey{
		{key: "output", flag: "output", def: def.OutputFormat},
		{key: "precision", flag: "precision", def: strconv.Itoa(def.Precision)},
		{key: "default_unit", flag: "default-unit", def: "unset"},
		{key: "chart.width", flag: "width", def: strconv.Itoa(def.Chart.Width)},
		{key: "chart.colors", def: strings.Join(def.Chart.Colors, ",")},
		{key: "verbose", flag: "verbose", def: "false"},
	}
}

func envVar(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// generateCLIDocs writes index.md and one page per documented command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndex(root)}
	for _, cmd := range documented(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}

	for name, content := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), content, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func documented(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for tempchart")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/tempchart/cmd/tempchart@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documented(root) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	writeUnits(w)

	w.Header(2, "Configuration")
	w.Paragraph("Settings are read from " + InlineCode(intconfig.ConfigFileName) +
		" in the working directory or the nearest parent, then from the environment, then from flags. Later sources win.")
	flags := root.PersistentFlags()
	rows = rows[:0]
	for _, k := range configKeys() {
		flag, desc := "", ""
		if k.flag != "" {
			flag = InlineCode("--" + k.flag)
			if f := flags.Lookup(k.flag); f != nil {
				desc = cleanDescription(f.Usage)
			}
		}
		rows = append(rows, []string{InlineCode(k.key), InlineCode(envVar(k.key)), flag, InlineCode(k.def), desc})
	}
	w.Table([]string{"Key", "Environment", "Flag", "Default", "Description"}, rows)
	w.Paragraph("Run " + InlineCode("tempchart init") + " to write a commented config file and " +
		InlineCode("tempchart doctor") + " to see which one is in use.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Chart drawn, or the prompt was left with end of input or Ctrl-C"},
		{InlineCode("1"), "Value is not a number (convert), unit not recognized, or the chart could not be drawn"},
	})

	return w.Bytes()
}

// writeUnits lists the accepted unit labels, linking to the scale reference.
func writeUnits(w *MarkdownWriter) {
	w.Header(2, "Units")
	var items []string
	for _, s := range temperature.Scales() {
		labels := make([]string, 0, 2)
		for _, l := range s.Labels() {
			labels = append(labels, InlineCode(l))
		}
		items = append(items, fmt.Sprintf("%s (%s): %s", s.Name(), s.Symbol(), strings.Join(labels, " or ")))
	}
	w.BulletList(items)
	w.Paragraph(fmt.Sprintf("Units match in any case. A blank unit uses %s when it is set. See [Temperature Scales](%s) for the formulas.",
		InlineCode("default_unit"), scalesPage))
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	// Commands that complete unit names take a unit argument.
	if cmd.ValidArgsFunction != nil || cmd.Name() == "prompt" {
		writeUnits(w)
	}

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if cmd.HasAvailableInheritedFlags() {
		w.Header(2, "Global Options")
		w.Paragraph("Each global option can also be set in the [configuration](/cli#configuration).")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return w.Bytes()
}

func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name = InlineCode("-"+f.Shorthand) + ", " + name
		}
		def := f.DefValue
		if def != "" && def != "false" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{name, def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Default", "Description"}, rows)
}

// dedent strips the indentation cobra examples share.
func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return strings.TrimSpace(s)
	}
	for i, line := range lines {
		lines[i] = line[min(indent, len(line)):]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
