package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/leapstack-labs/logviews/internal/cli"
	"github.com/leapstack-labs/logviews/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs writes an overview page plus one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndexPage(root).Bytes()}
	for _, cmd := range documentedCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd).Bytes()
	}

	for name, data := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || !cmd.IsAvailableCommand() {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndexPage(root *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", root.Short)
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		args := argumentsOf(cmd)
		names := make([]string, 0, len(args))
		for _, a := range args {
			names = append(names, a.Name)
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s.md)", InlineCode(cmd.Name()), cmd.Name()),
			strings.Join(names, " "),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Arguments", "Description"}, rows)

	w.Header(2, "Global Options")
	writeFlags(w, root, root.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph(fmt.Sprintf("Each key of `%s` can also be set through the environment. "+
		"Flags win over the environment, which wins over the file.", config.ConfigFileName))
	described := make(map[string]string)
	for _, f := range getConfigSchema() {
		described[f.Name] = f.Description
	}
	var envRows [][]string
	for _, key := range configKeys() {
		envRows = append(envRows, []string{InlineCode(envVar(key)), InlineCode(key), described[key]})
	}
	w.Table([]string{"Variable", "Key", "Description"}, envRows)

	return w
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
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
	w.CodeBlock("bash", cmd.Root().Name()+" "+cmd.Use)

	if args := argumentsOf(cmd); len(args) > 0 {
		w.Header(2, "Arguments")
		var rows [][]string
		for _, a := range args {
			rows = append(rows, []string{InlineCode(a.Name), yesNo(a.Required)})
		}
		w.Table([]string{"Argument", "Required"}, rows)
	}

	if len(cmd.ValidArgs) > 0 {
		w.Header(2, "Accepted Values")
		values := make([]string, 0, len(cmd.ValidArgs))
		for _, v := range cmd.ValidArgs {
			values = append(values, InlineCode(v))
		}
		w.BulletList(values)
	}

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		writeFlags(w, cmd, cmd.LocalNonPersistentFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedentExample(cmd.Example))
	}

	return w
}

// argument is a positional argument parsed from a command's Use line.
type argument struct {
	Name     string
	Required bool
}

// argumentsOf reads <required> and [optional] placeholders from cmd.Use.
func argumentsOf(cmd *cobra.Command) []argument {
	var args []argument
	for _, field := range strings.Fields(cmd.Use)[1:] {
		switch {
		case strings.HasPrefix(field, "<"):
			args = append(args, argument{Name: field, Required: true})
		case strings.HasPrefix(field, "["):
			args = append(args, argument{Name: field})
		}
	}
	return args
}

// writeFlags lists flags with their registered completion values.
func writeFlags(w *MarkdownWriter, cmd *cobra.Command, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name += ", " + InlineCode("-"+f.Shorthand)
		}
		def := "-"
		if f.DefValue != "" && f.DefValue != "[]" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{name, f.Value.Type(), def, completionValues(cmd, f.Name), cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Type", "Default", "Values", "Description"}, rows)
}

func completionValues(cmd *cobra.Command, flag string) string {
	complete, ok := cmd.GetFlagCompletionFunc(flag)
	if !ok {
		return ""
	}
	values, _ := complete(cmd, nil, "")
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, InlineCode(v))
	}
	return strings.Join(quoted, ", ")
}

// configKeys returns the top-level koanf keys of config.Config in declaration order.
func configKeys() []string {
	t := reflect.TypeOf(config.Config{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("koanf")
		if tag == "" || tag == "-" {
			continue
		}
		keys = append(keys, tag)
	}
	return keys
}

func envVar(key string) string {
	return config.EnvPrefix + strings.ToUpper(key)
}

// dedentExample strips the two-space indent cobra examples are written with.
func dedentExample(example string) string {
	lines := strings.Split(strings.Trim(example, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return strings.Join(lines, "\n")
}
