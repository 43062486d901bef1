package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	wmdrschema "github.com/reoring/wmdrschema"
	"github.com/reoring/wmdrschema/assemble"
	"github.com/reoring/wmdrschema/config"
	"github.com/reoring/wmdrschema/diag"
	"github.com/reoring/wmdrschema/emit"
	"github.com/reoring/wmdrschema/xmi"
	"github.com/reoring/wmdrschema/xmlnode"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "wmdrschema: %v\n", err)
		os.Exit(exitCode(err))
	}
}

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func exitCode(err error) int {
	if _, ok := err.(usageError); ok {
		return 2
	}
	return 1
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		usage(stderr)
		return usageError{"missing subcommand"}
	}
	switch args[0] {
	case "generate":
		return generateCmd(args[1:], stdout, stderr)
	case "check":
		return checkCmd(args[1:], stdout, stderr)
	case "inspect":
		return inspectCmd(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return usageError{fmt.Sprintf("unknown subcommand %q", args[0])}
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "wmdrschema CLI\n\nUsage:\n  wmdrschema generate -model m.xmi -xsd hints.xsd -o out.schema.json [-split] [-format json|yaml] [-config c.yaml] [-v]\n  wmdrschema check -model m.xmi -xsd hints.xsd [-split] [-strict]\n  wmdrschema inspect -model m.xmi\n\nNotes:\n  - In split mode the documents are written next to the -o path under their own names.")
}

// commonFlags are shared by generate and check.
type commonFlags struct {
	fs      *flag.FlagSet
	model   string
	xsd     string
	split   bool
	format  string
	idBase  string
	indent  int
	cfgPath string
	verbose bool
}

func newCommonFlags(name string, stderr io.Writer) *commonFlags {
	c := &commonFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	c.fs.SetOutput(stderr)
	c.fs.StringVar(&c.model, "model", "", "UML model exported as XMI")
	c.fs.StringVar(&c.xsd, "xsd", "", "XSD supplying primitive type hints")
	c.fs.BoolVar(&c.split, "split", false, "write one schema file per definition")
	c.fs.StringVar(&c.format, "format", "", "output format: json or yaml")
	c.fs.StringVar(&c.idBase, "id-base", "", "prefix for every $id")
	c.fs.IntVar(&c.indent, "indent", 0, "spaces per indentation level")
	c.fs.StringVar(&c.cfgPath, "config", "", "optional YAML configuration file")
	c.fs.BoolVar(&c.verbose, "v", false, "enable verbose logs")
	return c
}

// options merges the config file with flags; flags given on the command
// line win.
func (c *commonFlags) options() (wmdrschema.Options, error) {
	opts := wmdrschema.DefaultOptions()
	if c.cfgPath != "" {
		f, err := config.Load(c.cfgPath)
		if err != nil {
			return opts, err
		}
		if f.Split != nil && *f.Split {
			opts.Mode = wmdrschema.ModeSplit
		}
		if f.IDBase != "" {
			opts.IDBase = f.IDBase
		}
		if f.Format != "" {
			opts.Format, _ = emit.ParseFormat(f.Format)
		}
		if f.Indent > 0 {
			opts.Indent = f.Indent
		}
	}
	var err error
	c.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "split":
			opts.Mode = wmdrschema.ModeUnified
			if c.split {
				opts.Mode = wmdrschema.ModeSplit
			}
		case "format":
			var f emit.Format
			if f, err = emit.ParseFormat(c.format); err == nil {
				opts.Format = f
			}
		case "id-base":
			opts.IDBase = c.idBase
		case "indent":
			opts.Indent = c.indent
		}
	})
	return opts, err
}

func (c *commonFlags) logf(w io.Writer) func(string, ...any) {
	return func(format string, a ...any) {
		if c.verbose {
			fmt.Fprintf(w, format+"\n", a...)
		}
	}
}

func generateCmd(args []string, stdout, stderr io.Writer) error {
	c := newCommonFlags("generate", stderr)
	var out string
	c.fs.StringVar(&out, "o", "", "output path (split mode: its directory)")
	if err := c.fs.Parse(args); err != nil {
		return usageError{err.Error()}
	}
	if c.model == "" || c.xsd == "" || out == "" {
		c.fs.Usage()
		return usageError{"generate requires -model, -xsd and -o"}
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	logf := c.logf(stderr)
	logf("generate: model=%s xsd=%s out=%s mode=%s format=%s", c.model, c.xsd, out, opts.Mode, opts.Format)

	res, paths, err := wmdrschema.ConvertFiles(c.model, c.xsd, out, opts)
	if err != nil {
		return err
	}
	for _, it := range res.Issues {
		logf("warning: %s", it)
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, p)
	}
	return nil
}

func checkCmd(args []string, stdout, stderr io.Writer) error {
	c := newCommonFlags("check", stderr)
	var strict bool
	c.fs.BoolVar(&strict, "strict", false, "exit non-zero when any warning is recorded")
	if err := c.fs.Parse(args); err != nil {
		return usageError{err.Error()}
	}
	if c.model == "" || c.xsd == "" {
		c.fs.Usage()
		return usageError{"check requires -model and -xsd"}
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	model, err := os.ReadFile(c.model)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}
	hints, err := os.ReadFile(c.xsd)
	if err != nil {
		return fmt.Errorf("read type hints: %w", err)
	}
	res, err := wmdrschema.ConvertBytes(model, hints, opts)
	if err != nil {
		return err
	}
	for _, it := range res.Issues {
		fmt.Fprintf(stdout, "warning: %s\n", it)
	}
	fmt.Fprintf(stdout, "%d document(s), %d warning(s)\n", len(res.Documents), len(res.Issues))
	if strict {
		return res.Strict()
	}
	return nil
}

type classReport struct {
	Name          string   `yaml:"name"`
	ID            string   `yaml:"id"`
	Superclasses  []string `yaml:"superclasses,omitempty"`
	Documentation string   `yaml:"documentation,omitempty"`
	Attributes    []string `yaml:"attributes"`
}

type inspectReport struct {
	Classes   []classReport       `yaml:"classes"`
	Flattened map[string][]string `yaml:"flattened"`
	Warnings  []string            `yaml:"warnings,omitempty"`
}

func inspectCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var modelPath string
	fs.StringVar(&modelPath, "model", "", "UML model exported as XMI")
	if err := fs.Parse(args); err != nil {
		return usageError{err.Error()}
	}
	if modelPath == "" {
		fs.Usage()
		return usageError{"inspect requires -model"}
	}
	data, err := os.ReadFile(modelPath)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		return fmt.Errorf("parse model: %w", err)
	}
	d := &diag.Collector{}
	m := xmi.Extract(root, d)

	rep := inspectReport{Flattened: map[string][]string{}}
	for _, cls := range m.Classes() {
		rep.Classes = append(rep.Classes, classReport{
			Name:          cls.Name,
			ID:            cls.ID,
			Superclasses:  m.Ancestors(cls.Name),
			Documentation: cls.Documentation,
			Attributes:    describe(cls.Attributes),
		})
	}
	for _, name := range []string{assemble.ObservingFacility, assemble.Equipment, assemble.Observation} {
		rep.Flattened[name] = describe(m.Flatten(name))
	}
	for _, it := range d.Issues() {
		rep.Warnings = append(rep.Warnings, it.String())
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

// describe renders attributes as "name [lower..upper]" plus markers.
func describe(attrs []xmi.Attribute) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		lower, upper := a.Lower, a.Upper
		if lower == "" {
			lower = "0"
		}
		if upper == "" {
			upper = "1"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%s..%s]", a.Name, lower, upper)
		if a.IsComposite() {
			fmt.Fprintf(&b, " composite %s", a.TypeRef)
		}
		out = append(out, b.String())
	}
	return out
}
