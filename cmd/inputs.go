package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gocs25/internal/variables"
)

// variableFlag binds a command line flag to a named variable
type variableFlag struct {
	flag  string
	name  string
	units string
	usage string
}

func addVariableFlags(fs *pflag.FlagSet, flags []variableFlag) {
	for _, f := range flags {
		usage := f.usage
		if f.units != "" {
			usage = fmt.Sprintf("%s (%s)", f.usage, f.units)
		}
		fs.Float64(f.flag, 0, usage)
	}
}

// loadInputs reads the input variable file, if any, then applies the
// variable flags set on the command line.
func loadInputs(fs *pflag.FlagSet, file string, flags []variableFlag) (*variables.Set, error) {
	set := variables.NewSet()
	if file != "" {
		loaded, err := variables.Load(file)
		if err != nil {
			return nil, err
		}
		set = loaded
		level.Debug(logger).Log("msg", "inputs loaded", "file", file, "variables", set.Len())
	}

	byFlag := make(map[string]variableFlag, len(flags))
	for _, f := range flags {
		byFlag[f.flag] = f
	}

	var err error
	fs.Visit(func(fl *pflag.Flag) {
		vf, ok := byFlag[fl.Name]
		if !ok || err != nil {
			return
		}
		v, e := fs.GetFloat64(fl.Name)
		if e != nil {
			err = e
			return
		}
		set.Add(vf.name, v, vf.units)
	})
	return set, err
}

// writeOutputs stores inputs and outputs in a variable file
func writeOutputs(file string, sets ...*variables.Set) error {
	out := variables.NewSet()
	for _, s := range sets {
		out.Merge(s)
	}
	if err := out.Write(file); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "variables written", "file", file, "variables", out.Len())
	return nil
}

func printTitle(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

// newSection prints a section header and returns a writer for its table
func newSection(name string) *tabwriter.Writer {
	fmt.Printf("%s:\n", name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// endSection flushes a section table
func endSection(w *tabwriter.Writer) {
	w.Flush()
	fmt.Println()
}
