package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/typelift/typelift/liftgen"
	"github.com/typelift/typelift/liftgen/model"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Convert a module model file and emit the IR module dump."`
	Check   CheckCmd   `cmd:"" help:"Validate a module model file without emitting output."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Model   string   `arg:"" help:"Path to the module model JSON file."`
	Out     string   `help:"Output directory for the module dump." short:"o" default:"."`
	Set     []string `help:"Target layout override (key=value, e.g. pointer-size=4)." short:"s"`
	Layout  bool     `help:"Include the data layout table in the dump."`
	Verbose bool     `help:"Enable debug logging." short:"v"`
}

func (c *GenCmd) Run() error {
	if c.Verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := &liftgen.Config{
		OutDir:     c.Out,
		Target:     liftgen.DefaultTarget(),
		EmitLayout: c.Layout,
	}

	overrides, err := parseOverrides(c.Set)
	if err != nil {
		return err
	}
	if err := cfg.Target.ApplyOverrides(overrides); err != nil {
		return err
	}

	result, err := liftgen.GenerateFile(context.Background(), c.Model, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d types, %d vars, %d functions)\n",
		result.Path, len(result.Module.Types), len(result.Module.Vars), len(result.Module.Funcs))
	return nil
}

type CheckCmd struct {
	Model string `arg:"" help:"Path to the module model JSON file."`
}

func (c *CheckCmd) Run() error {
	m, err := model.LoadFile(c.Model)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d records, %d enums, %d vars, %d functions\n",
		m.Name, len(m.Records), len(m.Enums), len(m.Vars), len(m.Funcs))
	return nil
}

func parseOverrides(pairs []string) (map[string][]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", pair)
		}
		out[key] = append(out[key], value)
	}
	return out, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typelift"),
		kong.Description("Typelift CLI for converting module models into high-level IR dumps."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
