package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"

	"github.com/pontaoski/mirpat/config"
	"github.com/pontaoski/mirpat/parser"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/mirpat", "main")

// setup loads the configuration and applies its log level. The --log-level
// flag wins over the file.
func setup(c *cli.Context) (*runner, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	setupLogging(level)

	if err := cfg.CheckGrammar(parser.GrammarVersion); err != nil {
		return nil, err
	}
	return &runner{cfg: cfg, out: c.App.Writer, trace: c.Bool("trace")}, nil
}

// filesCommand builds a command that runs fn over the named files, or over
// the configured patterns when none are named.
func filesCommand(name, usage string, flags []cli.Flag, fn func(r *runner, c *cli.Context, files []string) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[FILE...]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			r, err := setup(c)
			if err != nil {
				return err
			}
			files := c.Args().Slice()
			if len(files) == 0 {
				files, err = r.cfg.Files(".")
				if err != nil {
					return err
				}
			}
			if len(files) == 0 {
				return cli.Exit("no pattern files", 1)
			}
			return fn(r, c, files)
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "mirpat",
		Usage:   "check and format MIR patterns",
		Version: parser.GrammarVersion.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print errors with their stack trace and source",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			code := 1
			if exit, ok := err.(cli.ExitCoder); ok {
				code = exit.ExitCode()
			}
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, "mirpat:", msg)
			}
			os.Exit(code)
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default configuration",
				Action: func(c *cli.Context) error {
					path := c.String("config")
					if _, err := os.Stat(path); err == nil {
						return cli.Exit(path+" already exists", 1)
					}
					cfg := config.Default()
					cfg.Requires = "^" + parser.GrammarVersion.String()
					return config.Save(path, cfg)
				},
			},
			filesCommand("check", "parse pattern files and report errors", nil,
				func(r *runner, c *cli.Context, files []string) error {
					return r.check(files)
				}),
			filesCommand("fmt", "print pattern files in canonical form",
				[]cli.Flag{
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "rewrite the files in place",
					},
				},
				func(r *runner, c *cli.Context, files []string) error {
					return r.format(files, c.Bool("write"))
				}),
			filesCommand("dump", "print the parsed tree of pattern files", nil,
				func(r *runner, c *cli.Context, files []string) error {
					return r.dump(files)
				}),
			filesCommand("tokens", "print the tokens of pattern files", nil,
				func(r *runner, c *cli.Context, files []string) error {
					return r.tokens(files)
				}),
			filesCommand("watch", "check pattern files again whenever they change", nil,
				func(r *runner, c *cli.Context, files []string) error {
					return r.watch(c.Context, files)
				}),
		},
	}
}

// run returns the exit status for args. Errors raised by commands leave
// through ExitErrHandler; the ones cli returns directly, such as usage
// errors, are reported here.
func run(ctx context.Context, app *cli.App, args []string) int {
	if err := app.RunContext(ctx, args); err != nil {
		fmt.Fprintln(app.ErrWriter, "mirpat:", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, newApp(), os.Args)
	stop()
	os.Exit(code)
}
