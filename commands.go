package main

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/mirpat/config"
	"github.com/pontaoski/mirpat/errors"
	"github.com/pontaoski/mirpat/lexer"
	"github.com/pontaoski/mirpat/mir"
	"github.com/pontaoski/mirpat/parser"
)

type runner struct {
	cfg   *config.Config
	out   io.Writer
	trace bool
}

func (r *runner) parseFile(path string) (*mir.Mir, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return parser.ParseMir(string(data),
		parser.WithFilename(path),
		parser.WithStrictMeta(r.cfg.Strict()),
	)
}

// report prints err as `file:line:col: message` when it is a diagnostic.
func (r *runner) report(path string, err error) {
	if r.trace {
		fmt.Fprint(r.out, tracerr.SprintSourceColor(err))
		return
	}
	if perr, ok := tracerr.Unwrap(err).(*errors.ParseError); ok {
		fmt.Fprintf(r.out, "%s: %s\n", perr.Location.From, perr)
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", path, err)
}

// each runs fn over every file that parses, reporting the ones that do not.
func (r *runner) each(files []string, fn func(path string, unit *mir.Mir) error) error {
	failed := 0
	for _, path := range files {
		unit, err := r.parseFile(path)
		if err != nil {
			r.report(path, err)
			failed++
			continue
		}
		plog.Infof("%s: %d declarations, %d statements", path, len(unit.Metas)+len(unit.Uses)+len(unit.Types)+len(unit.Lets), len(unit.Body))
		if err := fn(path, unit); err != nil {
			return err
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d pattern files failed", failed, len(files)), 1)
	}
	return nil
}

func (r *runner) check(files []string) error {
	return r.each(files, func(string, *mir.Mir) error { return nil })
}

func (r *runner) format(files []string, write bool) error {
	return r.each(files, func(path string, unit *mir.Mir) error {
		out := mir.Format(unit) + "\n"
		if !write {
			_, err := io.WriteString(r.out, out)
			return err
		}
		plog.Debugf("rewriting %s", path)
		return tracerr.Wrap(ioutil.WriteFile(path, []byte(out), 0o644))
	})
}

func (r *runner) dump(files []string) error {
	printer := repr.New(r.out, repr.Indent("  "))
	return r.each(files, func(path string, unit *mir.Mir) error {
		fmt.Fprintf(r.out, "%s:\n", path)
		printer.Println(unit)
		return nil
	})
}

func (r *runner) tokens(files []string) error {
	for _, path := range files {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return tracerr.Wrap(err)
		}
		toks, err := lexer.Tokenize(path, string(data))
		if err != nil {
			r.report(path, err)
			continue
		}
		for _, tok := range toks {
			fmt.Fprintf(r.out, "%s\t%s\t%s\n", tok.Location.From, tok.Kind, tok.Text)
		}
	}
	return nil
}
