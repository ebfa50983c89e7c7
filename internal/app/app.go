// Package app wires config, logging, and the table editor into the tedit
// command line. It drives exactly one editing command against one file; the
// buffer is in-memory and written back (or printed) when the command is done.
package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/table"
)

// App is the top-level runtime for tedit.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	fs := flag.NewFlagSet("tedit", flag.ContinueOnError)
	row := fs.Int("row", 0, "cursor row (zero-based)")
	col := fs.Int("col", 0, "cursor column (zero-based)")
	write := fs.Bool("write", false, "write the result back to the file instead of stdout")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: tedit [flags] <command> <file>")
		fmt.Fprintln(fs.Output(), "commands: check, format, escape, align <l|r|c|n>, select,")
		fmt.Fprintln(fs.Output(), "          next-cell, prev-cell, next-row,")
		fmt.Fprintln(fs.Output(), "          insert-row, delete-row, move-row <n>,")
		fmt.Fprintln(fs.Output(), "          insert-column, delete-column, move-column <n>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(a.args); err != nil {
		return err
	}
	args := fs.Args()
	if len(args) < 2 {
		fs.Usage()
		return fmt.Errorf("command and file required")
	}
	command := args[0]
	args = args[1:]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(*debug || cfg.Editor.Debug); err != nil {
		return err
	}
	defer logger.Close()

	opts, err := cfg.TableOptions()
	if err != nil {
		return err
	}

	// Commands with an argument consume it before the file name.
	var arg string
	switch command {
	case "align", "move-row", "move-column":
		if len(args) < 2 {
			return fmt.Errorf("%s needs an argument and a file", command)
		}
		arg, args = args[0], args[1:]
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	buf := editor.NewBuffer(lines...)
	buf.SetCursorPosition(table.NewPoint(*row, *col))
	ed := editor.New(buf, opts)
	ed.SetMaxEditDistance(cfg.Editor.MaxEditDistance)
	var session *editor.SessionState
	if cfg.Editor.SmartCursor {
		session = &editor.SessionState{}
	}

	logger.Info("run", "command", command, "file", path, "row", *row, "col", *col)
	if err := dispatch(ed, session, command, arg); err != nil {
		return err
	}

	out := strings.Join(buf.Lines(), "\n") + "\n"
	if *write {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return err
		}
	} else {
		fmt.Print(out)
	}
	pos := buf.GetCursorPosition()
	fmt.Fprintf(os.Stderr, "cursor: %d:%d\n", pos.Row, pos.Column)
	if r, ok := buf.Selection(); ok {
		fmt.Fprintf(os.Stderr, "selection: %d:%d-%d:%d\n",
			r.Start.Row, r.Start.Column, r.End.Row, r.End.Column)
	}
	return nil
}

func dispatch(ed *editor.TableEditor, session *editor.SessionState, command, arg string) error {
	switch command {
	case "check":
		fmt.Fprintln(os.Stderr, ed.CursorIsInTable())
	case "format":
		ed.Format()
	case "escape":
		ed.Escape()
	case "align":
		a, err := parseAlignment(arg)
		if err != nil {
			return err
		}
		ed.AlignColumn(a)
	case "select":
		ed.SelectCell()
	case "next-cell":
		ed.NextCell(session)
	case "prev-cell":
		ed.PreviousCell(session)
	case "next-row":
		ed.NextRow(session)
	case "insert-row":
		ed.InsertRow()
	case "delete-row":
		ed.DeleteRow()
	case "move-row":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("move-row: %w", err)
		}
		ed.MoveRow(n)
	case "insert-column":
		ed.InsertColumn()
	case "delete-column":
		ed.DeleteColumn()
	case "move-column":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("move-column: %w", err)
		}
		ed.MoveColumn(n)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func parseAlignment(s string) (table.Alignment, error) {
	switch s {
	case "left", "l":
		return table.AlignLeft, nil
	case "right", "r":
		return table.AlignRight, nil
	case "center", "c":
		return table.AlignCenter, nil
	case "none", "n":
		return table.AlignNone, nil
	default:
		return table.AlignNone, fmt.Errorf("unknown alignment %q", s)
	}
}
