// Zle is an interactive line editor demo. It reads lines with full editing,
// history browsing and reverse incremental search, and echoes each accepted
// line back.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zle-sh/zle/pkg/edit"
	"github.com/zle-sh/zle/pkg/histutil"
	"github.com/zle-sh/zle/pkg/store"
	"github.com/zle-sh/zle/pkg/sys"
	"github.com/zle-sh/zle/pkg/term"
)

const banner = `ZLE Interactive Line Editor
===========================

Keys:
  Ctrl+A/E    Beginning/end of line
  Ctrl+K      Kill to end of line
  Ctrl+U      Kill entire line
  Ctrl+R      Reverse history search
  Up/Down     Browse history
  Left/Right  Move cursor
  Enter       Accept line
  Ctrl+D      Quit (on an empty line)
`

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "zle:", err)
		os.Exit(2)
	}
}

func run(configPath string) error {
	if !sys.IsATTY(os.Stdin) {
		return fmt.Errorf("standard input is not a terminal")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var st histutil.Store
	if cfg.HistoryFile != "" {
		dbStore, err := store.Open(cfg.HistoryFile, cfg.MaxHistorySize)
		if err != nil {
			return fmt.Errorf("open history file: %w", err)
		}
		defer dbStore.Close()
		st = dbStore
	} else {
		st = histutil.NewMemStore(cfg.MaxHistorySize)
	}

	tty := term.NewTTY(os.Stdin, os.Stderr)
	defer tty.Close()

	ed := edit.NewEditor(tty, st)
	ed.Prompt = cfg.Prompt
	ed.AfterReadline = append(ed.AfterReadline, func(line string) {
		if line != "" {
			fmt.Printf("You entered: %q\n", line)
		}
	})

	fmt.Print(banner)
	for {
		_, err := ed.ReadLine()
		switch err {
		case nil:
		case io.EOF:
			fmt.Println("Goodbye!")
			return nil
		case edit.ErrInterrupted:
			// Ctrl-C discards the line; keep reading.
		default:
			return err
		}
	}
}
