package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"
	"github.com/spf13/cobra"
	semgraph "github.com/vilterp/semgraph/pkg"
	"github.com/vilterp/semgraph/pkg/command"
)

func shellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run statements against the data file interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, logger, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer store.Close()
			return runShell(store, cfg.HistoryFile)
		},
	}
}

func runShell(store *semgraph.Store, historyFile string) error {
	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("semgraph shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = fmt.Sprintf("%s> ", store.Path())
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			if isInputTty {
				fmt.Println("bye!")
			}
			return nil
		}

		line = strings.Trim(line, "\t ")
		if len(line) == 0 {
			continue
		}
		if line == `\h` {
			printHelp()
			continue
		}

		output, err := command.Exec(store, line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if output != "" {
			fmt.Println(output)
		}
	}
}

func printHelp() {
	fmt.Println(`\h	help`)
	fmt.Println(`names that are keywords must be quoted: CREATE CLASS "Instance"`)
	fmt.Println(`a reference can be written KIND <id> or KIND:<id>`)
	fmt.Println(`CREATE CLASS <name>`)
	fmt.Println(`CREATE PROPERTY <name> ABSTRACT|INSTANCE`)
	fmt.Println(`CREATE INSTANCE <name> [OF <class id>]`)
	fmt.Println(`CREATE TERMINAL <value> <unit>`)
	fmt.Println(`ASSERT CLASS|INSTANCE <id> <property id> [CLASS|TERMINAL <id>]`)
	fmt.Println(`GET|DELETE CLASS|PROPERTY|INSTANCE|TERMINAL|TRIPLE <id>`)
	fmt.Println(`DESCRIBE INSTANCE <id>`)
	fmt.Println(`RESOLVE TRIPLE <id>`)
	fmt.Println(`LIST CLASSES|PROPERTIES|TERMINALS`)
	fmt.Println(`LIST INSTANCES [OF <class id>]`)
	fmt.Println(`LIST TRIPLES [ABOUT CLASS|INSTANCE <id>]`)
}
