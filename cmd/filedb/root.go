package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/vinicius-lino-figueiredo/filedb"
	"github.com/vinicius-lino-figueiredo/filedb/adapter/config"
)

// version is replaced at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:   "filedb",
		Short: "Interactive shell for filedb databases",
		Long: `filedb opens an interactive shell to manage file-backed databases,
their collections and documents.

Databases and logs are kept in the directories named in engine.config.json,
which is created beside the executable on first run. Use /config to change
them; changes apply on the next start.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []config.Option
			if configDir != "" {
				opts = append(opts, config.WithDir(configDir))
			}
			store, err := config.NewStore(opts...)
			if err != nil {
				return err
			}
			engine, err := filedb.New(filedb.WithConfigStore(store))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return err
			}

			rl, err := newReadline()
			if err != nil {
				return err
			}
			defer rl.Close()

			sh := NewShell(engine, store, &readlinePrompter{rl: rl}, cmd.OutOrStdout())
			return sh.Run(cmd.Context())
		},
	}
	root.Flags().StringVar(&configDir, "config-dir", "", "Directory holding "+config.FileName+" (default: executable directory)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the filedb version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "filedb", version)
		},
	})
	return root
}

func newReadline() (*readline.Instance, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		items = append(items, readline.PcItem(c.name))
	}
	return readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         historyFile(),
		AutoComplete:        readline.NewPrefixCompleter(items...),
		InterruptPrompt:     "^C",
		EOFPrompt:           "/q",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".filedb_history")
}

func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
