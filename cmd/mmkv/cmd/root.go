package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/mmkv/internal/config"
	"github.com/arloliu/mmkv/internal/log"
)

const (
	cliName        = "mmkv"
	cliDescription = "Decrypt and inspect MMKV key-value store files"
)

type globalFlags struct {
	ConfigFile string
	LogLevel   string

	cfg *config.Config
}

// NewRootCommand builds the mmkv command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `mmkv reads MMKV store files. Encrypted stores are verified against their
".crc" sidecar and decrypted with AES-128-CFB; plain stores can be dumped as a
table or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.ConfigFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = g.LogLevel
			}
			log.SetLogWriter(cmd.ErrOrStderr())
			log.SetLevel(cfg.LogLevel)
			g.cfg = cfg

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newDecryptCommand(g),
		newDumpCommand(g),
	)

	return rootCmd
}

// Execute runs the command line tool and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return 1
	}

	return 0
}

func printError(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	if out == os.Stderr {
		_, _ = color.New(color.FgRed).Fprintln(out, err)
		return
	}
	_, _ = fmt.Fprintln(out, err)
}
