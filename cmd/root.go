package cmd

import (
	"context"

	"github.com/bnema/owdragon-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	app := newApp(v)

	rootCmd := &cobra.Command{
		Use:           "owd",
		Short:         "OW Dragon CLI (owd): feed dragons and clear missions across accounts",
		Long:          "owd authenticates every configured OW Dragon account, feeds each dragon once per feed window and completes pending social and daily missions until interrupted.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: ./owd.toml or $XDG_CONFIG_HOME/owd/owd.toml)")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	flags.String("data", "data.txt", "File with one Telegram init data string per line")
	flags.String("tokens", "token.txt", "File with one bearer token per line")
	flags.String("accounts", "", "Optional accounts.toml with named accounts")

	for key, flag := range map[string]string{
		config.KeyConfigFile:   "config",
		config.KeyLogLevel:     "log-level",
		config.KeyInitDataFile: "data",
		config.KeyTokenFile:    "tokens",
		config.KeyAccountsFile: "accounts",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newStatusCmd(app),
		newAccountsCmd(app),
	)

	return rootCmd
}
