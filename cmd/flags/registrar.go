package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to skein's configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD\n  2. $HOME/.config\n  3. /etc/skein/")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "SKEINCFG_",
		"Prefix for the environment variables to consider for\nloading configuration from")
	cmd.PersistentFlags().Bool(SkipAllSecurityEnforcement, false,
		"Disables enforcement of all secure configurations entirely.\n"+
			"Effectively it enables all the --insecure-skip-*-enforcement flags below.")
	cmd.PersistentFlags().Bool(SkipAllTLSEnforcement, false,
		"Disables enforcement of TLS for every in- and outbound connection.\n"+
			"Effectively it enables all the --insecure-skip-*-tls-enforcement flags.")
	cmd.PersistentFlags().Bool(SkipIngressTLSEnforcement, false,
		"Disables enforcement of TLS configuration for the api and\nmanagement services.")
	cmd.PersistentFlags().Bool(SkipEgressTLSEnforcement, false,
		"Disables enforcement of TLS while downloading pattern sets\nfrom the configured endpoints.")
	cmd.PersistentFlags().Bool(SkipSecureTrustedProxiesEnforcement, false,
		"Disables enforcement of secure configuration of the trusted\nproxies.")
}
