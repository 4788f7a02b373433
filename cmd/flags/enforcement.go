package flags

import (
	"github.com/spf13/cobra"

	"github.com/ryndalv/skein/internal/config"
)

func EnforcementSettings(cmd *cobra.Command) config.EnforcementSettings {
	insecure, _ := cmd.Flags().GetBool(SkipAllSecurityEnforcement)
	insecureNotTLS, _ := cmd.Flags().GetBool(SkipAllTLSEnforcement)
	insecureNoTrustedProxies, _ := cmd.Flags().GetBool(SkipSecureTrustedProxiesEnforcement)
	insecureNoIngressTLS, _ := cmd.Flags().GetBool(SkipIngressTLSEnforcement)
	insecureNoEgressTLS, _ := cmd.Flags().GetBool(SkipEgressTLSEnforcement)

	if insecure {
		insecureNoTrustedProxies = true
		insecureNotTLS = true
	}

	if insecureNotTLS {
		insecureNoIngressTLS = true
		insecureNoEgressTLS = true
	}

	return config.EnforcementSettings{
		EnforceSecureTrustedProxies: !insecureNoTrustedProxies,
		EnforceIngressTLS:           !insecureNoIngressTLS,
		EnforceEgressTLS:            !insecureNoEgressTLS,
	}
}
