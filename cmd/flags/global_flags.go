package flags

const (
	Config                  = "config"
	EnvironmentConfigPrefix = "env-config-prefix"

	SkipAllSecurityEnforcement          = "insecure"
	SkipSecureTrustedProxiesEnforcement = "insecure-skip-secure-trusted-proxies-enforcement"
	SkipAllTLSEnforcement               = "insecure-skip-all-tls-enforcement"
	SkipIngressTLSEnforcement           = "insecure-skip-ingress-tls-enforcement"
	SkipEgressTLSEnforcement            = "insecure-skip-egress-tls-enforcement"
)

// nolint: gochecknoglobals
var InsecureFlags = []string{
	SkipAllSecurityEnforcement,
	SkipSecureTrustedProxiesEnforcement,
	SkipAllTLSEnforcement,
	SkipIngressTLSEnforcement,
	SkipEgressTLSEnforcement,
}
