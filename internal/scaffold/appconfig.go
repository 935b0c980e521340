package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Features are the optional capabilities toggled at install time and
// recorded in the generated configuration module.
type Features struct {
	Database bool
	Auth     bool
	Docker   bool
}

// WriteAppConfig writes chitty.config.js, the module the generated app
// imports at startup. Apps are listed in install order.
func WriteAppConfig(dir string, apps []string, features Features) error {
	var b strings.Builder
	b.WriteString("// Generated by chitty. Runtime configuration for this project.\n")
	b.WriteString("export default {\n")
	b.WriteString("  framework: 'chittyos',\n")
	fmt.Fprintf(&b, "  version: '%s',\n", frameworkVersion)
	fmt.Fprintf(&b, "  apps: [%s],\n", quoteList(apps))
	b.WriteString("  features: {\n")
	fmt.Fprintf(&b, "    database: %t,\n", features.Database)
	fmt.Fprintf(&b, "    authentication: %t,\n", features.Auth)
	fmt.Fprintf(&b, "    docker: %t,\n", features.Docker)
	b.WriteString("  },\n")
	b.WriteString("  api: {\n")
	b.WriteString("    baseUrl: 'https://api.chitty.cc',\n")
	b.WriteString("    timeout: 30000,\n")
	b.WriteString("  },\n")
	b.WriteString("  ui: {\n")
	b.WriteString("    theme: 'chitty',\n")
	b.WriteString("    components: '@chittyos/ui',\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")

	path := filepath.Join(dir, "chitty.config.js")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func quoteList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "'" + it + "'"
	}
	return strings.Join(quoted, ", ")
}
