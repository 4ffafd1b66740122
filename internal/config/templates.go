package config

import (
	"fmt"
	"os"
)

func Template() string {
	return vdfctlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(vdfctlTemplate), 0o600)
}

const vdfctlTemplate = `# Catalog files read by "vdfctl app" and "vdfctl pkg".
app_path = "appinfo.vdf"
package_path = "packageinfo.vdf"

# text | yaml | json | msgpack | cbor
format = "text"

# trace | debug | info | warn | error | off
log_level = "warn"

# Decode limits for untrusted input.
max_depth = 256
max_string_bytes = 4194304
`
