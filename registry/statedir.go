package registry

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// stateDirEnvVar overrides the default OS state directory (a
// caller-supplied WithStateDir still takes precedence over it), keeping
// tests and ephemeral environments from touching a real per-user state
// directory.
const stateDirEnvVar = "REDEFMT_STATE_DIR"

// ResolveStateDir picks the directory the registry's SQLite files live in,
// in order: explicit (from WithStateDir), then $REDEFMT_STATE_DIR, then the
// OS-conventional per-user state directory via adrg/xdg.
func ResolveStateDir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(stateDirEnvVar); v != "" {
		return v
	}
	return filepath.Join(xdg.StateHome, "deferfmt")
}
