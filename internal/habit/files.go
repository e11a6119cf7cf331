package habit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/util"
)

// DefaultExportPath returns the conventional location for a new export
// file, under the user's documents directory.
func DefaultExportPath(now time.Time) string {
	name := fmt.Sprintf("%s%s.json", config.ExportFilePrefix, now.Format(config.ExportDateLayout))
	return filepath.Join(util.ReportsDir(config.AppName), "exports", name)
}

// WriteExportFile writes an export payload to path, creating parent
// directories as needed. Exports may hold personal data, so the file is
// not group or world readable.
func WriteExportFile(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// ReadExportFile reads raw export file contents for import.
func ReadExportFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
