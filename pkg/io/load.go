package io

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/firewallviz/pkg/rules"
)

// LoadRules resolves the rule list for a run.
//
// If path does not exist, the example rules are written there first, so
// the returned rules always match the file on disk. A file that cannot be
// decoded is reported through logger and yields an empty list with a nil
// error; callers treat an empty list as nothing to render. Filesystem
// failures are returned.
//
// A nil logger discards messages.
func LoadRules(path string, logger *log.Logger) ([]rules.Rule, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("rule file not found, writing example rules", "path", path)
		if err := ExportRules(path, rules.Examples()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rs, err := ReadRules(f, FormatFromPath(path))
	if err != nil {
		logger.Error("invalid rule file", "path", path, "err", err)
		return []rules.Rule{}, nil
	}

	logger.Debug("loaded rules", "path", path, "count", len(rs))
	return rs, nil
}
