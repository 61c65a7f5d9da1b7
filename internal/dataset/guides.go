package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// LoadGuideDB reads the externally authored matchup guide database. The
// file is optional; absence yields an empty database, not an error, since
// guides cover only a hand-picked subset of compositions.
func LoadGuideDB(path string) (models.GuideDB, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.GuideDB{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read guide db %s: %w", path, err)
	}

	var db models.GuideDB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parse guide db %s: %w", path, err)
	}
	return db, nil
}
