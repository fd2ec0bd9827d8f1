package systems

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/automoto/enemyai/config"
	"github.com/quasilyte/gdata"
)

// RunStats summarises a headless run for comparison with the next one.
type RunStats struct {
	Arena   string  `json:"arena"`
	Ticks   uint64  `json:"ticks"`
	Elapsed float64 `json:"elapsed"`
	Spawned int     `json:"spawned"`
	Attacks int     `json:"attacks"`
	Deaths  int     `json:"deaths"`
}

const runStatsKey = "last_run"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data directory for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	return nil
}

func profileKey(name string) string {
	return "profile_" + name
}

// SaveProfile stores the current tuning under name.
func SaveProfile(name string) error {
	if gdataManager == nil {
		return nil
	}
	data, err := config.Marshal()
	if err != nil {
		return fmt.Errorf("serialize profile %s: %w", name, err)
	}
	if err := gdataManager.SaveItem(profileKey(name), data); err != nil {
		return fmt.Errorf("save profile %s: %w", name, err)
	}
	return nil
}

// LoadProfile applies the tuning stored under name. It reports false when no
// such profile has been saved.
func LoadProfile(name string) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(profileKey(name))
	if err != nil {
		slog.Warn("could not load profile", "profile", name, "err", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := config.Apply(data); err != nil {
		return false, fmt.Errorf("apply profile %s: %w", name, err)
	}
	return true, nil
}

// SaveRunStats records the summary of the latest run.
func SaveRunStats(s RunStats) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize run stats: %w", err)
	}
	if err := gdataManager.SaveItem(runStatsKey, data); err != nil {
		return fmt.Errorf("save run stats: %w", err)
	}
	return nil
}

// LoadRunStats returns the summary of the previous run, or nil if there is none.
func LoadRunStats() (*RunStats, error) {
	if gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem(runStatsKey)
	if err != nil {
		slog.Warn("could not load run stats", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	var s RunStats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse run stats: %w", err)
	}
	return &s, nil
}
