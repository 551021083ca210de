package calibration

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// CurrentProfileVersion is bumped when the profile layout changes.
	CurrentProfileVersion = 1
	// DefaultProfileFileName is the file name of the profile in the home
	// directory.
	DefaultProfileFileName = ".picalc_calibration.yaml"
)

// CalibrationProfile records the fastest pool size measured on one machine.
// It is only valid on the hardware it was measured on.
type CalibrationProfile struct {
	ProfileVersion  int       `yaml:"profile_version"`
	CalibratedAt    time.Time `yaml:"calibrated_at"`
	NumCPU          int       `yaml:"num_cpu"`
	GOARCH          string    `yaml:"goarch"`
	GOOS            string    `yaml:"goos"`
	GoVersion       string    `yaml:"go_version"`
	WordSize        int       `yaml:"word_size"`
	OptimalWorkers  int       `yaml:"optimal_workers"`
	CalibrationN    uint64    `yaml:"calibration_n"`
	CalibrationTime string    `yaml:"calibration_time"`
}

// NewProfile returns a profile stamped with the current hardware and time.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
	}
}

// IsValid reports whether the profile was measured on this hardware with the
// current layout.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63) &&
		p.OptimalWorkers > 0
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

func (p *CalibrationProfile) String() string {
	return fmt.Sprintf("CalibrationProfile{workers=%d, cpus=%d, %s/%s, go=%s, n=%d, calibrated=%s}",
		p.OptimalWorkers, p.NumCPU, p.GOOS, p.GOARCH, p.GoVersion, p.CalibrationN,
		p.CalibratedAt.Format(time.RFC3339))
}

// SaveProfile writes the profile as YAML, creating parent directories.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path. When it is missing or
// unreadable, a fresh profile is returned and loaded is false.
func LoadOrCreateProfile(path string) (profile *CalibrationProfile, loaded bool) {
	p, err := loadProfile(path)
	if err != nil {
		return NewProfile(), false
	}
	return p, true
}

// LoadValidProfile loads the profile at path and returns it only when it is
// valid for this machine and younger than maxAge.
func LoadValidProfile(path string, maxAge time.Duration) (*CalibrationProfile, bool) {
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() || p.IsStale(maxAge) {
		return nil, false
	}
	return p, true
}

// GetDefaultProfilePath returns the profile path in the user's home
// directory, or in the working directory when there is none.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}
