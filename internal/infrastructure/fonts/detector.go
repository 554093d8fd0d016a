// Package fonts lists the font families installed on the system.
package fonts

import (
	"bufio"
	"context"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/logging"
)

// Detector implements port.FontLister using fontconfig's fc-list command.
type Detector struct {
	mu             sync.RWMutex
	cachedFonts    []string
	cachePopulated bool
}

// NewDetector creates a new font detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsAvailable returns true if fc-list command is available on the system.
func (*Detector) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// ListFontFamilies implements port.FontLister. Families are sorted and the
// result is cached for the lifetime of the detector.
func (d *Detector) ListFontFamilies(ctx context.Context) ([]string, error) {
	log := logging.FromContext(ctx)

	d.mu.RLock()
	if d.cachePopulated {
		fonts := d.cachedFonts
		d.mu.RUnlock()
		return fonts, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Double-check after acquiring write lock.
	if d.cachePopulated {
		return d.cachedFonts, nil
	}

	output, err := exec.CommandContext(ctx, "fc-list", ":", "family").Output()
	if err != nil {
		log.Debug().Err(err).Msg("failed to query system fonts")
		return nil, err
	}
	fonts, err := parseFamilies(string(output))
	if err != nil {
		return nil, err
	}

	d.cachedFonts = fonts
	d.cachePopulated = true
	log.Debug().Int("count", len(fonts)).Msg("cached system fonts")

	return fonts, nil
}

// parseFamilies reads fc-list output. A line may hold comma-separated
// aliases, e.g. "DejaVu Sans,DejaVu Sans Light".
func parseFamilies(output string) ([]string, error) {
	fontSet := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		for _, family := range strings.Split(scanner.Text(), ",") {
			family = strings.TrimSpace(family)
			if family != "" {
				fontSet[family] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	fonts := make([]string, 0, len(fontSet))
	for font := range fontSet {
		fonts = append(fonts, font)
	}
	sort.Strings(fonts)
	return fonts, nil
}

var _ port.FontLister = (*Detector)(nil)
