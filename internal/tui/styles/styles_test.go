package styles

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	t.Run("BadgesAreDistinct", func(t *testing.T) {
		badges := map[string]interface{}{
			"past":     s.BadgePast.GetBackground(),
			"live":     s.BadgeLive.GetBackground(),
			"upcoming": s.BadgeUpcoming.GetBackground(),
			"tba":      s.BadgeTBA.GetBackground(),
		}
		seen := map[interface{}]string{}
		for name, bg := range badges {
			if other, ok := seen[bg]; ok {
				t.Errorf("expected distinct badge backgrounds but found '%s' and '%s' sharing one", name, other)
			}
			seen[bg] = name
		}
	})

	t.Run("Render", func(t *testing.T) {
		if got := s.BadgeLive.Render("Právě probíhá"); !strings.Contains(got, "Právě probíhá") {
			t.Errorf("expected badge to contain its label but found '%s'", got)
		}
		if got := s.LiveBanner.Render("LIVE"); !strings.Contains(got, "LIVE") {
			t.Errorf("expected banner to contain its label but found '%s'", got)
		}
	})
}
