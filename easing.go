package tweenjump

import (
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// EasingPair holds the outbound and inbound transforms of one easing family.
// A higher-to-lower motion rises with Out (fast start, slow apex) and falls
// with In (slow apex, fast landing).
type EasingPair struct {
	Out ease.TweenFunc
	In  ease.TweenFunc
}

// Easing families.
var (
	Linear    = EasingPair{Out: ease.Linear, In: ease.Linear}
	Quadratic = EasingPair{Out: ease.OutQuad, In: ease.InQuad}
	Cubic     = EasingPair{Out: ease.OutCubic, In: ease.InCubic}
	Quartic   = EasingPair{Out: ease.OutQuart, In: ease.InQuart}
	Quintic   = EasingPair{Out: ease.OutQuint, In: ease.InQuint}
	Sine      = EasingPair{Out: ease.OutSine, In: ease.InSine}
	Expo      = EasingPair{Out: ease.OutExpo, In: ease.InExpo}
	Circular  = EasingPair{Out: ease.OutCirc, In: ease.InCirc}
	Back      = EasingPair{Out: ease.OutBack, In: ease.InBack}
	Bounce    = EasingPair{Out: ease.OutBounce, In: ease.InBounce}
	Elastic   = EasingPair{Out: ease.OutElastic, In: ease.InElastic}
)

var easingFamilies = map[string]EasingPair{
	"linear":    Linear,
	"quadratic": Quadratic,
	"quad":      Quadratic,
	"cubic":     Cubic,
	"quartic":   Quartic,
	"quart":     Quartic,
	"quintic":   Quintic,
	"quint":     Quintic,
	"sine":      Sine,
	"expo":      Expo,
	"circular":  Circular,
	"circ":      Circular,
	"back":      Back,
	"bounce":    Bounce,
	"elastic":   Elastic,
}

// EasingByName resolves a family name such as "Quadratic" or "quad".
// Matching ignores case and surrounding space.
func EasingByName(name string) (EasingPair, bool) {
	p, ok := easingFamilies[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// EasingNames returns the accepted family names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easingFamilies))
	for k := range easingFamilies {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
