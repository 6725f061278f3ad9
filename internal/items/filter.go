package items

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/payapp-dev/payapp/internal/model"
)

// MOHMode selects how material-on-hand lines are filtered.
type MOHMode int

const (
	// MOHAll keeps every line.
	MOHAll MOHMode = iota
	// MOHInstalledOnly drops material-on-hand lines.
	MOHInstalledOnly
	// MOHOnly keeps only material-on-hand lines.
	MOHOnly
)

// ParseMOHMode maps the CLI filter names to a mode. Unknown names keep
// everything.
func ParseMOHMode(s string) MOHMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "installed":
		return MOHInstalledOnly
	case "moh":
		return MOHOnly
	default:
		return MOHAll
	}
}

// Filter narrows a computed item set for display and export.
type Filter struct {
	MOH    MOHMode
	Search string          // case-insensitive substring of description
	MinPct decimal.Decimal // keep rows with pct_complete >= MinPct
}

// Apply returns the items passing the filter, in input order.
func Apply(computed []model.ComputedItem, f Filter) []model.ComputedItem {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []model.ComputedItem
	for _, ci := range computed {
		switch f.MOH {
		case MOHInstalledOnly:
			if ci.IsMOH() {
				continue
			}
		case MOHOnly:
			if !ci.IsMOH() {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(ci.Description), search) {
			continue
		}
		if ci.PctComplete.LessThan(f.MinPct) {
			continue
		}
		out = append(out, ci)
	}
	return out
}
