package tasks

import (
	"fmt"
	"strings"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Name identifies a task.
type Name string

const (
	// General dumps the parameters and saves the final field of an empty
	// cell and of the structure together with the permittivity map.
	General Name = "general"
	// LineProfile samples the line-averaged field over the run window.
	LineProfile Name = "line_profile"
	// Enhancement computes the field gain of the antennas.
	Enhancement Name = "enhancement"
)

// DefaultOrder is the sequence run when no task is named.
var DefaultOrder = []Name{General, LineProfile, Enhancement}

// ParseNames splits a comma separated task list. An empty list selects
// DefaultOrder.
func ParseNames(list string) ([]Name, error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return append([]Name(nil), DefaultOrder...), nil
	}
	var out []Name
	for _, raw := range strings.Split(list, ",") {
		n := Name(strings.ToLower(strings.TrimSpace(raw)))
		if n == "" {
			continue
		}
		if !n.Known() {
			return nil, &types.ConfigError{Field: "tasks", Reason: fmt.Sprintf("unknown task %q", raw)}
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, &types.ConfigError{Field: "tasks", Reason: "no task selected"}
	}
	return out, nil
}

// Known reports whether n names a task.
func (n Name) Known() bool {
	for _, k := range DefaultOrder {
		if n == k {
			return true
		}
	}
	return false
}
