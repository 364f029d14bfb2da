package export

import (
	"fmt"
	"strings"

	"housingready/internal/utils"
	"housingready/pkg/types"
)

type HousedFilter string

const (
	HousedAll HousedFilter = "all"
	HousedYes HousedFilter = "housed"
	HousedNo  HousedFilter = "not-housed"
)

// Filter narrows a client list the same way the client table does: a
// case-insensitive search over name, clarity id and outreach worker, and
// an optional housed filter.
type Filter struct {
	Search string       `form:"search"`
	Housed HousedFilter `form:"housed"`
}

func (f Filter) Validate() error {
	switch f.Housed {
	case "", HousedAll, HousedYes, HousedNo:
		return nil
	}
	return types.ValidationError("housed must be one of all, housed, not-housed")
}

func (f Filter) Apply(clients []*types.Client) []*types.Client {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]*types.Client, 0, len(clients))
	for _, c := range clients {
		if term != "" && !matchesSearch(c, term) {
			continue
		}

		switch f.Housed {
		case HousedYes:
			if !c.Housed {
				continue
			}
		case HousedNo:
			if c.Housed {
				continue
			}
		}

		out = append(out, c)
	}

	return out
}

func matchesSearch(c *types.Client, term string) bool {
	for _, field := range []string{c.Name, utils.PtrString(c.ClarityID), utils.PtrString(c.OutreachWorker)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (f Filter) String() string {
	return fmt.Sprintf("search=%q housed=%s", f.Search, f.Housed)
}
