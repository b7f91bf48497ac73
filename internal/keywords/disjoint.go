package keywords

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// CategoryOverlapError reports literals shared by two lists.
type CategoryOverlapError struct {
	Left          string
	Right         string
	LeftLiterals  []string
	RightLiterals []string
	Overlap       []string
}

func (e *CategoryOverlapError) Error() string {
	detail, _ := json.MarshalIndent(struct {
		Left    []string `json:"left"`
		Right   []string `json:"right"`
		Overlap []string `json:"overlap"`
	}{e.LeftLiterals, e.RightLiterals, e.Overlap}, "", "    ")
	return fmt.Sprintf("categories %s and %s overlap on %q\n%s", e.Left, e.Right, e.Overlap, detail)
}

// CheckDisjoint intersects every pair of lists. Each non-empty intersection
// is reported as a *CategoryOverlapError; all of them are joined.
func CheckDisjoint(lists []List) error {
	sets := make([]map[string]struct{}, len(lists))
	for i, l := range lists {
		sets[i] = make(map[string]struct{}, len(l.Literals))
		for _, lit := range l.Literals {
			sets[i][lit] = struct{}{}
		}
	}
	var errs []error
	for i := 0; i < len(lists); i++ {
		for j := i + 1; j < len(lists); j++ {
			var overlap []string
			for lit := range sets[i] {
				if _, ok := sets[j][lit]; ok {
					overlap = append(overlap, lit)
				}
			}
			if len(overlap) == 0 {
				continue
			}
			sort.Strings(overlap)
			errs = append(errs, &CategoryOverlapError{
				Left:          lists[i].Name,
				Right:         lists[j].Name,
				LeftLiterals:  sortedCopy(lists[i].Literals),
				RightLiterals: sortedCopy(lists[j].Literals),
				Overlap:       overlap,
			})
		}
	}
	return errors.Join(errs...)
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
