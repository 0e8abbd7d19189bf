package namesapi

import (
	"slices"
	"strings"

	"github.com/mrlokans/nameboard/internal/entities"
)

// SortByFirstName orders names case-insensitively by first name. The sort is
// stable, so names that compare equal keep their previous relative order.
func SortByFirstName(names []entities.Name) {
	slices.SortStableFunc(names, func(a, b entities.Name) int {
		return strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName))
	})
}
