package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Recipe defines a crafting rule. Tools must be held but are not
// consumed; ingredients are consumed; results are produced.
type Recipe struct {
	Tools       map[string]int `json:"tools,omitempty"`
	Ingredients map[string]int `json:"ingredients,omitempty"`
	Results     map[string]int `json:"results"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Recipe) Validate() error {
	el := errors.NewErrorList()

	if len(r.Results) == 0 {
		el.Add(fmt.Errorf("at least one result is required"))
	}

	checkCounts := func(label string, m map[string]int) {
		for id, n := range m {
			if n < 1 {
				el.Add(fmt.Errorf("%s %s: count must be positive", label, id))
			}
		}
	}
	checkCounts("tool", r.Tools)
	checkCounts("ingredient", r.Ingredients)
	checkCounts("result", r.Results)

	return el.Err()
}
