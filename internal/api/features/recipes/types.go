package recipes

import "github.com/crumbwork/ladle/internal/recipe"

// ResultsResponse is the envelope for listing and search responses.
type ResultsResponse struct {
	Results []recipe.Recipe `json:"results"`
}
