package types

// DefaultServings is used when the caller omits servings
const DefaultServings = "1"

// PriceEstimateRequest represents the form body for a price estimate.
// Servings is forwarded verbatim and never validated as a number.
type PriceEstimateRequest struct {
	IngredientList string `form:"ingredientList"`
	Servings       string `form:"servings"`
}

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Messages returned in the error field of failed requests
const (
	MsgMissingAPIKey      = "API key is missing. Set SPOONACULAR_API_KEY in the environment."
	MsgMissingIngredients = "ingredientList is required."
	MsgUpstreamFailure    = "Failed to fetch data from Spoonacular."
	MsgUnexpected         = "An unexpected error occurred."
)
