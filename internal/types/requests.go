package types

import "strings"

// RecommendRequest is the body of POST /api/recipes/recommend.
// Ingredients is a pointer so an absent field can be told apart from an
// empty array; elements are pointers so a null entry can be rejected.
type RecommendRequest struct {
	Ingredients *[]*string `json:"ingredients"`
}

// IngredientValues returns the ingredients trimmed, with blank entries
// dropped. ok is false when the field is absent or null, or holds a null
// element.
func (r RecommendRequest) IngredientValues() (values []string, ok bool) {
	if r.Ingredients == nil {
		return nil, false
	}
	values = make([]string, 0, len(*r.Ingredients))
	for _, item := range *r.Ingredients {
		if item == nil {
			return nil, false
		}
		if v := strings.TrimSpace(*item); v != "" {
			values = append(values, v)
		}
	}
	return values, true
}

// LoginRequest is the body of POST /api/auth/login. Username is the only
// accepted identifier; Email is decoded so a request carrying it instead can
// be rejected with a precise message.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email,omitempty"`
}

// Credential returns the credential pair forwarded upstream
func (r LoginRequest) Credential() Credential {
	return Credential{Username: r.Username, Password: r.Password}
}
