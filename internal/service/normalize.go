package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/pageza/recipeai/backend/internal/types"
)

// Separators used when a list field arrives flattened into one string
const (
	listSeparator        = ", "
	instructionSeparator = ". "
)

// remoteRecipe is a record as sent by the recommendation service
type remoteRecipe struct {
	ID           AttributeValue `json:"id"`
	Name         AttributeValue `json:"name"`
	Title        AttributeValue `json:"title"`
	Ingredients  AttributeValue `json:"ingredients"`
	Instructions AttributeValue `json:"instructions"`
	Tags         AttributeValue `json:"tags"`
}

func (r remoteRecipe) normalize(index int) types.Recipe {
	id := r.ID.String()
	if id == "" {
		id = "recipe-" + strconv.Itoa(index+1)
	}
	name := r.Name.String()
	if name == "" {
		name = r.Title.String()
	}
	return types.Recipe{
		ID:           id,
		Name:         name,
		Ingredients:  r.Ingredients.Strings(listSeparator),
		Instructions: r.Instructions.Strings(instructionSeparator),
		Tags:         r.Tags.Strings(listSeparator),
	}
}

// envelope covers the wrappers a record array may arrive in: a scan-style
// {"Items": [...]}, a {"recipes": [...]} object, or a proxy integration
// {"body": "<json>"}.
type envelope struct {
	Items   json.RawMessage `json:"Items"`
	Recipes json.RawMessage `json:"recipes"`
	Body    json.RawMessage `json:"body"`
}

var errNotRecordArray = errors.New("response is not an array of recipe records")

// NormalizeRecipes decodes a recommendation response body into normalized
// recipes. Field level problems never fail; only a body that does not hold a
// record array is an error.
func NormalizeRecipes(body []byte) ([]types.Recipe, error) {
	records, err := decodeRecords(body, 0)
	if err != nil {
		return nil, err
	}

	recipes := make([]types.Recipe, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		r := rec.normalize(i)
		r.ID = uniqueID(r.ID, seen)
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// uniqueID returns id, or id suffixed with -2, -3, ... when it is already
// taken, and marks the result as taken
func uniqueID(id string, seen map[string]bool) string {
	candidate := id
	for n := 2; seen[candidate]; n++ {
		candidate = id + "-" + strconv.Itoa(n)
	}
	seen[candidate] = true
	return candidate
}

func decodeRecords(body []byte, depth int) ([]remoteRecipe, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errNotRecordArray
	}

	switch body[0] {
	case '[':
		var records []remoteRecipe
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("failed to decode records: %w", err)
		}
		return records, nil
	case '{':
		if depth > 1 {
			return nil, errNotRecordArray
		}
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		switch {
		case len(env.Items) > 0:
			return decodeRecords(env.Items, depth+1)
		case len(env.Recipes) > 0:
			return decodeRecords(env.Recipes, depth+1)
		case len(env.Body) > 0:
			var inner string
			if err := json.Unmarshal(env.Body, &inner); err == nil {
				return decodeRecords([]byte(inner), depth+1)
			}
			return decodeRecords(env.Body, depth+1)
		}
	}
	return nil, errNotRecordArray
}
