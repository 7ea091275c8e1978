// Package hypermedia derives the navigable relation set of a resource
// representation from the entity snapshot, its moderation status and the
// caller's identity. Relations are capability gated: a relation appears only
// when the caller is currently entitled to invoke it, recomputed per request.
// Building links never touches storage.
package hypermedia

import (
	"fmt"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
)

const basePath = "/api/v1"

func link(method, path string, args ...any) domain.Link {
	return domain.Link{Href: fmt.Sprintf(path, args...), Method: method}
}

// RecipeLinks builds the control map for a single recipe. The caller must
// already have passed the visibility check for the recipe's status.
func RecipeLinks(r *entities.Recipe, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/recipes/%s", basePath, r.ID)
	links := domain.Links{
		"self":       link("GET", self),
		"collection": link("GET", "%s/recipes", basePath),
		"owner":      link("GET", "%s/users/%s", basePath, r.UserID),
	}

	// Sub-resources are visible to whoever can see the recipe itself.
	links["ingredients"] = link("GET", "%s/ingredients", self)
	links["cuisines"] = link("GET", "%s/cuisines", self)
	links["nutrition"] = link("GET", "%s/nutrition", self)
	links["reviews"] = link("GET", "%s/reviews", self)

	if id.CanModify(r.UserID) {
		links["edit"] = link("PUT", self)
		links["delete"] = link("DELETE", self)
		links["add-ingredient"] = link("POST", "%s/ingredients", self)
		links["add-cuisine"] = link("POST", "%s/cuisines", self)
		links["add-nutrition"] = link("POST", "%s/nutrition", self)
		links["upload-image"] = link("POST", "%s/image", self)
	}

	if !id.IsAnonymous() && r.Status == moderation.StatusApproved {
		links["add-review"] = link("POST", "%s/reviews", self)
	}

	addModerationLinks(links, self, r.Status, id)
	return links
}

// RecipeCollectionLinks builds the controls of the recipe listing.
func RecipeCollectionLinks(id auth.Identity) domain.Links {
	links := domain.Links{
		"self": link("GET", "%s/recipes", basePath),
	}
	if !id.IsAnonymous() {
		links["create"] = link("POST", "%s/recipes", basePath)
	}
	return links
}

// IngredientLinks builds the control map for a reference ingredient.
// Reference entities carry no owner: any authenticated user may propose an
// edit (which voids an approval), while delete and moderation stay with
// moderators.
func IngredientLinks(i *entities.Ingredient, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/ingredients/%s", basePath, i.ID)
	links := referenceLinks(self, fmt.Sprintf("%s/ingredients", basePath), i.Status, id)
	links["recipes"] = link("GET", "%s/recipes?ingredient_id=%s", basePath, i.ID)
	return links
}

func CuisineLinks(c *entities.Cuisine, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/cuisines/%s", basePath, c.ID)
	links := referenceLinks(self, fmt.Sprintf("%s/cuisines", basePath), c.Status, id)
	links["recipes"] = link("GET", "%s/recipes?cuisine_id=%s", basePath, c.ID)
	return links
}

func NutritionFactLinks(n *entities.NutritionFact, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/nutrition-facts/%s", basePath, n.ID)
	return referenceLinks(self, fmt.Sprintf("%s/nutrition-facts", basePath), n.Status, id)
}

func referenceLinks(self, collection, status string, id auth.Identity) domain.Links {
	links := domain.Links{
		"self":       link("GET", self),
		"collection": link("GET", collection),
	}
	if !id.IsAnonymous() {
		links["edit"] = link("PUT", self)
	}
	if id.IsModerator() {
		links["delete"] = link("DELETE", self)
	}
	addModerationLinks(links, self, status, id)
	return links
}

// ReviewLinks builds the control map for a review.
func ReviewLinks(r *entities.Review, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/reviews/%s", basePath, r.ID)
	links := domain.Links{
		"self":   link("GET", self),
		"recipe": link("GET", "%s/recipes/%s", basePath, r.RecipeID),
		"author": link("GET", "%s/users/%s", basePath, r.UserID),
	}
	if id.CanModify(r.UserID) {
		links["edit"] = link("PUT", self)
		links["delete"] = link("DELETE", self)
	}
	return links
}

// UserLinks builds the control map for a user profile.
func UserLinks(u *entities.User, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/users/%s", basePath, u.ID)
	links := domain.Links{
		"self":    link("GET", self),
		"recipes": link("GET", "%s/recipes?owner_id=%s", basePath, u.ID),
	}
	if id.CanModify(u.ID) {
		links["edit"] = link("PUT", self)
		links["delete"] = link("DELETE", self)
	}
	return links
}

// RecipeIngredientLinks builds the control map for one quantity link of a
// recipe. recipeOwner is the owning recipe's owner.
func RecipeIngredientLinks(q *entities.RecipeIngredientQty, recipeOwner uuid.UUID, id auth.Identity) domain.Links {
	self := fmt.Sprintf("%s/recipes/%s/ingredients/%s", basePath, q.RecipeID, q.IngredientID)
	links := domain.Links{
		"self":       link("GET", self),
		"recipe":     link("GET", "%s/recipes/%s", basePath, q.RecipeID),
		"ingredient": link("GET", "%s/ingredients/%s", basePath, q.IngredientID),
	}
	if id.CanModify(recipeOwner) {
		links["edit"] = link("PUT", self)
		links["delete"] = link("DELETE", self)
	}
	return links
}

// addModerationLinks advertises the decisions a moderator can still take:
// approve is offered until the entity is approved, reject until rejected.
func addModerationLinks(links domain.Links, self, status string, id auth.Identity) {
	if !id.IsModerator() {
		return
	}
	if status != moderation.StatusApproved {
		links["approve"] = link("POST", "%s/approve", self)
	}
	if status != moderation.StatusRejected {
		links["reject"] = link("POST", "%s/reject", self)
	}
}
