package moderation

// Substantive fields affect public-facing content: changing one voids an
// existing approval. The classification is an explicit list per entity so
// the reset rule stays auditable, instead of being inferred from change
// detection.
var substantiveFields = map[string]map[string]bool{
	"recipe": {
		"title":            true,
		"description":      true,
		"steps":            true,
		"preparation_time": true,
		"cooking_time":     true,
		"serving":          true,
	},
	"ingredient": {
		"name":        true,
		"description": true,
	},
	"cuisine": {
		"name":        true,
		"description": true,
	},
	"nutrition_fact": {
		"name":     true,
		"benefits": true,
	},
}

// IsSubstantive reports whether changing the named field of the named entity
// kind invalidates an approval. Unknown fields are metadata and never reset
// the state.
func IsSubstantive(entity string, field string) bool {
	return substantiveFields[entity][field]
}

// AnySubstantive reports whether any of the changed fields is substantive.
func AnySubstantive(entity string, fields []string) bool {
	for _, f := range fields {
		if IsSubstantive(entity, f) {
			return true
		}
	}
	return false
}
