package auth

import (
	"testing"

	"cookbook-backend/domain"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentityRoles(t *testing.T) {
	anon := Anonymous()
	assert.True(t, anon.IsAnonymous())
	assert.False(t, anon.IsModerator())

	regular := Regular(uuid.New())
	assert.False(t, regular.IsAnonymous())
	assert.False(t, regular.IsModerator())

	mod := Moderator(uuid.New())
	assert.False(t, mod.IsAnonymous())
	assert.True(t, mod.IsModerator())
}

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.True(t, Regular(owner).CanModify(owner))
	assert.False(t, Regular(other).CanModify(owner))
	assert.True(t, Moderator(other).CanModify(owner))
	assert.False(t, Anonymous().CanModify(owner))
}

func TestCanSee(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		viewer Identity
		status string
		want   bool
	}{
		{name: "anyone sees approved", viewer: Anonymous(), status: moderation.StatusApproved, want: true},
		{name: "anonymous cannot see pending", viewer: Anonymous(), status: moderation.StatusPending, want: false},
		{name: "owner sees own pending", viewer: Regular(owner), status: moderation.StatusPending, want: true},
		{name: "owner sees own rejected", viewer: Regular(owner), status: moderation.StatusRejected, want: true},
		{name: "other user cannot see pending", viewer: Regular(other), status: moderation.StatusPending, want: false},
		{name: "moderator sees pending", viewer: Moderator(other), status: moderation.StatusPending, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.viewer.CanSee(tt.status, owner))
		})
	}
}

func TestRequireAuthenticated(t *testing.T) {
	assert.ErrorIs(t, Anonymous().RequireAuthenticated(), domain.ErrUnauthorized)
	assert.NoError(t, Regular(uuid.New()).RequireAuthenticated())
}

func TestRequireModify(t *testing.T) {
	owner := uuid.New()

	assert.ErrorIs(t, Anonymous().RequireModify(owner), domain.ErrUnauthorized)
	assert.ErrorIs(t, Regular(uuid.New()).RequireModify(owner), domain.ErrForbidden)
	assert.NoError(t, Regular(owner).RequireModify(owner))
	assert.NoError(t, Moderator(uuid.New()).RequireModify(owner))
}

func TestRequireModerator(t *testing.T) {
	assert.ErrorIs(t, Anonymous().RequireModerator(), domain.ErrUnauthorized)
	assert.ErrorIs(t, Regular(uuid.New()).RequireModerator(), domain.ErrForbidden)
	assert.NoError(t, Moderator(uuid.New()).RequireModerator())
}
