package moderation

import (
	"testing"

	"cookbook-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilter(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		moderator bool
		want      string
		wantErr   error
	}{
		{name: "empty defaults to approved", requested: "", want: StatusApproved},
		{name: "approved passes through", requested: StatusApproved, want: StatusApproved},
		{name: "all for moderator is unfiltered", requested: "all", moderator: true, want: ""},
		{name: "all for public is forbidden", requested: "all", wantErr: domain.ErrForbidden},
		{name: "pending for moderator", requested: StatusPending, moderator: true, want: StatusPending},
		{name: "pending for public is forbidden", requested: StatusPending, wantErr: domain.ErrForbidden},
		{name: "rejected for public is forbidden", requested: StatusRejected, wantErr: domain.ErrForbidden},
		{name: "garbage is a validation failure", requested: "draft", wantErr: domain.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListFilter(tt.requested, tt.moderator)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEditByModeratorBypassesResubmitPolicy(t *testing.T) {
	strict := Policy{AllowOwnerResubmit: false}
	rejected := Reject(uuid.New())

	_, err := strict.ApplyEditBy(rejected, true, false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := strict.ApplyEditBy(rejected, true, true)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestIsSubstantive(t *testing.T) {
	assert.True(t, IsSubstantive("recipe", "title"))
	assert.True(t, IsSubstantive("recipe", "serving"))
	assert.False(t, IsSubstantive("recipe", "image_url"))
	assert.True(t, IsSubstantive("ingredient", "name"))
	assert.True(t, IsSubstantive("nutrition_fact", "benefits"))
	assert.False(t, IsSubstantive("unknown", "name"))
}

func TestAnySubstantive(t *testing.T) {
	assert.False(t, AnySubstantive("recipe", nil))
	assert.False(t, AnySubstantive("recipe", []string{"image_url"}))
	assert.True(t, AnySubstantive("recipe", []string{"image_url", "steps"}))
}
