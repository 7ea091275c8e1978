package moderation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	s := Submit()
	assert.Equal(t, StatusPending, s.Status)
	assert.Nil(t, s.ApproverID)
}

func TestApproveStampsModerator(t *testing.T) {
	mod := uuid.New()
	s := Approve(mod)
	assert.Equal(t, StatusApproved, s.Status)
	require.NotNil(t, s.ApproverID)
	assert.Equal(t, mod, *s.ApproverID)
}

func TestApproveRestampsOnRetry(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	s := Approve(first)
	s = Approve(second)

	assert.Equal(t, StatusApproved, s.Status)
	assert.Equal(t, second, *s.ApproverID)
}

func TestRejectAfterApproveReverses(t *testing.T) {
	mod := uuid.New()
	s := Approve(mod)
	s = Reject(mod)
	assert.Equal(t, StatusRejected, s.Status)
	assert.Equal(t, mod, *s.ApproverID)
}

func TestApplyEdit(t *testing.T) {
	mod := uuid.New()

	tests := []struct {
		name        string
		policy      Policy
		state       State
		substantive bool
		wantStatus  string
		wantErr     error
	}{
		{
			name:        "substantive edit of approved goes back to pending",
			policy:      DefaultPolicy,
			state:       Approve(mod),
			substantive: true,
			wantStatus:  StatusPending,
		},
		{
			name:        "metadata edit keeps approval",
			policy:      DefaultPolicy,
			state:       Approve(mod),
			substantive: false,
			wantStatus:  StatusApproved,
		},
		{
			name:        "edit while pending stays pending",
			policy:      DefaultPolicy,
			state:       Submit(),
			substantive: true,
			wantStatus:  StatusPending,
		},
		{
			name:        "rejected entity resubmits under default policy",
			policy:      DefaultPolicy,
			state:       Reject(mod),
			substantive: true,
			wantStatus:  StatusPending,
		},
		{
			name:        "rejected entity stays rejected when resubmission is off",
			policy:      Policy{AllowOwnerResubmit: false},
			state:       Reject(mod),
			substantive: true,
			wantStatus:  StatusRejected,
			wantErr:     ErrResubmitNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.ApplyEdit(tt.state, tt.substantive)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, got.Status)
			if got.Status == StatusPending {
				assert.Nil(t, got.ApproverID, "pending state must not carry an approver")
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusApproved))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("draft"))
	assert.False(t, ValidStatus(""))
}
