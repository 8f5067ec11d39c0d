package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Email validation is a syntax check only. A well-formed address must pass
// even when its domain has no DNS records, and validating must never put a
// network lookup on the request path.
func TestCreateRequestEmailSyntaxOnly(t *testing.T) {
	req := CreateRequest{
		Name:  "Nguyen Van A",
		Email: "someone@no-such-domain-zzqx.example",
	}
	require.NoError(t, req.Validate())

	req.Email = "not-an-email"
	assert.Error(t, req.Validate())

	req.Email = ""
	assert.NoError(t, req.Validate(), "email is optional")
}

func TestUpdateRequestEmailSyntaxOnly(t *testing.T) {
	email := "someone@unregistered-host.invalid"
	req := UpdateRequest{Email: &email}
	assert.NoError(t, req.Validate())

	bad := "missing-at-sign"
	req.Email = &bad
	assert.Error(t, req.Validate())
}
