package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageError_Error(t *testing.T) {
	err := &UsageError{
		Identifier: "unimplemented",
		Reason:     "mailer has not been set up yet",
	}

	assert.Equal(t, "unimplemented: mailer has not been set up yet", err.Error())
}

func TestUsageError_FieldsInspectable(t *testing.T) {
	err := &UsageError{
		Identifier:     "unimplemented",
		Reason:         "mailer has not been set up yet",
		PossibleCauses: []string{"no mail configuration provided"},
		SuggestedFixes: []string{"configure an SMTP mailer"},
	}

	var usage *UsageError
	assert.ErrorAs(t, error(err), &usage)
	assert.Equal(t, "unimplemented", usage.Identifier)
	assert.NotEmpty(t, usage.PossibleCauses)
	assert.NotEmpty(t, usage.SuggestedFixes)
}
