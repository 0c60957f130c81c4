package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var referencePattern = regexp.MustCompile(`^[A-Z0-9]{2}\d{4}-[A-Z0-9]{8}$`)

func TestNewReferenceNumber_Pattern(t *testing.T) {
	ref := NewReferenceNumber("Summer Music Festival")

	assert.Regexp(t, referencePattern, ref)
	assert.Equal(t, "SU", ref[:2])
}

func TestNewReferenceNumber_FallbackPrefix(t *testing.T) {
	ref := NewReferenceNumber("")

	assert.Regexp(t, referencePattern, ref)
	assert.Equal(t, "EV", ref[:2])
}

func TestNewReferenceNumber_Random(t *testing.T) {
	a := NewReferenceNumber("Concert")
	b := NewReferenceNumber("Concert")

	// not a uniqueness guarantee, but two consecutive tokens matching
	// would mean the random source is broken
	assert.NotEqual(t, a, b)
}
