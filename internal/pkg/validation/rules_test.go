package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasInstitutionDomain(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"asha@nec.edu.in", true},
		{"Asha@NEC.edu.in", true},
		{"asha@gmail.com", false},
		{"asha@notnec.edu.in", false},
		{"nec.edu.in", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HasInstitutionDomain(tc.email, "@nec.edu.in"), tc.email)
	}
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("secret#1"))
	assert.True(t, IsStrongPassword("abcdefg!"))
	assert.False(t, IsStrongPassword("short#1"), "seven characters")
	assert.False(t, IsStrongPassword("abcdefgh"), "no special character")
	assert.False(t, IsStrongPassword("!@#$%^&*"), "no letter or digit")
}

func TestIsCourseCode(t *testing.T) {
	assert.True(t, IsCourseCode("CS3401"))
	assert.True(t, IsCourseCode("20CS-301"))
	assert.False(t, IsCourseCode(""))
	assert.False(t, IsCourseCode("CS 3401"))
}
