package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	h := Heuristic{}
	cases := []struct {
		in   string
		want string
	}{
		{"I am john", "John"},
		{"my name is ALICE", "Alice"},
		{"i'm bob", "Bob"},
		{"call me carol", "Carol"},
		{"this is dave", "Dave"},
		{"eve", "Eve"},
		{"Hi, frank", "Frank"},
		{"hello grace", "Grace"},
		{"hey   heidi", "Heidi"},
		{"good evening, my name is Ivan", "Ivan"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, h.ExtractName(tc.in), "input %q", tc.in)
	}
}

func TestExtractNameDeterministic(t *testing.T) {
	h := Heuristic{}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "John", h.ExtractName("hello, I am john smith"))
	}
}

func TestExtractEmail(t *testing.T) {
	h := Heuristic{}
	cases := []struct {
		in   string
		want string
	}{
		{"my email is John@Example.COM", "john@example.com"},
		{"email: foo@bar.io", "foo@bar.io"},
		{"you can reach me at alice+movies@mail.co.uk", "alice+movies@mail.co.uk"},
		{"here's my email bob_1@test.org", "bob_1@test.org"},
		{"sure, carol@domain.net works", "carol@domain.net"},
		{"no address here", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, h.ExtractEmail(tc.in), "input %q", tc.in)
	}
}

func TestExtractEmailPhraseBeatsBareToken(t *testing.T) {
	h := Heuristic{}
	got := h.ExtractEmail("old@gone.com is dead, my email is new@fresh.com")
	assert.Equal(t, "new@fresh.com", got)
}

func TestValidateEmail(t *testing.T) {
	h := Heuristic{}
	assert.True(t, h.ValidateEmail("user@domain.com"))
	assert.True(t, h.ValidateEmail("  User@Domain.Com  "))
	assert.True(t, h.ValidateEmail("a.b+c@d-e.org"))
	assert.False(t, h.ValidateEmail("user@domain"))
	assert.False(t, h.ValidateEmail("@domain.com"))
	assert.False(t, h.ValidateEmail("user@.com"))
	assert.False(t, h.ValidateEmail("plainword"))
	assert.False(t, h.ValidateEmail(""))
}
