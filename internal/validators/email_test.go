package validators

import "testing"

// Addresses with no resolvable domain part are rejected before any DNS
// lookup happens.
func TestIsEmailDomainValidMalformed(t *testing.T) {
	cases := []string{
		"plainaddress",
		"missing-domain@",
		"",
	}

	for _, email := range cases {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true, want false", email)
		}
	}
}
