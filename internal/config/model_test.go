package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(s *Settings)
		expectErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *Settings) {},
		},
		{
			name:      "empty root",
			mutate:    func(s *Settings) { s.Catalog.Root = "" },
			expectErr: "catalog root",
		},
		{
			name:      "bad level",
			mutate:    func(s *Settings) { s.Log.Level = "loud" },
			expectErr: "invalid log level",
		},
		{
			name:      "bad format",
			mutate:    func(s *Settings) { s.Log.Format = "xml" },
			expectErr: "invalid log format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.mutate(s)
			err := s.Validate()
			if tc.expectErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.expectErr)
			}
		})
	}
}
