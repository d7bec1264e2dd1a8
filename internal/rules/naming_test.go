package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "linterman.dev/pkg/linterman/internal/model"
)

func TestNamingConvention(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		reqName   string
		wantIssue bool
	}{
		{name: "missing verb", method: "GET", reqName: "Users List", wantIssue: true},
		{name: "leading verb", method: "GET", reqName: "GET Users List", wantIssue: false},
		{name: "other verb accepted", method: "GET", reqName: "DELETE Users", wantIssue: false},
		{name: "verb without space", method: "GET", reqName: "GETUsers", wantIssue: true},
		{name: "no method", method: "", reqName: "Users", wantIssue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &m.Collection{Item: []m.Item{{
				Name:    tt.reqName,
				Request: &m.Request{Method: tt.method},
			}}}

			issues := CheckNamingConvention(c)
			if !tt.wantIssue {
				require.Empty(t, issues)
				return
			}

			require.Len(t, issues, 1)
			require.Equal(t, "request-naming-convention", issues[0].RuleID)
			require.Equal(t, m.FixRenameRequest, issues[0].Fix.Type)
			require.Equal(t, tt.method+" "+tt.reqName, issues[0].Fix.SuggestedName)
		})
	}
}

func TestNamingIgnoresFolders(t *testing.T) {
	c := &m.Collection{Item: []m.Item{{
		Name: "Users",
		Item: []m.Item{{Name: "GET List", Request: &m.Request{Method: "GET"}}},
	}}}

	require.Empty(t, CheckNamingConvention(c))
}
