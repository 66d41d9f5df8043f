package store

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     SearchFilter
		wantOK     bool
		wantClause string
		wantArgs   []any
	}{
		{
			name:   "empty filter produces no query",
			filter: SearchFilter{},
			wantOK: false,
		},
		{
			name:       "name only",
			filter:     SearchFilter{Name: "Jane"},
			wantOK:     true,
			wantClause: "WHERE name = $1",
			wantArgs:   []any{"Jane"},
		},
		{
			name:       "direction substring",
			filter:     SearchFilter{Direction: "Evergreen"},
			wantOK:     true,
			wantClause: "WHERE direction LIKE $1",
			wantArgs:   []any{"%Evergreen%"},
		},
		{
			name:       "all three fields AND-joined",
			filter:     SearchFilter{Name: "Jane", Direction: "Evergreen", Email: "jane@example.com"},
			wantOK:     true,
			wantClause: "WHERE name = $1 AND direction LIKE $2 AND email = $3",
			wantArgs:   []any{"Jane", "%Evergreen%", "jane@example.com"},
		},
		{
			name:   "whitespace-only values ignored",
			filter: SearchFilter{Name: "   ", Email: "\t"},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			query, args, ok := buildSearchQuery(tc.filter)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if !tc.wantOK {
				if query != "" || args != nil {
					t.Fatalf("expected empty query, got %q with %v", query, args)
				}
				return
			}
			if !strings.Contains(query, tc.wantClause) {
				t.Fatalf("query %q missing clause %q", query, tc.wantClause)
			}
			if !strings.HasSuffix(query, "ORDER BY name ASC, lastname ASC") {
				t.Fatalf("query %q missing fixed sort", query)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Fatalf("expected args %v, got %v", tc.wantArgs, args)
			}
		})
	}
}
