package cleanup

import (
	"testing"

	"github.com/abiiranathan/pdfdedup/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(i int, first string, j int, second string) search.SimilarPair {
	return search.SimilarPair{First: first, Second: second, Score: 1, I: i, J: j}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    Policy
		wantErr bool
	}{
		{name: "", want: PolicyFirst},
		{name: "first", want: PolicyFirst},
		{name: "Cluster", want: PolicyCluster},
		{name: "newest", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "cluster", PolicyCluster.String())
}

func TestInScope(t *testing.T) {
	tests := []struct {
		path, target string
		want         bool
	}{
		{"/data/b/x.pdf", "/data/b", true},
		{"/data/bravo/x.pdf", "/data/b", true},
		{"/data/a/x.pdf", "/data/b", false},
		{"/other/data/b/x.pdf", "/data/b", false},
		{"/data/B/x.pdf", "/data/b", false},
		{"/data/b/x.pdf", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InScope(tt.path, tt.target), "InScope(%q, %q)", tt.path, tt.target)
	}
}

func TestFilterPaths(t *testing.T) {
	tests := []struct {
		name        string
		pairs       []search.SimilarPair
		target      string
		wantFirst   []string
		wantCluster []string
	}{
		{
			name:        "second member in target",
			pairs:       []search.SimilarPair{pair(0, "/A/x.pdf", 1, "/B/x.pdf")},
			target:      "/B",
			wantFirst:   []string{"/B/x.pdf"},
			wantCluster: []string{"/B/x.pdf"},
		},
		{
			name:        "first member in target",
			pairs:       []search.SimilarPair{pair(0, "/B/x.pdf", 1, "/C/x.pdf")},
			target:      "/B",
			wantFirst:   []string{"/B/x.pdf"},
			wantCluster: []string{"/B/x.pdf"},
		},
		{
			name:        "both members in target",
			pairs:       []search.SimilarPair{pair(0, "/B/a.pdf", 1, "/B/b.pdf")},
			target:      "/B",
			wantFirst:   []string{"/B/a.pdf"},
			wantCluster: []string{"/B/b.pdf"},
		},
		{
			name:   "no member in target",
			pairs:  []search.SimilarPair{pair(0, "/A/x.pdf", 1, "/C/x.pdf")},
			target: "/B",
		},
		{
			name: "cluster with a survivor outside the target",
			pairs: []search.SimilarPair{
				pair(0, "/A/x.pdf", 1, "/B/x.pdf"),
				pair(0, "/A/x.pdf", 2, "/B/y.pdf"),
				pair(1, "/B/x.pdf", 2, "/B/y.pdf"),
			},
			target:      "/B",
			wantFirst:   []string{"/B/x.pdf", "/B/y.pdf", "/B/x.pdf"},
			wantCluster: []string{"/B/x.pdf", "/B/y.pdf"},
		},
		{
			name: "cluster entirely inside the target",
			pairs: []search.SimilarPair{
				pair(0, "/B/a.pdf", 1, "/B/b.pdf"),
				pair(1, "/B/b.pdf", 2, "/B/c.pdf"),
			},
			target:      "/B",
			wantFirst:   []string{"/B/a.pdf", "/B/b.pdf"},
			wantCluster: []string{"/B/b.pdf", "/B/c.pdf"},
		},
		{
			name: "separate clusters",
			pairs: []search.SimilarPair{
				pair(0, "/B/a.pdf", 3, "/B/a2.pdf"),
				pair(1, "/A/b.pdf", 2, "/B/b.pdf"),
			},
			target:      "/B",
			wantFirst:   []string{"/B/a.pdf", "/B/b.pdf"},
			wantCluster: []string{"/B/b.pdf", "/B/a2.pdf"},
		},
		{
			name:      "prefix match on sibling folder",
			pairs:     []search.SimilarPair{pair(0, "/data/a/x.pdf", 1, "/data/bravo/x.pdf")},
			target:    "/data/b",
			wantFirst: []string{"/data/bravo/x.pdf"},
			wantCluster: []string{
				"/data/bravo/x.pdf",
			},
		},
		{
			name:   "empty target",
			pairs:  []search.SimilarPair{pair(0, "/B/a.pdf", 1, "/B/b.pdf")},
			target: "",
		},
		{
			name:   "no pairs",
			target: "/B",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFirst, FilterPaths(tt.pairs, tt.target, PolicyFirst))
			assert.Equal(t, tt.wantCluster, FilterPaths(tt.pairs, tt.target, PolicyCluster))

			for _, policy := range []Policy{PolicyFirst, PolicyCluster} {
				for _, path := range FilterPaths(tt.pairs, tt.target, policy) {
					assert.True(t, InScope(path, tt.target), "%s selected %s outside %s", policy, path, tt.target)
				}
			}
		})
	}
}
