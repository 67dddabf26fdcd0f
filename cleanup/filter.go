// Package cleanup decides which files of the similar pairs are duplicates in
// the target folder and removes them.
package cleanup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abiiranathan/pdfdedup/search"
)

// Policy selects how pairs are turned into deletion candidates.
type Policy int

const (
	// PolicyFirst takes, for each pair, the first member inside the target
	// folder. A pair with both members in scope yields only its first member;
	// a path may be listed more than once.
	PolicyFirst Policy = iota

	// PolicyCluster groups pairs into clusters of mutually reachable files and
	// keeps one survivor per cluster: the lowest-indexed member outside the
	// target folder, or failing that the lowest-indexed member. Every other
	// member inside the target folder is listed once.
	PolicyCluster
)

func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	case PolicyCluster:
		return "cluster"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a policy name to a Policy. The empty string is PolicyFirst.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "first":
		return PolicyFirst, nil
	case "cluster":
		return PolicyCluster, nil
	}
	return PolicyFirst, fmt.Errorf("unknown policy %q: use first or cluster", name)
}

// InScope reports whether path lies in the target folder. The test is a plain
// string prefix on the path, so "/data/b" also covers "/data/bravo/x.pdf".
// An empty target covers nothing.
func InScope(path, target string) bool {
	return target != "" && strings.HasPrefix(path, target)
}

// FilterPaths returns the paths to delete, in pair order.
func FilterPaths(pairs []search.SimilarPair, target string, policy Policy) []string {
	if policy == PolicyCluster {
		return filterClusters(pairs, target)
	}

	var paths []string
	for _, pair := range pairs {
		switch {
		case InScope(pair.First, target):
			paths = append(paths, pair.First)
		case InScope(pair.Second, target):
			paths = append(paths, pair.Second)
		}
	}
	return paths
}

func filterClusters(pairs []search.SimilarPair, target string) []string {
	parent := make(map[int]int)
	names := make(map[int]string)

	var find func(x int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	for _, pair := range pairs {
		for _, member := range []struct {
			index int
			path  string
		}{{pair.I, pair.First}, {pair.J, pair.Second}} {
			if _, ok := parent[member.index]; !ok {
				parent[member.index] = member.index
				names[member.index] = member.path
			}
		}

		a, b := find(pair.I), find(pair.J)
		if a == b {
			continue
		}
		// Lowest index becomes the root.
		if b < a {
			a, b = b, a
		}
		parent[b] = a
	}

	indexes := make([]int, 0, len(parent))
	for index := range parent {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	clusters := make(map[int][]int)
	for _, index := range indexes {
		root := find(index)
		clusters[root] = append(clusters[root], index)
	}

	survivors := make(map[int]bool, len(clusters))
	for root, members := range clusters {
		survivor := root
		for _, index := range members {
			if !InScope(names[index], target) {
				survivor = index
				break
			}
		}
		survivors[survivor] = true
	}

	var paths []string
	for _, index := range indexes {
		if !survivors[index] && InScope(names[index], target) {
			paths = append(paths, names[index])
		}
	}
	return paths
}
