// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

// Package git derives version information for securo builds from the state
// of the enclosing git repository.
package git

import (
	"errors"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// tagVersions returns a map of commit hashes to tagged semantic versions.
// Tag references are used rather than tag objects, so that deleted tags are
// not considered.
func tagVersions(r *git.Repository) (map[plumbing.Hash]semver.Version, error) {
	iter, err := r.Tags()
	if err != nil {
		return nil, err
	}

	tags := make(map[plumbing.Hash]semver.Version)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		v, err := semver.Parse(strings.TrimPrefix(ref.Name().Short(), "v"))
		if err != nil {
			return nil // not a semver tag
		}

		obj, err := r.TagObject(ref.Hash())
		switch {
		case err == nil:
			tags[obj.Target] = v // annotated tag
		case errors.Is(err, plumbing.ErrObjectNotFound):
			tags[ref.Hash()] = v // lightweight tag
		default:
			return err
		}
		return nil
	})
	return tags, err
}

// Description describes the state of a git repository relative to its
// nearest semantic version tag.
type Description struct {
	isClean bool            // if true, the git working tree has no local modifications
	c       *object.Commit  // commit being described
	v       *semver.Version // version of nearest tag reachable from commit (or nil if none found)
	n       uint64          // commits between nearest semver tag and commit (if v is non-nil)
}

// Describe returns a Description of HEAD of the git repository at path.
func Describe(path string) (*Description, error) {
	r, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	head, err := r.Head()
	if err != nil {
		return nil, err
	}

	c, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	d := Description{c: c}

	tags, err := tagVersions(r)
	if err != nil {
		return nil, err
	}

	// Walk the commit log from HEAD until a tagged commit is found, counting
	// the commits in between.
	logIter, err := r.Log(&git.LogOptions{
		Order: git.LogOrderCommitterTime,
		From:  c.Hash,
	})
	if err != nil {
		return nil, err
	}

	err = logIter.ForEach(func(c *object.Commit) error {
		if v, ok := tags[c.Hash]; ok {
			d.v = &v
			return storer.ErrStop
		}
		d.n++
		return nil
	})
	if err != nil {
		return nil, err
	}

	w, err := r.Worktree()
	if err != nil {
		return nil, err
	}

	status, err := w.Status()
	if err != nil {
		return nil, err
	}

	d.isClean = status.IsClean()

	return &d, nil
}

// IsClean returns true if the git working tree has no local modifications.
func (d *Description) IsClean() bool {
	return d.isClean
}

// CommitHash returns the hash of the commit described by d.
func (d *Description) CommitHash() string {
	return d.c.Hash.String()
}

// CommitTime returns the time of the commit described by d.
func (d *Description) CommitTime() time.Time {
	return d.c.Committer.When
}

var errTagNotFound = errors.New("semantic version tag not found")

// Version returns a semantic version based on d. If d is tagged directly, the parsed version is
// returned. Otherwise, a version is derived that preserves semantic precedence.
//
// For example:
//   - If d.v = 0.1.2-alpha.1 and d.n = 1, 0.1.2-alpha.1.0.devel.1 is returned.
//   - If d.v = 0.1.2 and d.n = 1, 0.1.3-0.devel.1 is returned.
//   - If d.v = 0.1.3 and d.n = 0, 0.1.3 is returned.
func (d *Description) Version() (semver.Version, error) {
	if d.v == nil {
		return semver.Version{}, errTagNotFound
	}

	// If this version wasn't tagged directly, modify tag.
	v := *d.v
	if d.n > 0 {
		if len(v.Pre) == 0 {
			v.Patch++
		}

		// Append "0.devel.N" pre-release components.
		v.Pre = append(v.Pre,
			semver.PRVersion{VersionNum: 0, IsNum: true},
			semver.PRVersion{VersionStr: "devel"},
			semver.PRVersion{VersionNum: d.n, IsNum: true},
		)
	}

	return v, nil
}
