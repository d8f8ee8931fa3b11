// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bintree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/etc/bintree", "log", "/etc/bintree/log"},
		{"/etc/bintree", "./log/../logs", "/etc/bintree/logs"},
		{"/etc/bintree", "/var/log", "/var/log"},
		{"/etc/bintree", "/var//log/", "/var/log"},
	}
	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: path", i)
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()

	d := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(d), "create")
	assert.Nil(t, util.EnsureDirectory(d), "existing")
	assert.True(t, util.EnsureFileExists(d), "exists")

	f := filepath.Join(dir, "file")
	assert.Nil(t, os.WriteFile(f, []byte("x"), 0600), "write")
	assert.NotNil(t, util.EnsureDirectory(f), "file accepted as directory")

	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "absent file")
}
