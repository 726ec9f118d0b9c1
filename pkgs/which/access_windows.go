// Copyright 2024 The ccenv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package which

import "golang.org/x/sys/windows"

// isExecutable reports whether path names an existing file. Whether it can be
// run is decided by its extension, which the search supplies from PATHEXT.
func isExecutable(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0
}
