// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the FSInfo struct, which stores file system metadata.
//
// Why store the file path?
//
// A field definition loaded from disk keeps a pointer back to its source file.
// Validation warnings and duplicate-slug reports name the file so integrators
// can find the offending declaration. Definitions registered from Go code have
// no FSInfo.
package model

// FSInfo links a definition to the file it was declared in.
type FSInfo struct {
	FilePath string
}

// NewFSInfo creates an FSInfo for filePath.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// String returns the file path, or "<go>" for definitions built in code.
func (f *FSInfo) String() string {
	if f == nil {
		return "<go>"
	}
	return f.FilePath
}
