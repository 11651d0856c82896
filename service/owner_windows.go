//go:build windows

package service

import (
	"errors"
	"io/fs"
)

func ownerID(fs.FileInfo) (uint32, bool) {
	return 0, false
}

func lookupUser(uint32) (string, error) {
	return "", errors.New("owner lookup not supported on windows")
}
