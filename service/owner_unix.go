//go:build !windows

package service

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
)

// ownerID extracts the owning uid from stat data.
func ownerID(info fs.FileInfo) (uint32, bool) {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return stat.Uid, true
	}
	return 0, false
}

func lookupUser(uid uint32) (string, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
