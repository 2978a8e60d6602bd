// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package mem

import (
	"os/exec"
	"strconv"
	"strings"
)

func sysctl(name string) (uint64, error) {
	out, err := exec.Command("sysctl", "-n", name).Output()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(out)), 10, 64)
}

func GetTotalMem() (uint64, error) {
	return sysctl("hw.memsize")
}

func GetAvailMem() (uint64, error) {
	pages, err := sysctl("vm.page_free_count")
	if err != nil {
		return 0, err
	}
	pageSize, err := sysctl("hw.pagesize")
	if err != nil {
		return 0, err
	}
	return pages * pageSize, nil
}
