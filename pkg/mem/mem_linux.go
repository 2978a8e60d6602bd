// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package mem

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// meminfo returns the value of field in /proc/meminfo, in bytes
func meminfo(field string) (uint64, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name, val, ok := strings.Cut(sc.Text(), ":")
		if !ok || name != field {
			continue
		}
		kb, err := strconv.ParseUint(strings.TrimSuffix(strings.TrimSpace(val), " kB"), 10, 64)
		if err != nil {
			return 0, err
		}
		return kb * 1024, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("field %q not found in /proc/meminfo", field)
}

func GetTotalMem() (uint64, error) {
	return meminfo("MemTotal")
}

func GetAvailMem() (uint64, error) {
	u, err := meminfo("MemAvailable")
	if err != nil {
		return meminfo("MemFree")
	}
	return u, nil
}
