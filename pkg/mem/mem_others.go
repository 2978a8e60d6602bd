// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

//go:build !linux && !darwin

package mem

import "errors"

var ErrUnsupported = errors.New("memory stats are not available on this platform")

func GetTotalMem() (uint64, error) {
	return 0, ErrUnsupported
}

func GetAvailMem() (uint64, error) {
	return 0, ErrUnsupported
}
