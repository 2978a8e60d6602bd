// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package testutils

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

const letterBytes = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BrokenRandomAlphaNumericString is not cryptographically random
// so don't use it outside of tests
func BrokenRandomAlphaNumericString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

// RandomValue returns a realistic looking cell value, some of which contain
// commas or quotes
func RandomValue() string {
	switch rand.Intn(5) {
	case 0:
		return gofakeit.Name()
	case 1:
		return gofakeit.City()
	case 2:
		return gofakeit.Email()
	case 3:
		return gofakeit.Sentence(4)
	default:
		return gofakeit.Numerify("####.##")
	}
}
