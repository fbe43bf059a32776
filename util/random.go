package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomEmail generates a random email address
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", RandomString(8))
}

// RandomPhone generates a random 10-digit phone number
func RandomPhone() string {
	var sb strings.Builder
	sb.WriteByte('0')
	for i := 0; i < 9; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

// RandomLatitude generates a latitude inside the service area
func RandomLatitude() float64 {
	return RandomFloat(6.7, 7.0)
}

// RandomLongitude generates a longitude inside the service area
func RandomLongitude() float64 {
	return RandomFloat(79.8, 80.1)
}
