package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const suffixLength = 6
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomSuffix(n int) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return string(b)
}

// GenerateReceiptNumber returns a receipt number like RCPT-2026-X7K2P9,
// retrying until taken reports the candidate as free.
func GenerateReceiptNumber(year int, taken func(string) bool) string {
	for {
		num := fmt.Sprintf("RCPT-%d-%s", year, randomSuffix(suffixLength))
		if !taken(num) {
			return num
		}
	}
}

// GenerateApplicationNumber returns an admission application number like
// APP-2026-M4Q8Z1.
func GenerateApplicationNumber(year int, taken func(string) bool) string {
	for {
		num := fmt.Sprintf("APP-%d-%s", year, randomSuffix(suffixLength))
		if !taken(num) {
			return num
		}
	}
}

// FormatRollNumber builds a roll number in the registry format:
// admission year, course code, zero-padded sequence (e.g. 2026CS001).
func FormatRollNumber(year int, courseCode string, seq int) string {
	return fmt.Sprintf("%d%s%03d", year, courseCode, seq)
}
