package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// GenerateOrderCode generates a random order identifier.
// Format: ORD-randomhex
// Example: ORD-a1b2c3d4e5
func GenerateOrderCode() (string, error) {
	b := make([]byte, 5) // 10 char hex
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s", strings.ToUpper(hex.EncodeToString(b))), nil
}

// GenerateSKU derives a SKU from the brand and name prefixes plus a random
// suffix. Example: APL-IPH-482
func GenerateSKU(name, brand string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s-%s-%d", skuPrefix(brand), skuPrefix(name), suffix)
}

func skuPrefix(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > 3 {
		s = s[:3]
	}
	if s == "" {
		s = "XXX"
	}
	return s
}
