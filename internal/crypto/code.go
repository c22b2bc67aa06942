package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// code value bounds, inclusive. Six digits, no leading zeros.
const (
	codeMin = 100000
	codeMax = 999999
)

// GenerateNumericCode draws a six-digit one-time code uniformly from
// [100000, 999999] using crypto/rand. Each call uses a fresh read from the
// system source; no shared generator state exists across requests.
func GenerateNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("error generating one-time code: %w", err)
	}

	return fmt.Sprintf("%d", codeMin+n.Int64()), nil
}
