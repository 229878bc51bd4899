// Package idgen provides short, URL-safe entity ids backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Entity prefixes. The prefix makes ids self-describing in logs and device
// configuration.
const (
	PrefixAdvertiser = "adv_"
	PrefixCampaign   = "cmp_"
	PrefixCreative   = "crv_"
	PrefixDevice     = "dev_"
	PrefixImpression = "imp_"
)

// Alphabet defines the character set used for the random portion of the ID.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters generated (excluding the prefix).
var Length = 16

// New returns a new unique ID with the given prefix.
func New(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
