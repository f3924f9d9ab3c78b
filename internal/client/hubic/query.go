package hubic

import (
	"fmt"
	"net/url"
	"strings"
)

// formPair is a single key/value pair of an application/x-www-form-urlencoded payload.
// Unlike url.Values, a slice of pairs preserves both ordering and duplicate keys.
type formPair struct {
	key   string
	value string
}

// encodeForm serializes the pairs into application/x-www-form-urlencoded bytes.
// Pair order is preserved, which keeps request bodies reproducible.
func encodeForm(pairs []formPair) []byte {
	var sb strings.Builder

	for i, pair := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(pair.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pair.value))
	}

	return []byte(sb.String())
}

// decodeQuery parses a raw query string into key/value pairs.
// Duplicate keys are preserved as separate pairs in encounter order.
func decodeQuery(raw string) ([]formPair, error) {
	if raw == "" {
		return nil, nil
	}

	segments := strings.Split(raw, "&")
	pairs := make([]formPair, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(segment, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode query key %q: %w", rawKey, err)
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("failed to decode query value %q: %w", rawValue, err)
		}

		pairs = append(pairs, formPair{key: key, value: value})
	}

	return pairs, nil
}

// firstPairValue returns the value of the first pair matching the given key.
func firstPairValue(pairs []formPair, key string) (string, bool) {
	for _, pair := range pairs {
		if pair.key == key {
			return pair.value, true
		}
	}

	return "", false
}
