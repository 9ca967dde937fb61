package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

// summaryKey is the non-record member of a search result object.
const summaryKey = "summary"

// member is one key/value pair of a JSON object, in document order.
type member struct {
	Key   string
	Value json.RawMessage
}

// orderedMembers walks a JSON object in document order. Upstream encodes
// lists as objects keyed "0", "1", ... and a Go map would lose that order.
// Arrays are accepted too, keyed by index.
func orderedMembers(raw json.RawMessage) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil, fmt.Errorf("expected object or array, got %v", tok)
	}

	var members []member
	for i := 0; dec.More(); i++ {
		key := strconv.Itoa(i)
		if delim == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ = keyTok.(string)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, member{Key: key, Value: value})
	}

	// Closing delimiter.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// decodeMasterList flattens a master list to its records in document order.
// Keys are discarded. Members that are not objects are skipped.
func decodeMasterList(raw json.RawMessage) ([]domain.RawBill, error) {
	members, err := orderedMembers(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: masterlist: %v", domain.ErrMalformedRecord, err)
	}

	bills := make([]domain.RawBill, 0, len(members))
	for _, m := range members {
		var bill domain.RawBill
		if err := json.Unmarshal(m.Value, &bill); err != nil {
			logger.Warn("Skipping master list entry %q: %v", m.Key, err)
			continue
		}
		bills = append(bills, bill)
	}
	return bills, nil
}

// decodeSearchResult splits a search result into its summary and hits.
func decodeSearchResult(raw json.RawMessage) (domain.RawSearchResult, error) {
	var result domain.RawSearchResult

	members, err := orderedMembers(raw)
	if err != nil {
		return result, fmt.Errorf("%w: searchresult: %v", domain.ErrMalformedRecord, err)
	}

	result.Hits = make([]domain.RawSearchHit, 0, len(members))
	for _, m := range members {
		if m.Key == summaryKey {
			if err := json.Unmarshal(m.Value, &result.Summary); err != nil {
				logger.Warn("Ignoring malformed search summary: %v", err)
			}
			continue
		}

		var hit domain.RawSearchHit
		if err := json.Unmarshal(m.Value, &hit); err != nil {
			logger.Warn("Skipping search result %q: %v", m.Key, err)
			continue
		}
		result.Hits = append(result.Hits, hit)
	}
	return result, nil
}
