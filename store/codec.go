// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xAlexMGGx/LinkGames/models"
)

// Encode serialises a document as JSON.
func Encode(doc models.Document) ([]byte, error) {
	if doc == nil {
		doc = models.Document{}
	}
	return json.Marshal(doc)
}

// Decode parses a stored document. Numbers are kept as their decimal text
// and booleans become Yes/No, which is how older blobs stored times and
// Pinpoint answers.
func Decode(data []byte) (models.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Document{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	doc := make(models.Document, len(raw))
	for game, cells := range raw {
		out := make(map[string]string, len(cells))
		for player, v := range cells {
			switch val := v.(type) {
			case string:
				out[player] = val
			case json.Number:
				out[player] = val.String()
			case bool:
				if val {
					out[player] = models.Yes
				} else {
					out[player] = models.No
				}
			case nil:
				out[player] = ""
			default:
				return nil, fmt.Errorf("%w: %s/%s holds %T", ErrCorruptDocument, game, player, v)
			}
		}
		doc[game] = out
	}
	return doc, nil
}
