package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"promisetracker/internal/promise"
	"promisetracker/internal/tracker"
)

// loadFiles reads every path, splits each into YAML documents, parses
// each document as an Item, and adds it to a fresh Tracker. This is the
// one place the repo touches the filesystem; directory scanning and
// general file storage remain out of scope (spec §1).
func loadFiles(paths []string) (*tracker.Tracker, error) {
	t := tracker.New()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		docs, err := splitDocuments(data)
		if err != nil {
			return nil, fmt.Errorf("splitting %s: %w", path, err)
		}
		for i, doc := range docs {
			if len(bytes.TrimSpace(doc)) == 0 {
				continue
			}
			item, err := promise.ParseItem(doc)
			if err != nil {
				return nil, fmt.Errorf("%s (document %d): %w", path, i, err)
			}
			if err := t.AddItem(item); err != nil {
				return nil, fmt.Errorf("%s (document %d): %w", path, i, err)
			}
		}
	}
	return t, nil
}

// splitDocuments re-encodes each "---"-separated YAML document in data on
// its own, using yaml.Decoder so multi-document streams parse the same
// way regardless of indentation quirks around document separators.
func splitDocuments(data []byte) ([][]byte, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs [][]byte
	for {
		var raw yaml.Node
		err := dec.Decode(&raw)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out, err := yaml.Marshal(&raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, out)
	}
	return docs, nil
}
