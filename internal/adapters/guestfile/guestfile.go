// Package guestfile reads guest lists from JSON or HCL files.
//
// JSON files hold either a bare array of guests or an object with an
// optional "beds" count:
//
//	{"beds": 2, "guests": [{"guest_id": 1, "start": 1, "end": 5}]}
//
// HCL files use one block per guest:
//
//	beds = 2
//	guest {
//	  id    = 1
//	  start = 1
//	  end   = 5
//	}
package guestfile

import (
	"bytes"
	"bed-scheduler-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the decoded content of a guest file.
// BedCount is nil when the file does not set one.
type File struct {
	BedCount *int
	Guests   []domain.Guest
}

type jsonGuest struct {
	GuestID int `json:"guest_id"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

type jsonFile struct {
	Beds   *int        `json:"beds"`
	Guests []jsonGuest `json:"guests"`
}

type hclGuest struct {
	ID    int `hcl:"id"`
	Start int `hcl:"start"`
	End   int `hcl:"end"`
}

type hclFile struct {
	Beds   *int       `hcl:"beds,optional"`
	Guests []hclGuest `hcl:"guest,block"`
}

// Load reads path, choosing the format by extension (.json or .hcl).
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load guest file: read %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(src)
	case ".hcl":
		return ParseHCL(src, path)
	default:
		return nil, fmt.Errorf("load guest file: unsupported extension for %q", path)
	}
}

func ParseJSON(src []byte) (*File, error) {
	var jf jsonFile

	trimmed := bytes.TrimSpace(src)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &jf.Guests); err != nil {
			return nil, fmt.Errorf("parse guest json: %w", err)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&jf); err != nil {
			return nil, fmt.Errorf("parse guest json: %w", err)
		}
	}

	out := &File{BedCount: jf.Beds, Guests: make([]domain.Guest, 0, len(jf.Guests))}
	for _, g := range jf.Guests {
		out.Guests = append(out.Guests, domain.NewGuest(g.GuestID, g.Start, g.End))
	}
	return out, nil
}

// ParseHCL decodes src; filename is only used in diagnostics.
func ParseHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse guest hcl %s: %w", filename, diags)
	}

	var hf hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &hf); diags.HasErrors() {
		return nil, fmt.Errorf("decode guest hcl %s: %w", filename, diags)
	}

	out := &File{BedCount: hf.Beds, Guests: make([]domain.Guest, 0, len(hf.Guests))}
	for _, g := range hf.Guests {
		out.Guests = append(out.Guests, domain.NewGuest(g.ID, g.Start, g.End))
	}
	return out, nil
}
