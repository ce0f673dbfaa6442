package seq

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Record is a single named sequence read from a file.
type Record struct {
	// ID is the FASTA header or GenBank locus name
	ID string `json:"id"`

	// Seq is the normalized sequence
	Seq string `json:"seq"`

	// Circular is set when a GenBank locus line declares the molecule circular
	Circular bool `json:"circular,omitempty"`
}

var (
	// characters that can't be part of a sequence in a FASTA body
	unwantedChars = regexp.MustCompile(`[^A-Za-z*\-]`)

	// the locus name and topology of a GenBank record
	locusRegex = regexp.MustCompile(`LOCUS[ \t]*([^ \t\n]*)`)
)

// Read a FASTA or GenBank file (by its path on local FS) to a slice of Records.
func Read(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %w", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	file := string(dat)
	if strings.TrimSpace(file) == "" {
		return nil, fmt.Errorf("failed to parse %s: %w: empty file", path, ErrMalformedSequence)
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, "gb") || strings.HasSuffix(lower, "gbk") || strings.HasSuffix(lower, "genbank") {
		return ParseGenbank(path, file)
	}
	if strings.HasSuffix(lower, "fa") || strings.HasSuffix(lower, "fasta") || strings.HasPrefix(file, ">") {
		return ParseFasta(path, file)
	}
	if strings.HasPrefix(file, "LOCUS") {
		return ParseGenbank(path, file)
	}

	return nil, fmt.Errorf("failed to parse %s: unrecognized file type", path)
}

// ParseFasta parses multi-FASTA contents to records. name is only used in errors.
func ParseFasta(name, contents string) (records []Record, err error) {
	lines := strings.Split(contents, "\n")

	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}

	// accumulate the sequences from between the headers
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqJoined := strings.Join(lines[headerIndex+1:nextLine], "")
		records = append(records, Record{
			ID:  ids[i],
			Seq: Normalize(unwantedChars.ReplaceAllString(seqJoined, "")),
		})
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return records, fmt.Errorf("failed to parse sequence(s) from %s", name)
	}

	return records, nil
}

// ParseGenbank parses the ORIGIN block of a GenBank record.
func ParseGenbank(name, contents string) ([]Record, error) {
	genbankSplit := strings.Split(contents, "ORIGIN")
	if len(genbankSplit) != 2 {
		return nil, fmt.Errorf("failed to parse %s: improperly formatted genbank file", name)
	}

	header := genbankSplit[0]
	id := locusRegex.FindStringSubmatch(header)
	if len(id) < 2 || id[1] == "" {
		return nil, fmt.Errorf("failed to parse locus from %s", name)
	}

	body := strings.Split(genbankSplit[1], "//")[0]
	locusLine := strings.SplitN(header[strings.Index(header, "LOCUS"):], "\n", 2)[0]

	return []Record{{
		ID:       id[1],
		Seq:      Normalize(unwantedChars.ReplaceAllString(body, "")),
		Circular: strings.Contains(strings.ToLower(locusLine), "circular"),
	}}, nil
}
