package universe

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"WealthPlanner/internal/model"
)

// ErrNoUniverse signals a missing or unusable fund universe. The caller must
// refuse to operate without one.
var ErrNoUniverse = errors.New("no usable fund universe")

// Policy configures the cleaning and tagging pipeline.
type Policy struct {
	ShareClass KeywordPredicate
	Defunct    KeywordPredicate
	Risky      KeywordPredicate
	// RiskyAllCategories applies the risky-sector test to every category.
	// The default policy exempts non-Equity funds.
	RiskyAllCategories bool
}

// NewPolicy builds a cleaning policy, substituting defaults for empty lists.
func NewPolicy(defunct, risky []string, riskyAllCategories bool) Policy {
	return Policy{
		ShareClass:         NewKeywordPredicate("share_class", nil, DefaultShareClassKeywords),
		Defunct:            NewKeywordPredicate("defunct", defunct, DefaultDefunctKeywords),
		Risky:              NewKeywordPredicate("risky_sector", risky, DefaultRiskySectorKeywords),
		RiskyAllCategories: riskyAllCategories,
	}
}

// DefaultPolicy returns the cleaning policy with all default keyword lists.
func DefaultPolicy() Policy {
	return NewPolicy(nil, nil, false)
}

var requiredColumns = []string{"Code", "Name", "Category", "Risk_Grade", "Std_Dev", "Freq_Score", "Avg_Return"}

// LoadCSV reads the universe CSV, runs the cleaning pipeline, and returns an
// immutable Store. A missing or malformed source wraps ErrNoUniverse so the
// caller can abort startup.
func LoadCSV(path string, policy Policy) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrNoUniverse, path, err)
	}
	defer f.Close()
	return load(f, policy)
}

func load(r io.Reader, policy Policy) (*Store, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrNoUniverse, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrNoUniverse, c)
		}
	}

	var records []model.FundRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", ErrNoUniverse, err)
		}
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoUniverse, err)
		}
		records = append(records, rec)
	}

	cleaned := Clean(records, policy)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: no funds remain after cleaning", ErrNoUniverse)
	}
	return NewStore(cleaned), nil
}

func parseRow(row []string, cols map[string]int) (model.FundRecord, error) {
	field := func(name string) string { return strings.TrimSpace(row[cols[name]]) }

	code := field("Code")
	if code == "" {
		return model.FundRecord{}, fmt.Errorf("row with empty code")
	}
	stdDev, err := strconv.ParseFloat(field("Std_Dev"), 64)
	if err != nil {
		return model.FundRecord{}, fmt.Errorf("fund %s: bad Std_Dev %q", code, field("Std_Dev"))
	}
	freq, err := strconv.ParseFloat(field("Freq_Score"), 64)
	if err != nil {
		return model.FundRecord{}, fmt.Errorf("fund %s: bad Freq_Score %q", code, field("Freq_Score"))
	}
	avgRet, err := strconv.ParseFloat(field("Avg_Return"), 64)
	if err != nil {
		return model.FundRecord{}, fmt.Errorf("fund %s: bad Avg_Return %q", code, field("Avg_Return"))
	}

	return model.FundRecord{
		Code:      code,
		Name:      field("Name"),
		Category:  model.Category(field("Category")),
		RiskGrade: model.RiskGrade(field("Risk_Grade")),
		StdDev:    stdDev,
		FreqScore: int(freq),
		AvgReturn: avgRet,
	}, nil
}

// Clean runs the ordered cleaning pipeline: drop non-growth share classes,
// drop defunct schemes, dedupe by code keeping the first occurrence, then tag
// safety. Pure function of its input, safe to memoize.
func Clean(records []model.FundRecord, policy Policy) []model.FundRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.FundRecord, 0, len(records))
	for _, rec := range records {
		if policy.ShareClass.Match(rec.Name) {
			continue
		}
		if policy.Defunct.Match(rec.Name) {
			continue
		}
		if _, dup := seen[rec.Code]; dup {
			continue
		}
		seen[rec.Code] = struct{}{}
		rec.IsSafe = isSafe(rec, policy)
		out = append(out, rec)
	}
	return out
}

func isSafe(rec model.FundRecord, policy Policy) bool {
	if !policy.RiskyAllCategories && rec.Category != model.CategoryEquity {
		return true
	}
	return !policy.Risky.Match(rec.Name)
}
