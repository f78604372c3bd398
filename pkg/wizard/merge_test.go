package wizard

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
	"github.com/Rusal0/Wizard/pkg/wizard/parser"
)

var mergedTitle = regexp.MustCompile(`^[0-9a-f]{10}_`)

func TestMergeCardinalityAndNames(t *testing.T) {
	opts, _ := testOptions(t)
	inputs := []Input{
		{Name: "sales.xlsx", Data: quarterlyWorkbook(t)},
		{Name: "costs.xlsx", Data: buildWorkbook(t,
			sheetData{title: "Q1", rows: [][]any{{"Item", "Cost"}, {"rent", 1000}}},
			sheetData{title: "Q2", rows: [][]any{{"Item", "Cost"}, {"rent", 1100}}},
			sheetData{title: "Notes", rows: [][]any{{"draft"}}},
		)},
	}

	result, err := Merge(inputs, opts)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Sheets, 5)

	seen := make(map[string]bool)
	for _, title := range result.Sheets {
		assert.Regexp(t, mergedTitle, title)
		assert.LessOrEqual(t, len([]rune(title)), 31)
		assert.False(t, seen[title], "duplicate title %s", title)
		seen[title] = true
	}
	assert.Equal(t, "_Q1", result.Sheets[0][10:])
	assert.Equal(t, "_Notes", result.Sheets[4][10:])

	f, err := excelize.OpenReader(bytesReader(result.Workbook))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, result.Sheets, f.GetSheetList())
	rows, err := f.GetRows(result.Sheets[3])
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Item", "Cost"}, {"rent", "1100"}}, rows)
}

func TestMergeDeterminism(t *testing.T) {
	opts, _ := testOptions(t)
	inputs := []Input{
		{Name: "sales.xlsx", Data: quarterlyWorkbook(t)},
		{Name: "notes.xlsx", Data: buildWorkbook(t, sheetData{title: "Sheet1", rows: [][]any{{"hello"}}})},
	}

	first, err := Merge(inputs, opts)
	require.NoError(t, err)
	second, err := Merge(inputs, opts)
	require.NoError(t, err)
	assert.Equal(t, first.Sheets, second.Sheets)
}

func TestMergeCollisionResistance(t *testing.T) {
	opts, _ := testOptions(t)
	opts.SingleTableUsesSourceName = boolPtr(false)
	inputs := []Input{
		{Name: "report.xlsx", Data: buildWorkbook(t, sheetData{title: "Sheet1", rows: [][]any{{"alpha", 1}}})},
		{Name: "report.xlsx", Data: buildWorkbook(t, sheetData{title: "Sheet1", rows: [][]any{{"beta", 2}}})},
	}

	result, err := Merge(inputs, opts)
	require.NoError(t, err)
	require.Len(t, result.Sheets, 2)
	assert.NotEqual(t, result.Sheets[0], result.Sheets[1])
	assert.NotEqual(t, result.Sheets[0][:10], result.Sheets[1][:10])
	assert.Equal(t, "_Sheet1", result.Sheets[0][10:])
	assert.Equal(t, "_Sheet1", result.Sheets[1][10:])
}

func TestMergeIdenticalInputs(t *testing.T) {
	opts, _ := testOptions(t)
	data := quarterlyWorkbook(t)

	result, err := Merge([]Input{{Name: "sales.xlsx", Data: data}, {Name: "sales.xlsx", Data: data}}, opts)
	require.NoError(t, err)
	require.Len(t, result.Sheets, 4)
	assert.Len(t, uniqueStrings(result.Sheets), 4)
	assert.NotNil(t, result.Workbook)
}

func TestMergePartialFailure(t *testing.T) {
	opts, _ := testOptions(t)
	inputs := []Input{
		{Name: "one.xlsx", Data: buildWorkbook(t, sheetData{title: "A", rows: [][]any{{1}}}, sheetData{title: "B", rows: [][]any{{2}}})},
		{Name: "two.xlsx", Data: []byte("PK\x03\x04 this is not a workbook")},
		{Name: "three.xlsx", Data: buildWorkbook(t, sheetData{title: "C", rows: [][]any{{3}}})},
	}

	result, err := Merge(inputs, opts)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "two.xlsx", result.Errors[0].Input)
	assert.ErrorIs(t, result.Errors[0], ErrMalformedWorkbook)
	assert.Contains(t, result.Errors[0].Error(), "two.xlsx")

	require.Len(t, result.Sheets, 3)
	assert.Equal(t, "_A", result.Sheets[0][10:])
	assert.Equal(t, "_B", result.Sheets[1][10:])
	assert.Equal(t, "_three", result.Sheets[2][10:])
}

func TestMergeNothingReadable(t *testing.T) {
	opts, _ := testOptions(t)

	result, err := Merge([]Input{{Name: "bad.xlsx", Data: nil}}, opts)
	require.NoError(t, err)
	assert.Nil(t, result.Workbook)
	assert.Empty(t, result.Sheets)
	assert.Len(t, result.Errors, 1)
}

func TestMergeSingleTableUsesSourceName(t *testing.T) {
	opts, _ := testOptions(t)
	data := buildWorkbook(t, sheetData{title: "Sheet1", rows: [][]any{{"x"}}})

	named, err := Merge([]Input{{Name: "Budget 2024.xlsx", Data: data}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "_Budget 2024", named.Sheets[0][10:])

	opts.SingleTableUsesSourceName = boolPtr(false)
	kept, err := Merge([]Input{{Name: "Budget 2024.xlsx", Data: data}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "_Sheet1", kept.Sheets[0][10:])
}

func TestMergeWorkbooksSkipsFailedSheets(t *testing.T) {
	opts, _ := testOptions(t)
	source := &parser.ReadResult{Kind: parser.KindWorkbook, Workbook: unreadableWorkbook()}

	merged, warnings := MergeWorkbooks([]*parser.ReadResult{source}, opts)
	require.Len(t, merged.Sheets, 1)
	assert.Equal(t, "_Good", merged.Sheets[0].Title[10:])
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0].Err, ErrCellUnreadable)

	opts.CellFailure = SkipCell
	merged, warnings = MergeWorkbooks([]*parser.ReadResult{source}, opts)
	assert.Len(t, merged.Sheets, 2)
	require.Len(t, warnings, 1)
	assert.Equal(t, "B1", warnings[0].Cell)
}

func TestMergeWorkbooksZeroSheetInput(t *testing.T) {
	opts, _ := testOptions(t)
	empty := &parser.ReadResult{Kind: parser.KindWorkbook, Workbook: models.NewWorkbook("empty.xlsx")}
	source := &parser.ReadResult{Kind: parser.KindWorkbook, Workbook: unreadableWorkbook()}

	merged, warnings := MergeWorkbooks([]*parser.ReadResult{empty, source, empty}, opts)
	require.Len(t, merged.Sheets, 1)
	assert.Equal(t, "_Good", merged.Sheets[0].Title[10:])
	require.Len(t, warnings, 1, "the empty input must not add a warning")
	assert.Equal(t, "Bad", warnings[0].Sheet)

	merged, warnings = MergeWorkbooks([]*parser.ReadResult{empty}, opts)
	assert.Empty(t, merged.Sheets)
	assert.Empty(t, warnings)
}

func uniqueStrings(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
