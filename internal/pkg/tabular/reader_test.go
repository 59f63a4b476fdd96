package tabular

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestRowsPreservesOrderAndHeaders(t *testing.T) {
	input := "\uFEFFProgram, Dept ,Year\nBE,CSE,2\nBTECH,IT,3\n"

	rows, err := Collect(Rows(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{"Program": "BE", "Dept": "CSE", "Year": "2"}, rows[0])
	assert.Equal(t, "BTECH", rows[1].Get("Program"))
	assert.Equal(t, "3", rows[1].Get("Year"))
}

func TestRowsShortAndLongRecords(t *testing.T) {
	input := "A,B,C\n1,2\n4,5,6,7\n"

	rows, err := Collect(Rows(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "", rows[0].Get("C"))
	assert.False(t, rows[0].Has("C"))
	assert.Equal(t, Row{"A": "4", "B": "5", "C": "6"}, rows[1])
}

func TestRowsSkipsBlankLinesAndTrimsValues(t *testing.T) {
	input := "A,B\n\n  x , y \n,\n"

	rows, err := Collect(Rows(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"A": "x", "B": "y"}, rows[0])
}

func TestRowsHeaderOnly(t *testing.T) {
	rows, err := Collect(Rows(strings.NewReader("A,B\n")))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = Collect(Rows(strings.NewReader("")))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRowsInvalidEncoding(t *testing.T) {
	input := "A,B\n1,2\n\xff\xfe,3\n"

	var got []Row
	var parseErr *ParseError
	for row, err := range Rows(strings.NewReader(input)) {
		if err != nil {
			require.ErrorAs(t, err, &parseErr)
			break
		}
		got = append(got, row)
	}
	require.NotNil(t, parseErr)
	assert.ErrorIs(t, parseErr, ErrInvalidEncoding)
	assert.Len(t, got, 1, "rows before the bad line are still yielded")
}

func TestRowsReadFailure(t *testing.T) {
	_, err := Collect(Rows(failingReader{}))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "disk gone")
}

func TestRowsStopsWhenConsumerBreaks(t *testing.T) {
	input := "A\n1\n2\n3\n"
	count := 0
	for range Rows(strings.NewReader(input)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
