package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "should parse a full year",
			input: "31/12/2030",
			want:  Date{Year: 2030, Month: time.December, Day: 31},
		},
		{
			name:  "should read a two-digit year as 20yy",
			input: "05/07/31",
			want:  Date{Year: 2031, Month: time.July, Day: 5},
		},
		{
			name:    "should fail on a day that does not exist",
			input:   "30/02/2030",
			wantErr: true,
		},
		{
			name:    "should fail on a month out of range",
			input:   "01/13/2030",
			wantErr: true,
		},
		{
			name:    "should fail when separators are missing",
			input:   "31-12-2030",
			wantErr: true,
		},
		{
			name:    "should fail on non-numeric input",
			input:   "aa/bb/cccc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateAfter(t *testing.T) {
	ref := time.Date(2030, time.June, 1, 15, 30, 0, 0, time.UTC)

	tomorrow := Date{Year: 2030, Month: time.June, Day: 2}
	today := Date{Year: 2030, Month: time.June, Day: 1}
	yesterday := Date{Year: 2030, Month: time.May, Day: 31}

	assert.True(t, tomorrow.After(ref))
	assert.False(t, today.After(ref), "the show's own day counts as occurred")
	assert.False(t, yesterday.After(ref))
}

func TestDateIsUsableAsMapKey(t *testing.T) {
	a, err := ParseDate("31/12/2030")
	require.NoError(t, err)
	b, err := ParseDate("31/12/30")
	require.NoError(t, err)

	m := map[Date]int{a: 1}
	m[b]++

	assert.Equal(t, 2, m[a], "structurally equal dates must collide")
}
