package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{name: "blank", input: "  "},
		{name: "date only is end of day", input: "2025-06-02", want: timePtr(time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC))},
		{name: "date and time", input: "2025-06-02 09:30", want: timePtr(time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC))},
		{name: "T separator", input: "2025-06-02T09:30", want: timePtr(time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC))},
		{name: "RFC3339 keeps its offset", input: "2025-06-02T09:30:00+02:00", want: timePtr(time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC))},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.input, time.UTC)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestFormatDueDate(t *testing.T) {
	assert.Equal(t, "", FormatDueDate(nil, time.UTC))

	due := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	formatted := FormatDueDate(&due, time.UTC)
	assert.Equal(t, "2025-06-02 09:30", formatted)

	parsed, err := ParseDueDate(formatted, time.UTC)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(due))
}
