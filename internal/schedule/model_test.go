package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRangeMinutes(t *testing.T) {
	start, end, err := TimeRange{Start: "09:30", End: "17:00"}.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, start)
	assert.Equal(t, 17*60, end)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name    string
		ranges  []TimeRange
		wantErr error
	}{
		{
			name:   "empty is valid",
			ranges: nil,
		},
		{
			name:   "single range",
			ranges: []TimeRange{{Start: "09:00", End: "17:00"}},
		},
		{
			name: "split day",
			ranges: []TimeRange{
				{Start: "09:00", End: "12:00"},
				{Start: "13:00", End: "18:00"},
			},
		},
		{
			name: "back-to-back is allowed",
			ranges: []TimeRange{
				{Start: "09:00", End: "12:00"},
				{Start: "12:00", End: "15:00"},
			},
		},
		{
			name:    "start equals end",
			ranges:  []TimeRange{{Start: "09:00", End: "09:00"}},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "inverted range",
			ranges:  []TimeRange{{Start: "17:00", End: "09:00"}},
			wantErr: ErrInvalidRange,
		},
		{
			name: "unordered",
			ranges: []TimeRange{
				{Start: "13:00", End: "18:00"},
				{Start: "09:00", End: "12:00"},
			},
			wantErr: ErrUnorderedRanges,
		},
		{
			name: "overlapping",
			ranges: []TimeRange{
				{Start: "09:00", End: "12:00"},
				{Start: "11:00", End: "15:00"},
			},
			wantErr: ErrOverlappingRanges,
		},
		{
			name:    "malformed bound",
			ranges:  []TimeRange{{Start: "nine", End: "17:00"}},
			wantErr: ErrMalformedTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRanges(tt.ranges)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWeeklyScheduleValidate(t *testing.T) {
	t.Run("valid week", func(t *testing.T) {
		ws := WeeklySchedule{
			time.Monday:  {{Start: "09:00", End: "12:00"}, {Start: "13:00", End: "18:00"}},
			time.Tuesday: {{Start: "10:00", End: "16:00"}},
		}
		assert.NoError(t, ws.Validate())
	})

	t.Run("bad day names the weekday", func(t *testing.T) {
		ws := WeeklySchedule{
			time.Friday: {{Start: "17:00", End: "09:00"}},
		}
		err := ws.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Contains(t, err.Error(), "Friday")
	})
}

func TestDateExceptionValidate(t *testing.T) {
	t.Run("closed without ranges", func(t *testing.T) {
		exc := DateException{Closed: true}
		assert.NoError(t, exc.Validate())
	})

	t.Run("closed with ranges rejected", func(t *testing.T) {
		exc := DateException{Closed: true, Ranges: []TimeRange{{Start: "09:00", End: "12:00"}}}
		assert.ErrorIs(t, exc.Validate(), ErrClosedWithRanges)
	})

	t.Run("override ranges validated", func(t *testing.T) {
		exc := DateException{Ranges: []TimeRange{{Start: "12:00", End: "09:00"}}}
		assert.ErrorIs(t, exc.Validate(), ErrInvalidRange)
	})
}
