//go:build unit
// +build unit

package workouts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetValidation(t *testing.T) {
	tests := []struct {
		name          string
		set           *Set
		expectedError bool
	}{
		{
			name: "valid set",
			set: &Set{
				WorkoutDate: "2025-10-25",
				Exercise:    "Squat",
				WeightKg:    100.0,
				Repetitions: 5,
				SetNumber:   3,
			},
			expectedError: false,
		},
		{
			name: "missing exercise name",
			set: &Set{
				WorkoutDate: "2025-10-25",
				WeightKg:    100.0,
				Repetitions: 5,
				SetNumber:   3,
			},
			expectedError: true,
		},
		{
			name: "zero weight",
			set: &Set{
				WorkoutDate: "2025-10-25",
				Exercise:    "Squat",
				Repetitions: 5,
				SetNumber:   3,
			},
			expectedError: true,
		},
		{
			name: "malformed date",
			set: &Set{
				WorkoutDate: "October 25th",
				Exercise:    "Squat",
				WeightKg:    100.0,
				Repetitions: 5,
				SetNumber:   3,
			},
			expectedError: true,
		},
		{
			name: "negative repetitions",
			set: &Set{
				WorkoutDate: "2025-10-25",
				Exercise:    "Squat",
				WeightKg:    100.0,
				Repetitions: -5,
				SetNumber:   1,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
