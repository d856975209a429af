package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/px4meta/metadoc"
	"go.jacobcolvin.com/px4meta/metadoc/params"
	"go.jacobcolvin.com/px4meta/stringtest"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		kind  error
		input string
		want  string
	}{
		"valid": {
			input: `
				/**
				 * @unit m/s
				 * @min -1
				 * @max 1.5
				 */
				PARAM_DEFINE_FLOAT(X, 0.5f);
			`,
		},
		"name too long": {
			input: `PARAM_DEFINE_INT32(ABCDEFGHIJKLMNOPQ, 1);`,
			kind:  metadoc.ErrNameTooLong,
			want:  "Parameter Name ABCDEFGHIJKLMNOPQ is too long (Limit is 16)",
		},
		"name at the limit": {
			input: `PARAM_DEFINE_INT32(ABCDEFGHIJKLMNOP, 1);`,
		},
		"duplicate": {
			input: `
				PARAM_DEFINE_INT32(X, 1);
				PARAM_DEFINE_INT32(X, 2);
			`,
			kind: metadoc.ErrDuplicate,
			want: "Duplicate parameter definition: X+",
		},
		"same name on different boards": {
			input: `
				/**
				 * @board px4_fmu-v2
				 */
				PARAM_DEFINE_INT32(X, 1);
				/**
				 * @board px4_fmu-v5
				 */
				PARAM_DEFINE_INT32(X, 2);
			`,
		},
		"invalid unit": {
			input: `
				/**
				 * @unit furlong
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrInvalidUnit,
			want: "Invalid unit in X: furlong",
		},
		"non-numeric default": {
			input: `PARAM_DEFINE_INT32(X, MAV_TYPE_QUADROTOR);`,
			kind:  metadoc.ErrNonNumericDefault,
			want:  "Default value not number: X MAV_TYPE_QUADROTOR",
		},
		"non-numeric min": {
			input: `
				/**
				 * @min low
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrNonNumericDefault,
			want: "Min value not number: X low",
		},
		"non-numeric max": {
			input: `
				/**
				 * @max high
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrNonNumericDefault,
			want: "Max value not number: X high",
		},
		"default below min": {
			input: `
				/**
				 * @min 2
				 */
				PARAM_DEFINE_FLOAT(X, 1.5f);
			`,
			kind: metadoc.ErrDefaultOutOfRange,
			want: "Default value is smaller than min: X default:1.5 min:2",
		},
		"default above max": {
			input: `
				/**
				 * @max 1
				 */
				PARAM_DEFINE_INT32(X, 10);
			`,
			kind: metadoc.ErrDefaultOutOfRange,
			want: "Default value is larger than max: X default:10 max:1",
		},
		"min without default": {
			input: `
				/**
				 * @min 2
				 * @max 1
				 */
				PX4_PARAM_DEFINE_INT32(X);
			`,
			kind: metadoc.ErrNonNumericDefault,
			want: "Min value not number: X 2",
		},
		"max without default": {
			input: `
				/**
				 * @max 1
				 */
				PX4_PARAM_DEFINE_INT32(X);
			`,
		},
		"underscore digit groups": {
			input: `
				/**
				 * @min 1_000
				 * @max 2_000
				 */
				PARAM_DEFINE_INT32(X, 1_500);
			`,
		},
		"underscore below min": {
			input: `
				/**
				 * @min 1_000
				 */
				PARAM_DEFINE_INT32(X, 999);
			`,
			kind: metadoc.ErrDefaultOutOfRange,
			want: "Default value is smaller than min: X default:999 min:1_000",
		},
		"non-numeric enum code": {
			input: `
				/**
				 * @value 0 Off
				 * @value on On
				 */
				PARAM_DEFINE_INT32(X, 0);
			`,
			kind: metadoc.ErrInvalidEnum,
			want: "Min value not number: X on",
		},
		"bitmask within bounds": {
			input: `
				/**
				 * @min 0
				 * @max 3
				 * @bit 0 First
				 * @bit 1 Second
				 */
				PARAM_DEFINE_INT32(X, 0);
			`,
		},
		"bitmask bit out of range": {
			input: `
				/**
				 * @min 0
				 * @max 3
				 * @bit 0 First
				 * @bit 10 Eleventh
				 */
				PARAM_DEFINE_INT32(X, 0);
			`,
			kind: metadoc.ErrInvalidBitmask,
			want: "Bitmask bit must be between 0 and 3: X 1024.0",
		},
		"non-numeric bitmask bit": {
			input: `
				/**
				 * @min 0
				 * @max 3
				 * @bit first First
				 */
				PARAM_DEFINE_INT32(X, 0);
			`,
			kind: metadoc.ErrInvalidBitmask,
			want: "bit value not number: X first",
		},
		"bitmask without bounds": {
			input: `
				/**
				 * @bit 0 First
				 */
				PARAM_DEFINE_INT32(X, 0);
			`,
			kind: metadoc.ErrInvalidBitmask,
			want: "Bitmask bounds must be integers: X min: max:",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := metadoc.NewSession(params.New())

			err := s.Parse("params.c", []byte(stringtest.Input(tc.input)))
			require.NoError(t, err)

			report := s.Validate()
			if tc.want == "" {
				assert.True(t, report.OK(), "%v", report.Err())

				return
			}

			require.False(t, report.OK())
			require.ErrorIs(t, report.First(), tc.kind)
			assert.Equal(t, tc.want, report.First().Error())
		})
	}
}

func TestValidateAccumulates(t *testing.T) {
	t.Parallel()

	src := stringtest.Input(`
		/**
		 * @unit furlong
		 */
		PARAM_DEFINE_INT32(A, 1);
		/**
		 * @group Other
		 * @unit furlong
		 */
		PARAM_DEFINE_INT32(B, 1);
		PARAM_DEFINE_INT32(C, ONE);
	`)

	tcs := map[string]struct {
		want     []string
		failFast bool
	}{
		"every parameter reports its first violation": {
			want: []string{
				"Invalid unit in B: furlong",
				"Invalid unit in A: furlong",
				"Default value not number: C ONE",
			},
		},
		"fail fast": {
			failFast: true,
			want:     []string{"Invalid unit in B: furlong"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := metadoc.NewSession(params.New(), metadoc.WithFailFast(tc.failFast))

			err := s.Parse("params.c", []byte(src))
			require.NoError(t, err)

			var got []string
			for _, d := range s.Validate().Violations {
				got = append(got, d.Error())
			}

			assert.Equal(t, tc.want, got)
		})
	}
}
