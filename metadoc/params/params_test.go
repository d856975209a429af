package params_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/px4meta/metadoc"
	"go.jacobcolvin.com/px4meta/metadoc/params"
	"go.jacobcolvin.com/px4meta/stringtest"
)

func parse(t *testing.T, src string) (*metadoc.Session, error) {
	t.Helper()

	s := metadoc.NewSession(params.New())

	return s, s.Parse("params.c", []byte(stringtest.Input(src)))
}

func only(t *testing.T, s *metadoc.Session) (*metadoc.Group, *metadoc.Parameter) {
	t.Helper()

	groups := s.Groups()
	require.Len(t, groups, 1)

	ps := groups[0].Parameters()
	require.Len(t, ps, 1)

	return groups[0], ps[0]
}

func TestParseIndirectDefault(t *testing.T) {
	t.Parallel()

	s, err := parse(t, `
		#define PARAM_X_DEFAULT 5.0

		/**
		 * Sensor gain.
		 *
		 * @group Sensors
		 * @min 0
		 * @max 10
		 */
		PX4_PARAM_DEFINE_FLOAT(X);
	`)
	require.NoError(t, err)

	g, p := only(t, s)
	assert.Equal(t, "Sensors", g.Name)
	assert.Equal(t, "X", p.Name)
	assert.Equal(t, "FLOAT", p.Type)
	assert.Equal(t, "5.0", p.Default)
	assert.Equal(t, "Sensor gain", p.Fields[metadoc.FieldShortDesc])
	assert.Equal(t, "0", p.Fields[metadoc.FieldMin])
	assert.Equal(t, "10", p.Fields[metadoc.FieldMax])

	report := s.Validate()
	assert.True(t, report.OK(), "%v", report.Err())
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	s, err := parse(t, `
		/**
		 * Airspeed mode...
		 *
		 * Selects how the airspeed
		 * is measured.
		 *
		 * @unit m/s
		 * @decimal 1
		 * @min 0
		 * @max 3
		 * @value 0 Off
		 * @value 2 Differential
		 * @value 1 Pitot
		 * @bit 0 Enable
		 * @bit 1 Log
		 * @reboot_required true
		 * @category Developer
		 * @volatile
		 * @boolean
		 */
		PARAM_DEFINE_INT32(ASPD_MODE, 1);
	`)
	require.NoError(t, err)

	g, p := only(t, s)
	assert.Equal(t, params.DefaultGroup, g.Name)
	assert.Equal(t, "1", p.Default)
	assert.Equal(t, "Airspeed mode", p.Fields[metadoc.FieldShortDesc])
	assert.Equal(t, "Selects how the airspeed is measured.", p.Fields[metadoc.FieldLongDesc])
	assert.Equal(t, "Developer", p.Category)
	assert.True(t, p.Volatile)
	assert.True(t, p.Boolean)
	assert.Equal(t, map[string]string{"0": "Off", "1": "Pitot", "2": "Differential"}, p.Enum)
	assert.Equal(t, map[string]string{"0": "Enable", "1": "Log"}, p.Bitmask)

	assert.Equal(t, []metadoc.Field{
		metadoc.FieldShortDesc,
		metadoc.FieldLongDesc,
		metadoc.FieldMin,
		metadoc.FieldMax,
		metadoc.FieldUnit,
		metadoc.FieldDecimal,
		metadoc.FieldRebootRequired,
	}, p.FieldKeys())

	assert.Equal(t, []string{"0", "1", "2"}, p.EnumKeys())
}

func TestParseWithoutComment(t *testing.T) {
	t.Parallel()

	s, err := parse(t, `
		PARAM_DEFINE_FLOAT(GYRO_SCALE, 0.1f);
		PX4_PARAM_DEFINE_INT32(MISSING);
	`)
	require.NoError(t, err)

	groups := s.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, params.DefaultGroup, groups[0].Name)

	ps := groups[0].Parameters()
	require.Len(t, ps, 2)
	assert.Equal(t, "GYRO_SCALE", ps[0].Name)
	assert.Equal(t, "0.1", ps[0].Default)
	assert.Equal(t, "GYRO_SCALE", ps[0].Fields[metadoc.FieldShortDesc])
	assert.Equal(t, "MISSING", ps[1].Name)
	assert.Empty(t, ps[1].Default)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		kind  error
		input string
		want  string
	}{
		"invalid tag": {
			input: `
				/**
				 * Short
				 * @group G
				 * @colour red
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrInvalidTag,
			want: "Skipping invalid documentation tag: 'colour'",
		},
		"multi-valued tag without description": {
			input: `
				/**
				 * @value 1
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrInvalidTag,
			want: "Skipping invalid documentation tag: 'value'",
		},
		"multi-line short description": {
			input: `
				/**
				 * First line
				 * second line
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrDescriptionMultiline,
			want: "short description must be a single line (parameter: X)",
		},
		"short description too long": {
			input: `
				/**
				 * ` + strings.Repeat("a", 151) + `
				 */
				PARAM_DEFINE_INT32(X, 1);
			`,
			kind: metadoc.ErrDescriptionTooLong,
			want: "short description too long (150 max, is 151, parameter: X)",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := parse(t, `
				PARAM_DEFINE_INT32(OTHER, 1);
			`+tc.input)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.kind)
			assert.Equal(t, "params.c: "+tc.want, err.Error())
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestUnattachedCommentIsIgnored(t *testing.T) {
	t.Parallel()

	// A doxygen comment with unknown tags that documents no parameter.
	s, err := parse(t, `
		/**
		 * Compute things.
		 *
		 * @param x input
		 * @return nothing
		 */
		void compute(int x);

		PARAM_DEFINE_INT32(X, 1);
	`)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestShortDescriptionAtLimit(t *testing.T) {
	t.Parallel()

	short := strings.Repeat("é", params.MaxShortDescription)

	s, err := parse(t, `
		/**
		 * `+short+`
		 */
		PARAM_DEFINE_INT32(X, 1);
	`)
	require.NoError(t, err)

	_, p := only(t, s)
	assert.Equal(t, short, p.Fields[metadoc.FieldShortDesc])
}

func TestOverrideAfterDeclaration(t *testing.T) {
	t.Parallel()

	s := metadoc.NewSession(params.New())

	err := s.Parse("a.c", []byte("PX4_PARAM_DEFINE_INT32(X);"))
	require.NoError(t, err)

	err = s.Parse("b.c", []byte("#define PARAM_X_DEFAULT 3"))
	require.NoError(t, err)

	_, p := only(t, s)
	assert.Empty(t, p.Default)

	two := metadoc.NewSession(params.New())

	err = two.ParseAll([]metadoc.Source{
		{Path: "a.c", Content: []byte("PX4_PARAM_DEFINE_INT32(X);")},
		{Path: "b.c", Content: []byte("#define PARAM_X_DEFAULT 3")},
	})
	require.NoError(t, err)

	_, p = only(t, two)
	assert.Equal(t, "3", p.Default)
}

func TestGroupOrder(t *testing.T) {
	t.Parallel()

	s, err := parse(t, `
		PARAM_DEFINE_INT32(MISC, 1);
		/**
		 * @group Zeta
		 */
		PARAM_DEFINE_INT32(Z, 1);
		/**
		 * @group Alpha
		 */
		PARAM_DEFINE_INT32(A, 1);
	`)
	require.NoError(t, err)

	var got []string
	for _, g := range s.Groups() {
		got = append(got, g.DisplayName)
	}

	assert.Equal(t, []string{"Alpha", "Zeta", params.DefaultGroup}, got)
}
