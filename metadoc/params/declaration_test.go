package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/px4meta/metadoc/params"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		override *params.Override
		decl     *params.Declaration
		line     string
	}{
		"two-argument declaration": {
			line: "PARAM_DEFINE_FLOAT(GYRO_SCALE, 1.0f);",
			decl: &params.Declaration{Type: "FLOAT", Name: "GYRO_SCALE", Default: "1.0f"},
		},
		"two-argument declaration without spaces": {
			line: "PARAM_DEFINE_INT32(SYS_AUTOSTART,0);",
			decl: &params.Declaration{Type: "INT32", Name: "SYS_AUTOSTART", Default: "0"},
		},
		"symbolic default": {
			line: "PARAM_DEFINE_INT32(MAV_TYPE, MAV_TYPE_QUADROTOR);",
			decl: &params.Declaration{Type: "INT32", Name: "MAV_TYPE", Default: "MAV_TYPE_QUADROTOR"},
		},
		"expression default": {
			line: "PARAM_DEFINE_FLOAT(X, M_PI_F*2);",
			decl: &params.Declaration{Type: "FLOAT", Name: "X", Default: "M_PI_F*2"},
		},
		"constant arithmetic default": {
			line: "PARAM_DEFINE_INT32(X, INT32_MAX-1);",
			decl: &params.Declaration{Type: "INT32", Name: "X", Default: "INT32_MAX-1"},
		},
		"mixed case symbolic default": {
			line: "PARAM_DEFINE_INT32(X, Foo);",
			decl: &params.Declaration{Type: "INT32", Name: "X", Default: "Foo"},
		},
		"space before the parenthesis": {
			line: "PARAM_DEFINE_INT32 (X, 1);",
			decl: &params.Declaration{Type: "INT32", Name: "X", Default: "1"},
		},
		"lowercase parameter name": {
			line: "PARAM_DEFINE_INT32(x, 1);",
		},
		"trailing comment": {
			line: "PARAM_DEFINE_INT32(X, -1); // unused",
			decl: &params.Declaration{Type: "INT32", Name: "X", Default: "-1"},
		},
		"one-argument declaration": {
			line: "PX4_PARAM_DEFINE_FLOAT(X);",
			decl: &params.Declaration{Type: "FLOAT", Name: "X", Indirect: true},
		},
		"default override": {
			line:     "#define PARAM_X_DEFAULT 5.0",
			override: &params.Override{Symbol: "X_DEFAULT", Value: "5.0"},
		},
		"expression override": {
			line:     "#define PARAM_X_DEFAULT M_PI_F*2",
			override: &params.Override{Symbol: "X_DEFAULT", Value: "M_PI_F*2"},
		},
		"define without the prefix": {
			line: "#define X_DEFAULT 5.0",
		},
		"define without a value": {
			line: "#define PARAM_X_DEFAULT",
		},
		"declaration without semicolon": {
			line: "PARAM_DEFINE_INT32(X, 1)",
		},
		"one-argument macro with a default": {
			line: "PX4_PARAM_DEFINE_INT32(X, 1);",
		},
		"two-argument macro without a default": {
			line: "PARAM_DEFINE_INT32(X);",
		},
		"unrelated macro": {
			line: "DEFINE_FLOAT(X, 1);",
		},
		"plain code": {
			line: "int x = 1;",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			override, decl := params.Match(tc.line)
			assert.Equal(t, tc.override, override)
			assert.Equal(t, tc.decl, decl)
		})
	}
}

func TestNormalizeDefault(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"float suffix":      {input: "0.1f", want: "0.1"},
		"negative":          {input: "-2.5f", want: "-2.5"},
		"leading dot":       {input: ".5f", want: ".5"},
		"integer":           {input: "10", want: "10"},
		"unsigned suffix":   {input: "10u", want: "10"},
		"symbol unchanged":  {input: "FOO", want: "FOO"},
		"lowercase symbol":  {input: "off", want: "off"},
		"empty":             {input: "", want: ""},
		"upper suffix kept": {input: "1.0F", want: "1.0F"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, params.NormalizeDefault(tc.input))
		})
	}
}
