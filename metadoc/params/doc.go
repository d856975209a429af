// Package params implements the runtime parameter [metadoc.Dialect].
//
// Parameters are documented with C block comments and declared with
// parameter-definition macros:
//
//	/**
//	 * Gyro X-axis offset
//	 *
//	 * Applied before the scale factor.
//	 *
//	 * @min -1.0
//	 * @max 1.0
//	 * @unit rad/s
//	 * @group Sensor Calibration
//	 */
//	PARAM_DEFINE_FLOAT(CAL_GYRO0_XOFF, 0.0f);
//
// A one-argument declaration takes its default from a "#define" override
// seen earlier in the session, under the parameter name with
// [DefaultSuffix] appended:
//
//	#define PARAM_MPC_XY_P_DEFAULT 0.95f
//	PX4_PARAM_DEFINE_FLOAT(MPC_XY_P);
//
// Multi-valued tags "@value <code> <description>" and
// "@bit <index> <description>" fill [metadoc.Parameter.Enum] and
// [metadoc.Parameter.Bitmask]. The tags "group", "category", "boolean" and
// "volatile" become dedicated attributes; every other accepted tag is
// copied into [metadoc.Parameter.Fields].
//
// [Dialect.Validate] enforces name length, (name, board) uniqueness, the
// [Units] allow-list, numeric defaults within [min, max], and consistent
// enum and bitmask entries.
package params
