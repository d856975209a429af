// Package airframes implements the airframe preset [metadoc.Dialect].
//
// Each airframe is one startup script named "<id>_<name>", documented with
// shell comments:
//
//	#!/bin/sh
//	#
//	# @name Generic Quadcopter
//	#
//	# @type Quadrotor x
//	# @class Copter
//	#
//	# @output MAIN1 motor 1
//	# @output MAIN2 motor 2
//	#
//	# @maintainer Jane Doe <jane@example.com>
//	#
//	# @board px4_fmu-v2 exclude
//	#
//
// Tags from every comment block of the file are merged into one record.
// The @type, @class and @name tags are required. Airframes are grouped by
// type and class, so a type shared by two vehicle classes yields two groups
// whose display names carry the class in parentheses.
//
// Files whose name does not start with a number are not airframes and are
// skipped. A sibling file with the [PostSuffix] suffix is recorded as the
// airframe's post-startup script.
package airframes
