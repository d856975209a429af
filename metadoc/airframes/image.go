package airframes

// UnknownImage is the image base name of groups without a dedicated image.
const UnknownImage = "AirframeUnknown"

var images = map[string]string{
	"Standard Plane":       "Plane",
	"Flying Wing":          "FlyingWing",
	"Quadrotor x":          "QuadRotorX",
	"Quadrotor +":          "QuadRotorPlus",
	"Hexarotor x":          "HexaRotorX",
	"Hexarotor +":          "HexaRotorPlus",
	"Octorotor +":          "OctoRotorPlus",
	"Octorotor x":          "OctoRotorX",
	"Octorotor Coaxial":    "OctoRotorXCoaxial",
	"Octo Coax Wide":       "OctoRotorXCoaxial",
	"Quadrotor Wide":       "QuadRotorWide",
	"Quadrotor H":          "QuadRotorH",
	"Dodecarotor cox":      "DodecaRotorXCoaxial",
	"Simulation":           "AirframeSimulation",
	"Plane A-Tail":         "PlaneATail",
	"Plane V-Tail":         "PlaneVTail",
	"VTOL Duo Tailsitter":  "VTOLDuoRotorTailSitter",
	"Standard VTOL":        "VTOLPlane",
	"VTOL Quad Tailsitter": "VTOLQuadRotorTailSitter",
	"VTOL Tiltrotor":       "VTOLTiltRotor",
	"VTOL Octoplane":       "VTOLPlaneOcto",
	"Coaxial Helicopter":   "HelicopterCoaxial",
	"Helicopter":           "Helicopter",
	"Hexarotor Coaxial":    "Y6B",
	"Y6A":                  "Y6A",
	"Tricopter Y-":         "YMinus",
	"Tricopter Y+":         "YPlus",
	"Autogyro":             "Autogyro",
	"Airship":              "Airship",
	"Rover":                "Rover",
	"Boat":                 "Boat",
	"Balloon":              "Balloon",
	"Vectored 6 DOF UUV":   "Vectored6DofUUV",
	"PNU_Cargo cox":        "PNUCargocox",
}

// ImageName returns the image base name (without extension) used to
// illustrate an airframe group. The lookup uses the group name as written
// in the sources, not its display name.
func ImageName(group string) string {
	if name, ok := images[group]; ok {
		return name
	}

	return UnknownImage
}
