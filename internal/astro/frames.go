package astro

// The observer's orientation is composed from three frames, innermost first:
// "local" fixes the ground position on the planet, "recent" applies the
// diurnal spin, and "global" applies the axial tilt. Each is built only from
// Y- and Z-axis rotations; every physical rotation in the model is
// expressible that way in the right order.

// ToLocal maps a body-frame direction (local up = +X, pole direction = +Z)
// into the planet's instantaneous non-rotating frame for an observer at the
// given latitude and longitude (radians).
func ToLocal(lat, lon float64, v Vec3) Vec3 {
	return RotateZ(lon, RotateY(-lat, v))
}

// ToRecent applies the diurnal spin for the given daily phase.
func ToRecent(dailyPhase float64, v Vec3) Vec3 {
	return RotateZ(dailyPhase, v)
}

// ToGlobal applies the fixed axial tilt. The tilt axis is itself offset from
// the reference meridian by axialDirection, so the tilt rotation is
// conjugated to pivot around the equinox-aligned axis rather than the frame's
// own Y axis.
func ToGlobal(axialTilt, axialDirection float64, v Vec3) Vec3 {
	return RotateZ(axialDirection, RotateY(axialTilt, RotateZ(-axialDirection, v)))
}
