package stars

// Mass-weighted bulk properties of a star set. These depend only on the
// state, not on the force law; potential energy lives with the gravity
// field that defines it.

func TotalMass(ss []Star) float64 {
	m := 0.0
	for i := range ss {
		m += ss[i].Mass
	}
	return m
}

// Momentum returns sum(m_i * v_i). For a closed system this is conserved
// by the pairwise force symmetry and drifts only by integration error.
func Momentum(ss []Star) Vec2 {
	var p Vec2
	for i := range ss {
		p = p.Add(ss[i].Vel.Scale(ss[i].Mass))
	}
	return p
}

// AngularMomentum returns sum(m_i * (r_i x v_i)) about the origin.
func AngularMomentum(ss []Star) float64 {
	l := 0.0
	for i := range ss {
		l += ss[i].Mass * ss[i].Pos.Cross(ss[i].Vel)
	}
	return l
}

func KineticEnergy(ss []Star) float64 {
	ke := 0.0
	for i := range ss {
		ke += 0.5 * ss[i].Mass * ss[i].Vel.NormSq()
	}
	return ke
}

func CenterOfMass(ss []Star) Vec2 {
	m := TotalMass(ss)
	if m == 0 {
		return Vec2{}
	}
	var c Vec2
	for i := range ss {
		c = c.Add(ss[i].Pos.Scale(ss[i].Mass))
	}
	return c.Scale(1 / m)
}
