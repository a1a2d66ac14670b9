package testutil

// WithStandardPeople adds the five people most grid tests start from,
// ordered p1..p5 by ID.
func (b *Builder) WithStandardPeople() *Builder {
	return b.
		WithPerson("p1", Name("Asha"), Gender("F"), Age(31), District("Pune")).
		WithPerson("p2", Name("Kumar"), Gender("M"), Age(44), District("Surat")).
		WithPerson("p3", Name("Meena"), Gender("F"), Age(27), District("Agra")).
		WithPerson("p4", Name("Ravi"), Gender("M"), Age(52), District("Kota"), Inactive()).
		WithPerson("p5", Name("Zoya"), Gender("F"), District("Pune"))
}
