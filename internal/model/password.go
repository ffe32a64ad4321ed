package model

// Password is one generated password record. Records are immutable once
// generated: the generator creates them, everything downstream reads them.
type Password struct {
	// ID is the record's position in the generated list, starting at 0.
	ID int

	// Plaintext is the literal password string.
	Plaintext string

	// Strength labels the generation branch that produced the password.
	Strength Strength
}
