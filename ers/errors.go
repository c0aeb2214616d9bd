package ers

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }
