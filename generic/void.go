package generic

// Void is a zero-size value type, used where a type parameter needs a value but there isn't one.
type Void struct{}

func NewVoid() Void {
	return Void{}
}
