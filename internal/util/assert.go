package assert

import "log"

// Success unwraps v or exits. Reserved for errors that mean a broken
// build, such as embedded data that fails to parse.
func Success[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("earthly: %v", err)
	}
	return v
}
