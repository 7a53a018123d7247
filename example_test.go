package kview_test

import (
	"os"

	kview "kView"
)

func ExampleView_WriteTo() {
	v := kview.Literal("hello")
	v.WriteTo(os.Stdout)
	// Output: hello
}

func ExampleFromArray() {
	name := [6]byte{'k', 'v', 'i', 'e', 'w', 0}
	v := kview.FromArray(name[:])
	for c := range v.Values() {
		os.Stdout.Write([]byte{c - 'a' + 'A'})
	}
	// Output: KVIEW
}
